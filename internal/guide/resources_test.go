package guide

import (
	"testing"

	"github.com/momentum-ai/guidegen/internal/standards"
)

func TestBuildResources_VisualMathematics(t *testing.T) {
	std := limitsStandard(t)
	resources := buildResources(std, StyleVisual, standards.SubjectMathematics)

	if !hasResource(resources, ResourceVideo, "Visual walkthrough: Limits and Continuity") {
		t.Error("missing visual video resource")
	}
	if !hasResource(resources, ResourceTool, "Desmos Graphing Calculator") {
		t.Error("missing graphing-tool resource")
	}
	if !hasResource(resources, ResourceExercise, "Khan Academy Practice") {
		t.Error("missing math practice resource")
	}
	if !hasResource(resources, ResourceArticle, "Paul's Online Math Notes") {
		t.Error("missing math article resource")
	}
	if !hasResource(resources, ResourceArticle, "Georgia Standards of Excellence: "+std.Code) {
		t.Error("missing official standards resource")
	}
}

func TestBuildResources_AuditoryPhysics(t *testing.T) {
	std, ok := standards.ByID("phys-9-motion-001")
	if !ok {
		t.Fatal("phys-9-motion-001 missing from catalog")
	}
	resources := buildResources(std, StyleAuditory, standards.SubjectPhysics)

	if !hasResource(resources, ResourceVideo, "Lecture: Kinematics and Motion") {
		t.Error("missing auditory lecture resource")
	}
	if !hasResource(resources, ResourceTool, "PhET Interactive Simulations") {
		t.Error("missing physics simulation resource")
	}
	// No math-only entries for physics.
	if hasResource(resources, ResourceExercise, "Khan Academy Practice") {
		t.Error("unexpected math practice resource for physics")
	}
}

func TestBuildResources_AlwaysIncludesStandardsReference(t *testing.T) {
	for _, std := range standards.All() {
		for _, style := range []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading} {
			resources := buildResources(std, style, std.Subject)
			if !hasResource(resources, ResourceArticle, "Georgia Standards of Excellence: "+std.Code) {
				t.Errorf("standard %q style %q: missing standards reference", std.ID, style)
			}
		}
	}
}

func TestBuildResources_TableOrder(t *testing.T) {
	std := limitsStandard(t)
	resources := buildResources(std, StyleVisual, standards.SubjectMathematics)

	// Table order: visual video, graphing tool, math pair, standards ref.
	if len(resources) != 5 {
		t.Fatalf("expected 5 resources, got %d", len(resources))
	}
	if resources[0].Type != ResourceVideo {
		t.Errorf("resource 0 should be the visual video, got %q", resources[0].Title)
	}
	if resources[len(resources)-1].Title != "Georgia Standards of Excellence: "+std.Code {
		t.Errorf("standards reference must be last, got %q", resources[len(resources)-1].Title)
	}
}

func TestDedupeResources(t *testing.T) {
	in := []Resource{
		{Type: ResourceVideo, Title: "A"},
		{Type: ResourceVideo, Title: "A"},
		{Type: ResourceArticle, Title: "A"},
		{Type: ResourceVideo, Title: "B"},
	}
	out := dedupeResources(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 after dedupe, got %d", len(out))
	}
	if out[0].Title != "A" || out[1].Title != "A" || out[2].Title != "B" {
		t.Errorf("unexpected order after dedupe: %+v", out)
	}
}

func hasResource(resources []Resource, typ ResourceType, title string) bool {
	for _, r := range resources {
		if r.Type == typ && r.Title == title {
			return true
		}
	}
	return false
}
