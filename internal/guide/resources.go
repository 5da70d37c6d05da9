package guide

import (
	"fmt"
	"net/url"

	"github.com/momentum-ai/guidegen/internal/standards"
)

// buildResources assembles the curated external resource list by table
// lookup: each row's condition is checked in order and its resource
// appended. A final dedupe by (type, title) guards against overlapping
// rows as the table grows.
func buildResources(std standards.Standard, style LearningStyle, subject standards.Subject) []Resource {
	var resources []Resource

	if style == StyleVisual {
		resources = append(resources, Resource{
			Type:        ResourceVideo,
			Title:       "Visual walkthrough: " + std.Domain,
			URL:         "https://www.youtube.com/results?search_query=" + url.QueryEscape(std.Domain+" visual explanation"),
			Description: "Video lessons with diagrams and worked animations for " + std.Domain + ".",
			Duration:    "10-15 min",
		})
	}
	if style == StyleVisual && subject == standards.SubjectMathematics {
		resources = append(resources, Resource{
			Type:        ResourceTool,
			Title:       "Desmos Graphing Calculator",
			URL:         "https://www.desmos.com/calculator",
			Description: "Graph the functions from this guide and watch how they behave.",
		})
	}
	if style == StyleAuditory {
		resources = append(resources, Resource{
			Type:        ResourceVideo,
			Title:       "Lecture: " + std.Domain,
			URL:         "https://www.youtube.com/results?search_query=" + url.QueryEscape(fmt.Sprintf("%s %s lecture", std.Domain, subject)),
			Description: "Full spoken lessons you can listen to while following along.",
			Duration:    "20-30 min",
		})
	}
	if subject == standards.SubjectMathematics {
		resources = append(resources,
			Resource{
				Type:        ResourceExercise,
				Title:       "Khan Academy Practice",
				URL:         "https://www.khanacademy.org/math",
				Description: "Interactive practice sets with instant feedback.",
			},
			Resource{
				Type:        ResourceArticle,
				Title:       "Paul's Online Math Notes",
				URL:         "https://tutorial.math.lamar.edu/",
				Description: "Readable notes with fully worked examples.",
			},
		)
	}
	if subject == standards.SubjectPhysics {
		resources = append(resources, Resource{
			Type:        ResourceTool,
			Title:       "PhET Interactive Simulations",
			URL:         "https://phet.colorado.edu/en/simulations/filter?subjects=physics",
			Description: "Manipulate simulations of the systems in this guide.",
		})
	}

	// Always include the official standards reference.
	resources = append(resources, Resource{
		Type:        ResourceArticle,
		Title:       "Georgia Standards of Excellence: " + std.Code,
		URL:         "https://www.georgiastandards.org/Georgia-Standards/Pages/default.aspx",
		Description: fmt.Sprintf("The official description of standard %s (%s).", std.Code, std.Domain),
	})

	return dedupeResources(resources)
}

// dedupeResources removes later duplicates by (type, title), preserving order.
func dedupeResources(resources []Resource) []Resource {
	type key struct {
		t     ResourceType
		title string
	}
	seen := make(map[key]bool, len(resources))
	out := resources[:0]
	for _, r := range resources {
		k := key{r.Type, r.Title}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
