package standards

// catalog is the curated Georgia Standards of Excellence knowledge base.
// It is reference data: defined once, never mutated. Retrieval preserves
// declaration order, so entries are grouped by subject and ascending grade.
var catalog = []Standard{
	// --- Mathematics ---
	{
		ID:          "math-6-ratios-001",
		Grade:       6,
		Subject:     SubjectMathematics,
		Domain:      "Ratios and Proportional Relationships",
		Code:        "MGSE6.RP.1",
		Description: "Understand the concept of a ratio and use ratio language to describe a relationship between two quantities.",
		Examples: []string{
			"Write the ratio of 12 apples to 8 oranges in simplest form",
			"A recipe uses 2 cups of flour for every 3 cups of milk. How much flour is needed for 9 cups of milk?",
			"Express 45 miles in 3 hours as a unit rate",
		},
		Prerequisites: []string{"fractions", "multiplication"},
		KeyVocabulary: []string{"ratio", "rate", "unit rate", "proportion", "equivalent"},
	},
	{
		ID:          "math-7-expressions-001",
		Grade:       7,
		Subject:     SubjectMathematics,
		Domain:      "Expressions and Equations",
		Code:        "MGSE7.EE.1",
		Description: "Apply properties of operations to add, subtract, factor, and expand linear expressions with rational coefficients.",
		Examples: []string{
			"Simplify 3(x + 4) - 2x",
			"Factor 6x + 9",
			"Expand and combine: 2(a - 5) + 4(a + 1)",
		},
		Prerequisites: []string{"ratios", "arithmetic"},
		KeyVocabulary: []string{"expression", "coefficient", "like terms", "distributive property", "factor"},
	},
	{
		ID:          "math-8-linear-001",
		Grade:       8,
		Subject:     SubjectMathematics,
		Domain:      "Linear Equations",
		Code:        "MGSE8.EE.7",
		Description: "Solve linear equations in one variable, including equations with rational number coefficients.",
		Examples: []string{
			"Solve 3x + 7 = 22",
			"Solve 2(x - 3) = x + 5",
			"Solve x/4 - 1 = 6",
		},
		Prerequisites: []string{"expressions", "integers"},
		KeyVocabulary: []string{"equation", "variable", "solution", "inverse operation", "slope"},
	},
	{
		ID:          "math-9-quadratics-001",
		Grade:       9,
		Subject:     SubjectMathematics,
		Domain:      "Quadratic Functions",
		Code:        "MGSE9-12.A.REI.4",
		Description: "Solve quadratic equations in one variable by factoring, completing the square, and the quadratic formula.",
		Examples: []string{
			"Solve x² - 5x + 6 = 0 by factoring",
			"Use the quadratic formula to solve 2x² + 3x - 2 = 0",
			"Find the vertex of y = x² - 4x + 1",
		},
		Prerequisites: []string{"linear equations", "factoring"},
		KeyVocabulary: []string{"quadratic", "parabola", "vertex", "discriminant", "roots"},
	},
	{
		ID:          "math-10-trig-001",
		Grade:       10,
		Subject:     SubjectMathematics,
		Domain:      "Right Triangle Trigonometry",
		Code:        "MGSE9-12.G.SRT.6",
		Description: "Use trigonometric ratios and the Pythagorean theorem to solve right triangles in applied problems.",
		Examples: []string{
			"A ladder leans against a wall at a 70° angle. If the ladder is 10 ft long, how high does it reach?",
			"Find sin(θ) for a right triangle with opposite side 3 and hypotenuse 5",
			"Solve for the missing leg: a² + 9² = 15²",
		},
		Prerequisites: []string{"quadratic", "geometry"},
		KeyVocabulary: []string{"sine", "cosine", "tangent", "hypotenuse", "Pythagorean theorem"},
	},
	{
		ID:          "math-11-functions-001",
		Grade:       11,
		Subject:     SubjectMathematics,
		Domain:      "Functions and Their Graphs",
		Code:        "MGSE9-12.F.IF.7",
		Description: "Analyze polynomial, rational, and piecewise function behavior using graphs, tables, and algebraic representations.",
		Examples: []string{
			"Sketch the graph of f(x) = (x - 1)(x + 2) and label its intercepts",
			"Determine the domain of g(x) = 1/(x - 3)",
			"Describe the end behavior of h(x) = -2x³ + x",
		},
		Prerequisites: []string{"quadratic", "linear equations"},
		KeyVocabulary: []string{"function", "domain", "range", "intercept", "end behavior"},
	},
	{
		ID:          "math-11-limits-001",
		Grade:       11,
		Subject:     SubjectMathematics,
		Domain:      "Limits and Continuity",
		Code:        "MGSE9-12.C.LC.1",
		Description: "Evaluate limits graphically, numerically, and algebraically, and use them to determine continuity at a point.",
		Examples: []string{
			"Evaluate lim(x→2) of (x² - 4)/(x - 2)",
			"Determine whether f(x) = 1/x is continuous at x = 0",
			"Find lim(x→∞) of (3x² + 1)/(x² - 5)",
		},
		Prerequisites: []string{"functions", "graphs"},
		KeyVocabulary: []string{"limit", "continuity", "one-sided limit", "asymptote", "indeterminate form"},
	},
	{
		ID:          "math-12-derivatives-001",
		Grade:       12,
		Subject:     SubjectMathematics,
		Domain:      "Derivatives and Rates of Change",
		Code:        "MGSE9-12.C.D.1",
		Description: "Compute derivatives using limits and differentiation rules, and interpret the derivative as an instantaneous rate of change.",
		Examples: []string{
			"Find dy/dx for y = x³ - 5x using the power rule",
			"Use the limit definition to find the derivative of f(x) = x²",
			"A ball's height is h(t) = -16t² + 64t. Find its velocity at t = 1",
		},
		Prerequisites: []string{"limits", "functions"},
		KeyVocabulary: []string{"derivative", "tangent line", "rate of change", "power rule", "differentiation"},
	},

	// --- Physics ---
	{
		ID:          "phys-9-motion-001",
		Grade:       9,
		Subject:     SubjectPhysics,
		Domain:      "Kinematics and Motion",
		Code:        "SP1.a",
		Description: "Analyze one-dimensional motion using position, velocity, and acceleration, including graphical representations.",
		Examples: []string{
			"A car accelerates from rest at 3 m/s² for 5 seconds. What is its final velocity?",
			"Interpret a position-time graph that shows constant velocity",
			"Calculate displacement using d = v₀t + (1/2)at²",
		},
		Prerequisites: []string{"linear equations", "graphs"},
		KeyVocabulary: []string{"velocity", "acceleration", "displacement", "vector", "free fall"},
	},
	{
		ID:          "phys-10-forces-001",
		Grade:       10,
		Subject:     SubjectPhysics,
		Domain:      "Forces and Newton's Laws",
		Code:        "SP2.b",
		Description: "Apply Newton's three laws of motion to predict the behavior of objects under balanced and unbalanced forces.",
		Examples: []string{
			"A 5 kg block is pushed with a 20 N force. Find its acceleration using F = ma",
			"Draw a free-body diagram for a book resting on a table",
			"Explain why a passenger lurches forward when a bus stops suddenly",
		},
		Prerequisites: []string{"motion", "kinematics"},
		KeyVocabulary: []string{"force", "inertia", "net force", "friction", "normal force"},
	},
	{
		ID:          "phys-11-energy-001",
		Grade:       11,
		Subject:     SubjectPhysics,
		Domain:      "Work, Energy, and Power",
		Code:        "SP3.a",
		Description: "Use conservation of energy to analyze systems involving kinetic energy, potential energy, and work done by forces.",
		Examples: []string{
			"A 2 kg ball is dropped from 10 m. Find its speed just before impact using energy conservation",
			"Calculate the work done pushing a crate 5 m with a 40 N force",
			"Compare the kinetic energy of two cars: KE = (1/2)mv²",
		},
		Prerequisites: []string{"forces", "motion"},
		KeyVocabulary: []string{"kinetic energy", "potential energy", "work", "power", "conservation"},
	},

	// --- English ---
	{
		ID:          "ela-9-argument-001",
		Grade:       9,
		Subject:     SubjectEnglish,
		Domain:      "Argumentative Writing",
		Code:        "ELAGSE9-10W1",
		Description: "Write arguments to support claims with clear reasons, relevant evidence, and a concluding statement that follows from the argument.",
		Examples: []string{
			"Write a thesis statement arguing for or against school uniforms",
			"Identify the claim, evidence, and warrant in a given editorial",
			"Draft a counterclaim paragraph that concedes and rebuts an opposing view",
		},
		Prerequisites: []string{"paragraph structure", "evidence"},
		KeyVocabulary: []string{"claim", "evidence", "counterclaim", "thesis", "rebuttal"},
	},
	{
		ID:          "ela-11-rhetoric-001",
		Grade:       11,
		Subject:     SubjectEnglish,
		Domain:      "Rhetorical Analysis",
		Code:        "ELAGSE11-12RI6",
		Description: "Determine an author's point of view and analyze how style and rhetorical devices contribute to the power of a text.",
		Examples: []string{
			"Identify the use of ethos, pathos, and logos in a famous speech",
			"Analyze how repetition strengthens the argument in a given passage",
			"Compare the tone of two editorials on the same topic",
		},
		Prerequisites: []string{"argument", "evidence"},
		KeyVocabulary: []string{"ethos", "pathos", "logos", "tone", "rhetorical device"},
	},
}
