// Package tiers maps numeric scores onto coarse labels.
//
// Every banding used by the application is declared here once, so score
// consumers classify through a named Scale instead of repeating cut points.
package tiers

// Tier is a categorical label derived from a score.
type Tier string

// Password strength tiers.
const (
	VeryWeak  Tier = "very-weak"
	Weak      Tier = "weak"
	Fair      Tier = "fair"
	Strong    Tier = "strong"
	Excellent Tier = "excellent"
)

// Quiz performance tiers. Fair and Excellent are shared with passwords.
const (
	NeedsImprovement Tier = "needs-improvement"
	Good             Tier = "good"
	VeryGood         Tier = "very-good"
)

// Band assigns Label to every score strictly below Below.
type Band struct {
	Below int
	Label Tier
}

// Scale is a step function over ascending bands. Scores at or above the
// last band's bound get Top.
type Scale struct {
	Bands []Band
	Top   Tier
}

// Classify returns the label for v.
func (s Scale) Classify(v int) Tier {
	for _, b := range s.Bands {
		if v < b.Below {
			return b.Label
		}
	}
	return s.Top
}

// Labels returns every label of the scale from lowest to highest.
func (s Scale) Labels() []Tier {
	out := make([]Tier, 0, len(s.Bands)+1)
	for _, b := range s.Bands {
		out = append(out, b.Label)
	}
	return append(out, s.Top)
}

// PasswordScale bands a 0-100 password strength value.
var PasswordScale = Scale{
	Bands: []Band{
		{Below: 30, Label: VeryWeak},
		{Below: 50, Label: Weak},
		{Below: 70, Label: Fair},
		{Below: 90, Label: Strong},
	},
	Top: Excellent,
}

// ResultScale bands a 0-100 quiz percentage.
var ResultScale = Scale{
	Bands: []Band{
		{Below: 60, Label: NeedsImprovement},
		{Below: 70, Label: Fair},
		{Below: 80, Label: Good},
		{Below: 90, Label: VeryGood},
	},
	Top: Excellent,
}

// Spanish display names used by the site.
var displayNames = map[Tier]string{
	VeryWeak:         "Muy débil",
	Weak:             "Débil",
	Fair:             "Regular",
	Strong:           "Fuerte",
	Excellent:        "Excelente",
	NeedsImprovement: "Necesita mejorar",
	Good:             "Bien",
	VeryGood:         "Muy bien",
}

// DisplayName returns the Spanish label for t, or t itself when unknown.
func (t Tier) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}
