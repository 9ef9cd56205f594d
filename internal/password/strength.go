// Package password scores password strength for the "contraseñas seguras"
// lessons. Scoring is a pure function of the password and the scorer's
// configuration.
package password

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	apperrors "github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/tiers"
)

// Criterion names a single strength check.
type Criterion string

const (
	MinLength Criterion = "min-length"
	Lowercase Criterion = "lowercase"
	Uppercase Criterion = "uppercase"
	Digit     Criterion = "digit"
	Symbol    Criterion = "symbol"
	Long      Criterion = "long"
	VeryLong  Criterion = "very-long"
)

// criteriaOrder is the canonical order of Result.Satisfied.
var criteriaOrder = []Criterion{MinLength, Lowercase, Uppercase, Digit, Symbol, Long, VeryLong}

// Weights holds the points each criterion contributes.
type Weights struct {
	MinLength int
	Lowercase int
	Uppercase int
	Digit     int
	Symbol    int
	Long      int
	VeryLong  int
}

func (w Weights) of(c Criterion) int {
	switch c {
	case MinLength:
		return w.MinLength
	case Lowercase:
		return w.Lowercase
	case Uppercase:
		return w.Uppercase
	case Digit:
		return w.Digit
	case Symbol:
		return w.Symbol
	case Long:
		return w.Long
	case VeryLong:
		return w.VeryLong
	}
	return 0
}

// Total is the maximum number of points the weights can award.
func (w Weights) Total() int {
	return w.MinLength + w.Lowercase + w.Uppercase + w.Digit + w.Symbol + w.Long + w.VeryLong
}

// Config parameterizes a Scorer.
type Config struct {
	MinLength      int // characters required for the min-length criterion
	LongLength     int // characters required for the long bonus
	VeryLongLength int // characters required for the very-long bonus
	Weights        Weights
	Penalty        int      // points removed when a denylisted substring appears
	Denylist       []string // matched case-insensitively
	Scale          tiers.Scale
}

// DefaultMinLength is the minimum length used when callers do not choose one.
const DefaultMinLength = 8

// DefaultDenylist holds common substrings that make a password guessable.
var DefaultDenylist = []string{
	"123456",
	"password",
	"qwerty",
	"abc123",
	"111111",
	"letmein",
	"iloveyou",
	"admin",
	"contraseña",
}

// DefaultConfig returns the canonical scoring configuration.
func DefaultConfig() Config {
	return Config{
		MinLength:      DefaultMinLength,
		LongLength:     12,
		VeryLongLength: 16,
		Weights: Weights{
			MinLength: 20,
			Lowercase: 15,
			Uppercase: 15,
			Digit:     15,
			Symbol:    15,
			Long:      10,
			VeryLong:  10,
		},
		Penalty:  25,
		Denylist: DefaultDenylist,
		Scale:    tiers.PasswordScale,
	}
}

// Validate checks that the configuration can produce values in [0, 100].
func (c Config) Validate() error {
	var problems []string
	if c.MinLength < 1 {
		problems = append(problems, "min length must be at least 1")
	}
	if c.LongLength < 1 || c.VeryLongLength < c.LongLength {
		problems = append(problems, "length bonus thresholds must be positive and ascending")
	}
	if c.Weights.MinLength < 0 || c.Weights.Lowercase < 0 || c.Weights.Uppercase < 0 ||
		c.Weights.Digit < 0 || c.Weights.Symbol < 0 || c.Weights.Long < 0 || c.Weights.VeryLong < 0 {
		problems = append(problems, "weights must not be negative")
	}
	if total := c.Weights.Total(); total > 100 {
		problems = append(problems, fmt.Sprintf("weights sum to %d, more than 100", total))
	}
	if c.Penalty < 0 {
		problems = append(problems, "penalty must not be negative")
	}
	if len(problems) > 0 {
		return apperrors.NewInvalidConfigurationError("password scorer: " + strings.Join(problems, "; "))
	}
	return nil
}

// Result is the outcome of scoring one password.
type Result struct {
	Value     int         `json:"value"`
	Tier      tiers.Tier  `json:"tier"`
	TierName  string      `json:"tierName"`
	Satisfied []Criterion `json:"satisfiedCriteria"`
	// Common is the denylisted substring found, if any.
	Common   string   `json:"common,omitempty"`
	Feedback []string `json:"feedback"`
}

// Has reports whether c was satisfied.
func (r Result) Has(c Criterion) bool {
	for _, s := range r.Satisfied {
		if s == c {
			return true
		}
	}
	return false
}

// Scorer evaluates passwords against a fixed configuration. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	cfg      Config
	denylist []string // folded
}

// NewScorer validates cfg and returns a Scorer for it.
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newScorer(cfg), nil
}

func newScorer(cfg Config) *Scorer {
	folded := make([]string, 0, len(cfg.Denylist))
	for _, d := range cfg.Denylist {
		if f := fold(d); f != "" {
			folded = append(folded, f)
		}
	}
	return &Scorer{cfg: cfg, denylist: folded}
}

var defaultScorer = newScorer(DefaultConfig())

// Score scores password with the default configuration.
func Score(password string) Result {
	return defaultScorer.Score(password)
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// Score evaluates password. It never panics, including on invalid UTF-8.
func (s *Scorer) Score(password string) Result {
	length := uniseg.GraphemeClusterCount(password)

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r), unicode.IsMark(r):
			// caseless letters and combining marks are neither
		default:
			hasSymbol = true
		}
	}

	met := map[Criterion]bool{
		MinLength: length >= s.cfg.MinLength,
		Lowercase: hasLower,
		Uppercase: hasUpper,
		Digit:     hasDigit,
		Symbol:    hasSymbol,
		Long:      length >= s.cfg.LongLength,
		VeryLong:  length >= s.cfg.VeryLongLength,
	}

	res := Result{Satisfied: []Criterion{}, Feedback: []string{}}
	value := 0
	for _, c := range criteriaOrder {
		if met[c] {
			res.Satisfied = append(res.Satisfied, c)
			value += s.cfg.Weights.of(c)
		} else if hint := s.hint(c); hint != "" {
			res.Feedback = append(res.Feedback, hint)
		}
	}

	if length > 0 {
		if common := s.findCommon(password); common != "" {
			res.Common = common
			value -= s.cfg.Penalty
			res.Feedback = append(res.Feedback,
				fmt.Sprintf("Evita palabras y secuencias comunes como \"%s\".", common))
		}
	}

	res.Value = clamp(value, 0, 100)
	res.Tier = s.cfg.Scale.Classify(res.Value)
	res.TierName = res.Tier.DisplayName()
	return res
}

func (s *Scorer) hint(c Criterion) string {
	switch c {
	case MinLength:
		return fmt.Sprintf("Usa al menos %d caracteres.", s.cfg.MinLength)
	case Lowercase:
		return "Añade letras minúsculas."
	case Uppercase:
		return "Añade letras mayúsculas."
	case Digit:
		return "Incluye algún número."
	case Symbol:
		return "Incluye un símbolo como ! o #."
	case Long:
		return fmt.Sprintf("Con %d caracteres o más será todavía más segura.", s.cfg.LongLength)
	}
	return ""
}

// findCommon returns the first denylisted entry contained in password.
func (s *Scorer) findCommon(password string) string {
	folded := fold(password)
	for _, d := range s.denylist {
		if strings.Contains(folded, d) {
			return d
		}
	}
	return ""
}

// fold normalizes s for case-insensitive matching. A Caser is stateful, so
// a fresh one is built per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
