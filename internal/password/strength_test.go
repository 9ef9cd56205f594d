package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/password"
	"github.com/vytor/cyberquest/internal/tiers"
)

func TestScore_Empty(t *testing.T) {
	res := password.Score("")

	assert.Equal(t, 0, res.Value)
	assert.Equal(t, tiers.VeryWeak, res.Tier)
	assert.Empty(t, res.Satisfied)
	assert.Empty(t, res.Common)
}

func TestScore_StrongClassic(t *testing.T) {
	res := password.Score("Tr0ub4dor&3")

	for _, c := range []password.Criterion{password.MinLength, password.Lowercase, password.Uppercase, password.Digit, password.Symbol} {
		assert.True(t, res.Has(c), "expected %s to be satisfied", c)
	}
	assert.GreaterOrEqual(t, res.Value, 80)
	assert.LessOrEqual(t, res.Value, 100)
	assert.Contains(t, []tiers.Tier{tiers.Strong, tiers.Excellent}, res.Tier)
}

func TestScore_DenylistPenalty(t *testing.T) {
	common := password.Score("password123")
	plain := password.Score("xkcdmwqz123")

	assert.Equal(t, "password", common.Common)
	assert.Empty(t, plain.Common)
	assert.Equal(t, plain.Satisfied, common.Satisfied)
	assert.Equal(t, plain.Value-25, common.Value)
	assert.Less(t, common.Value, plain.Value)
}

func TestScore_DenylistIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		common string
	}{
		{"upper", "MyQWERTYkeys!", "qwerty"},
		{"mixed", "PassWord!!", "password"},
		{"spanish", "MiCONTRASEÑA9", "contraseña"},
		{"digits", "x123456y", "123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.common, password.Score(tt.input).Common)
		})
	}
}

func TestScore_LengthBonuses(t *testing.T) {
	short := password.Score("Abcdef1!")           // 8
	long := password.Score("Abcdefgh12!?")        // 12
	veryLong := password.Score("Abcdefghijk1234!") // 16

	assert.Equal(t, 80, short.Value)
	assert.Equal(t, 90, long.Value)
	assert.True(t, long.Has(password.Long))
	assert.False(t, long.Has(password.VeryLong))
	assert.Equal(t, 100, veryLong.Value)
	assert.Equal(t, tiers.Excellent, veryLong.Tier)
}

func TestScore_AlwaysInRange(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"123456",
		"password123456qwerty",
		"ñandú",
		"密码密码密码密码",
		"🔒🔑🔒🔑🔒🔑🔒🔑",
		"\xff\xfe\xfd",
		"   ",
		"Correct Horse Battery Staple 42!",
	}
	for _, in := range inputs {
		res := password.Score(in)
		assert.GreaterOrEqual(t, res.Value, 0, "input %q", in)
		assert.LessOrEqual(t, res.Value, 100, "input %q", in)
		assert.NotEmpty(t, res.Tier)
	}
}

func TestScore_Deterministic(t *testing.T) {
	for _, in := range []string{"Tr0ub4dor&3", "password123", "ñandú"} {
		assert.Equal(t, password.Score(in), password.Score(in))
	}
}

func TestScore_AddingCriterionNeverLowersValue(t *testing.T) {
	tests := []struct {
		base  string
		extra string
	}{
		{"lowercaseonly", "7"},
		{"lowercaseonly", "Z"},
		{"lowercaseonly", "#"},
		{"Ab1", "!"},
		{"Abcdefg", "1"},
	}
	for _, tt := range tests {
		before := password.Score(tt.base)
		after := password.Score(tt.base + tt.extra)
		assert.GreaterOrEqual(t, after.Value, before.Value, "%q -> %q", tt.base, tt.base+tt.extra)
	}
}

func TestScore_UnicodeClassification(t *testing.T) {
	res := password.Score("ÑANDÚ")
	assert.True(t, res.Has(password.Uppercase))
	assert.False(t, res.Has(password.Symbol))

	// grapheme clusters count as one character each
	res = password.Score("🇪🇸🇪🇸🇪🇸🇪🇸")
	assert.False(t, res.Has(password.MinLength))
	assert.True(t, res.Has(password.Symbol))
}

func TestScore_FeedbackListsMissingCriteria(t *testing.T) {
	res := password.Score("abc")

	assert.Contains(t, res.Feedback, "Usa al menos 8 caracteres.")
	assert.Contains(t, res.Feedback, "Añade letras mayúsculas.")
	assert.Contains(t, res.Feedback, "Incluye algún número.")
	assert.NotContains(t, res.Feedback, "Añade letras minúsculas.")
	assert.Equal(t, "Muy débil", res.TierName)
}

func TestNewScorer_CustomMinLength(t *testing.T) {
	cfg := password.DefaultConfig()
	cfg.MinLength = 12
	scorer, err := password.NewScorer(cfg)
	require.NoError(t, err)

	res := scorer.Score("Abcdef1!xy") // 10 characters
	assert.False(t, res.Has(password.MinLength))
	assert.Equal(t, 60, res.Value)
	assert.Contains(t, res.Feedback, "Usa al menos 12 caracteres.")
}

func TestNewScorer_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*password.Config)
	}{
		{"weights over 100", func(c *password.Config) { c.Weights.Symbol = 40 }},
		{"zero min length", func(c *password.Config) { c.MinLength = 0 }},
		{"descending bonuses", func(c *password.Config) { c.VeryLongLength = 10 }},
		{"negative penalty", func(c *password.Config) { c.Penalty = -5 }},
		{"negative weight", func(c *password.Config) { c.Weights.Digit = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := password.DefaultConfig()
			tt.mutate(&cfg)
			_, err := password.NewScorer(cfg)
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
		})
	}
}

func TestDefaultConfig_WeightsFitRange(t *testing.T) {
	assert.Equal(t, 100, password.DefaultConfig().Weights.Total())
	assert.NoError(t, password.DefaultConfig().Validate())
}
