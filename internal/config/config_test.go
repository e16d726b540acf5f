package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkle/sbgsync/internal/grading"
)

func setSISEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SBGSYNC_TEACHER_EMAIL", "t@school.org")
	t.Setenv("SBGSYNC_SIS_BASE_URL", "https://sis.example.com/ims/oneroster/v1p1")
	t.Setenv("SBGSYNC_SIS_TOKEN_URL", "https://sis.example.com/oauth/token")
	t.Setenv("SBGSYNC_SIS_CLIENT_ID", "id-1")
	t.Setenv("SBGSYNC_SIS_CLIENT_SECRET", "secret-1")
}

func TestFromEnv(t *testing.T) {
	setSISEnv(t)
	t.Setenv("SBGSYNC_SIS_TIMEOUT", "10s")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "t@school.org", cfg.TeacherEmail)
	assert.Equal(t, "id-1", cfg.SIS.ClientID)
	assert.Equal(t, "10s", cfg.SIS.Timeout.String())
}

func TestValidateMissingTeacher(t *testing.T) {
	setSISEnv(t)
	t.Setenv("SBGSYNC_TEACHER_EMAIL", "")

	cfg := FromEnv()
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestParseGradingFile(t *testing.T) {
	raw := []byte(`{
		"symbols": [
			{"character": "1", "mastery": true, "glyph": "✅"},
			{"character": "X", "mastery": false, "glyph": "❌"}
		],
		"levels": [
			{"name": "Basic", "shortCode": "B", "requiredStreak": 2, "score": 2},
			{"name": "Mastery", "shortCode": "M", "requiredStreak": 2, "score": 4, "defaultAttempts": 6}
		],
		"fallbacks": {"noneCorrectScore": 0, "someCorrectScore": 1}
	}`)

	file, err := ParseGradingFile(raw)
	require.NoError(t, err)

	symbols := file.GradingSymbols()
	require.Len(t, symbols, 2)
	assert.True(t, symbols[0].Mastery)

	levels := file.GradingLevels()
	require.Len(t, levels, 2)
	assert.Equal(t, 5, levels[0].DefaultAttempts, "omitted attempt count gets the default")
	assert.Equal(t, 6, levels[1].DefaultAttempts)

	fb := file.GradingFallbacks()
	assert.Equal(t, 0.0, fb.NoneCorrectScore)
	assert.Equal(t, 1.0, fb.SomeCorrectScore)
}

func TestGradingFallbacksDefaults(t *testing.T) {
	// Omitted fallbacks keep the seed defaults.
	file, err := ParseGradingFile([]byte(`{
		"symbols": [{"character": "1", "mastery": true}],
		"levels": [{"name": "Basic", "shortCode": "B", "requiredStreak": 2, "score": 2}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, grading.DefaultFallbacks(), file.GradingFallbacks())

	// A partial block overlays only the key present; an explicit zero
	// is honored.
	file, err = ParseGradingFile([]byte(`{
		"symbols": [{"character": "1", "mastery": true}],
		"levels": [{"name": "Basic", "shortCode": "B", "requiredStreak": 2, "score": 2}],
		"fallbacks": {"noneCorrectScore": 0.5}
	}`))
	require.NoError(t, err)
	fb := file.GradingFallbacks()
	assert.Equal(t, 0.5, fb.NoneCorrectScore)
	assert.Equal(t, 1.0, fb.SomeCorrectScore)

	file, err = ParseGradingFile([]byte(`{
		"symbols": [{"character": "1", "mastery": true}],
		"levels": [{"name": "Basic", "shortCode": "B", "requiredStreak": 2, "score": 2}],
		"fallbacks": {"someCorrectScore": 0}
	}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, file.GradingFallbacks().SomeCorrectScore)
}

func TestParseGradingFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"no levels", `{"symbols": [{"character": "1", "mastery": true}], "levels": []}`},
		{"missing streak", `{"symbols": [{"character": "1", "mastery": true}], "levels": [{"name": "B", "shortCode": "B", "score": 2}]}`},
		{"zero streak", `{"symbols": [{"character": "1", "mastery": true}], "levels": [{"name": "B", "shortCode": "B", "requiredStreak": 0, "score": 2}]}`},
		{"typo key", `{"symbols": [{"character": "1", "mastery": true}], "levels": [{"name": "B", "shortCode": "B", "requiredStreak": 2, "score": 2}], "falbacks": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGradingFile([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}
