package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := map[string]string{
		"pt-BR": "pt",
		"es-ES": "es",
		"de":    "de",
		"nl-BE": "nl",
		"en-US": "en",
		"fr-FR": "en",
		"":      "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, Match(in), in)
	}
}

func TestT(t *testing.T) {
	defer SetLang(GetLang())

	SetLang("pt")
	assert.Equal(t, "Fechar", T("Close"))
	assert.Equal(t, "missing key", T("missing key"))

	SetLang("en")
	assert.Equal(t, "Close", T("Close"))
	assert.Contains(t, T("help_text"), "Right-click")
}

func TestUnsupportedLangFallsBackToEnglish(t *testing.T) {
	defer SetLang(GetLang())

	t.Setenv(EnvLang, "fr")
	Init()
	require.Equal(t, "fr", GetLang())
	assert.Contains(t, T("help_text"), "Right-click")
	assert.Equal(t, "Close", T("Close"))
	assert.Equal(t, "missing key", T("missing key"))
}

func TestInitFromEnv(t *testing.T) {
	defer SetLang(GetLang())

	t.Setenv(EnvLang, "de")
	Init()
	assert.Equal(t, "de", GetLang())
	assert.Equal(t, "Hilfe", T("Help"))
}
