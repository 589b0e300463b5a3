package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBackLabel(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"", "Back"},
		{"en", "Back"},
		{"de", "Zurück"},
		{"de_DE.UTF-8", "Zurück"},
		{"fr-CA", "Retour"},
		{"es", "Atrás"},
		{"ja_JP", "戻る"},
		{"C", "Back"},
		{"xx", "Back"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l, err := New(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.BackLabel())
		})
	}
}

func TestLanguage(t *testing.T) {
	l, err := New("de_AT")
	require.NoError(t, err)

	base, _ := l.Language().Base()
	assert.Equal(t, "de", base.String())
}

func TestSupported(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)

	assert.Contains(t, l.Supported(), language.English)
	assert.Contains(t, l.Supported(), language.German)
	assert.Len(t, l.Supported(), 5)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "pt-BR", Normalize("pt_BR.UTF-8"))
	assert.Equal(t, "sr-RS", Normalize("sr_RS@latin"))
	assert.Equal(t, "", Normalize("POSIX"))
	assert.Equal(t, "en-US", Normalize(" en-US "))
}
