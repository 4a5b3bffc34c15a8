package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"¡Hola, Mundo!", "hola-mundo"},
		{"Quienes Somos", "quienes-somos"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"snake_case -- and   spaces", "snake-case-and-spaces"},
		{"---", ""},
		{"Guía rápida", "gua-rpida"},
		{"VPN 2.0: setup", "vpn-20-setup"},
		{"Hola\u00a0Mundo", "hola-mundo"},
		{"Guía\u2003de\u202fred", "gua-de-red"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(`<h1>Reinicio</h1><p>Pulse <b>Ctrl</b> &amp; <i>Alt</i></p>`)
	assert.Equal(t, "ReinicioPulse Ctrl & Alt", got)
	assert.Equal(t, "plain text", PlainText("plain text"))
	assert.Equal(t, "", PlainText(""))
}

func TestExcerpt(t *testing.T) {
	short := "<p>corto</p>"
	assert.Equal(t, "corto", Excerpt(short, ExcerptLimit))

	exact := strings.Repeat("a", ExcerptLimit)
	assert.Equal(t, exact, Excerpt("<p>"+exact+"</p>", ExcerptLimit))

	long := strings.Repeat("ñ", ExcerptLimit+10)
	got := Excerpt(long, ExcerptLimit)
	assert.Equal(t, strings.Repeat("ñ", ExcerptLimit)+"...", got)
}
