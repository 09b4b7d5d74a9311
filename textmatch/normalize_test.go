package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLight(t *testing.T) {
	assert.Equal(t, "¿qué tal?", NormalizeLight("  ¿Qué TAL?  "))
	assert.Equal(t, "hola", NormalizeLight("Hola"))
}

func TestNormalizeFullStripsAccentsAndPunctuation(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"¿Qué es la aspirina?", "que es la aspirina"},
		{"¡Tomar para el DOLOR!", "tomar para el dolor"},
		{"  acción   rápida  ", "accion rapida"},
		{"500 mg", "500 mg"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeFull(c.in))
	}
}

func TestNormalizeFullKeepsEnie(t *testing.T) {
	assert.Equal(t, "año con ñ", NormalizeFull("Año con ñ"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"tengo", "dolor", "y", "quiero", "tomar", "asprina"},
		Tokenize("Tengo dolor y quiero tomar asprina"))

	assert.Equal(t,
		[]string{"qué", "efectos", "tiene"},
		Tokenize("¿Qué efectos tiene?"))

	assert.Nil(t, Tokenize("123 !!"))
}
