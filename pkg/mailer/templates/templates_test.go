package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	assert.True(t, Has(Welcome))
	assert.False(t, Has("password-reset"))
}

func TestRender_DefaultsMissingFields(t *testing.T) {
	subject, text, html, err := Render(Welcome, map[string]any{"Email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Restaurant API, there", subject)
	assert.Contains(t, text, "Hi there,")
	assert.Contains(t, html, "<strong>a@b.c</strong>")
}

func TestRender_Unknown(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.ErrorIs(t, err, ErrUnknown)
}
