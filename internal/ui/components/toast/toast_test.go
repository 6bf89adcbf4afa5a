package toast

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, p Props) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Toast(p).Render(context.Background(), &buf))
	return buf.String()
}

func TestToastEscapesContent(t *testing.T) {
	html := render(t, Props{Title: "<b>hola</b>", Description: "a & b", Variant: VariantError})

	assert.Contains(t, html, "&lt;b&gt;hola&lt;/b&gt;")
	assert.Contains(t, html, "a &amp; b")
	assert.NotContains(t, html, "<b>hola</b>")
}

func TestToastVariantAndDismiss(t *testing.T) {
	html := render(t, Props{Title: "Listo", Variant: VariantSuccess, Icon: true, Dismissible: true})

	assert.Contains(t, html, "bg-green-50")
	assert.Contains(t, html, "✓")
	assert.Contains(t, html, "data-toast-dismiss")
	assert.Contains(t, html, `data-duration="4000"`)
}

func TestClassesCallerOverridesVariant(t *testing.T) {
	c := Classes(Props{Variant: VariantError, Class: "bg-black"})

	assert.Contains(t, c, "bg-black")
	assert.NotContains(t, c, "bg-red-50")
}

func TestClassesUnknownVariantFallsBack(t *testing.T) {
	assert.Contains(t, Classes(Props{Variant: "nope"}), "bg-white")
}
