// Package markdown renders the free-text notes and descriptions users write on plans.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

type Parser struct {
	md goldmark.Markdown
}

// NewParser builds a parser that never passes raw HTML through.
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTML renders s for a template. On error the text is shown escaped.
func (p *Parser) HTML(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	out, err := p.Parse([]byte(s))
	if err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(out)
}

var defaultParser = NewParser()

// HTML renders s with the shared parser.
func HTML(s string) template.HTML {
	return defaultParser.HTML(s)
}
