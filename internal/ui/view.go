package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/markdown"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

//go:embed templates
var templatesFS embed.FS

// views holds one template set per page: the layout, the shared partials and the page.
var views = mustParseViews()

// Shell is what every template sees. Page specific props live in Data.
type Shell struct {
	Title     string
	AppName   string
	Path      string
	CSRFToken string
	Nonce     string
	User      *model.User
	PollEvery int // seconds
	Data      any
}

// View is a page template bound to its props.
type View struct {
	name  string
	title string
	data  any
}

func NewView(name, title string, data any) View {
	return View{name: name, title: title, data: data}
}

// Page renders the full document.
func (v View) Page() templ.Component {
	return v.Block("layout")
}

// Content renders only what goes inside #content.
func (v View) Content() templ.Component {
	return v.Block("content")
}

// Block renders a named template of the page, e.g. a list fragment.
func (v View) Block(block string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, ok := views[v.name]
		if !ok {
			return fmt.Errorf("unknown view %q", v.name)
		}
		return t.ExecuteTemplate(w, block, shell(ctx, v.title, v.data))
	})
}

func shell(ctx context.Context, title string, data any) Shell {
	s := Shell{
		Title:     title,
		AppName:   "FitLife",
		Path:      ctxkeys.URLPath(ctx),
		CSRFToken: ctxkeys.CSRFToken(ctx),
		Nonce:     templ.GetNonce(ctx),
		User:      ctxkeys.User(ctx),
		PollEvery: 30,
		Data:      data,
	}
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		if cfg.AppName != "" {
			s.AppName = cfg.AppName
		}
		if secs := int(cfg.NotificationPollInterval / time.Second); secs > 0 {
			s.PollEvery = secs
		}
	}
	return s
}

var funcs = template.FuncMap{
	"markdown": markdown.HTML,
	"title":    TitleName,
	"initials": Initials,
	"date":     FormatDate,
	"datetime": FormatDateTime,
	"number":   FormatNumber,
	"percent":  func(n, total any) int { return Percent(toFloat(n), toFloat(total)) },
	"active":   func(current, prefix string) bool { return strings.HasPrefix(current, prefix) },
	"add":      func(a, b int) int { return a + b },
	"key":      func(prefix string, i int, name string) string { return fmt.Sprintf("%s.%d.%s", prefix, i, name) },
	"dict":     dict,
	"deref":    deref,
}

func mustParseViews() map[string]*template.Template {
	entries, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		panic(err)
	}

	out := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".html")
		t := template.Must(template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials.html",
			entry,
		))
		out[name] = t
	}
	return out
}

// deref unwraps the optional numeric fields of the plan models.
func deref(v any) any {
	switch p := v.(type) {
	case *float64:
		if p == nil {
			return 0.0
		}
		return *p
	case *int:
		if p == nil {
			return 0
		}
		return *p
	}
	return v
}

// dict builds a map for passing several values to a nested template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}
