// Package toast renders the dismissible notices swapped into #toast-container.
package toast

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

type Props struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	Icon        bool
	Dismissible bool
	// Duration in milliseconds before the toast removes itself. 0 keeps the default.
	Duration int
	Class    string
}

const defaultDuration = 4000

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-200 bg-white text-gray-900",
	VariantSuccess: "border-green-200 bg-green-50 text-green-900",
	VariantError:   "border-red-200 bg-red-50 text-red-900",
	VariantWarning: "border-yellow-200 bg-yellow-50 text-yellow-900",
	VariantInfo:    "border-blue-200 bg-blue-50 text-blue-900",
}

var icons = map[Variant]string{
	VariantSuccess: "✓",
	VariantError:   "✕",
	VariantWarning: "!",
	VariantInfo:    "i",
}

const baseClass = "pointer-events-auto flex w-80 items-start gap-3 rounded-lg border p-4 shadow-lg"

// Classes merges the base, variant and caller classes; later ones win.
func Classes(p Props) string {
	v, ok := variantClasses[p.Variant]
	if !ok {
		v = variantClasses[VariantDefault]
	}
	return twmerge.Merge(baseClass, v, p.Class)
}

func Toast(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		duration := p.Duration
		if duration <= 0 {
			duration = defaultDuration
		}

		_, err := fmt.Fprintf(w, `<div class="%s" role="status" data-toast data-duration="%d"`,
			templ.EscapeString(Classes(p)), duration)
		if err != nil {
			return err
		}
		if p.ID != "" {
			if _, err := fmt.Fprintf(w, ` id="%s"`, templ.EscapeString(p.ID)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}

		if icon, ok := icons[p.Variant]; ok && p.Icon {
			if _, err := fmt.Fprintf(w, `<span class="font-bold" aria-hidden="true">%s</span>`, icon); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<div class="flex-1">`); err != nil {
			return err
		}
		if p.Title != "" {
			if _, err := fmt.Fprintf(w, `<p class="text-sm font-semibold">%s</p>`, templ.EscapeString(p.Title)); err != nil {
				return err
			}
		}
		if p.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="mt-1 text-sm opacity-90">%s</p>`, templ.EscapeString(p.Description)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}

		if p.Dismissible {
			if _, err := io.WriteString(w, `<button type="button" class="text-sm opacity-60 hover:opacity-100" data-toast-dismiss aria-label="Cerrar">✕</button>`); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

// Error is the common failure toast.
func Error(title, description string) templ.Component {
	return Toast(Props{Title: title, Description: description, Variant: VariantError, Icon: true, Dismissible: true})
}

// Success is the common confirmation toast.
func Success(title, description string) templ.Component {
	return Toast(Props{Title: title, Description: description, Variant: VariantSuccess, Icon: true, Dismissible: true})
}
