package ui

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	err := c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderStatus writes status before rendering, for 404s and validation failures.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path, "status", status)
	}
}

// RenderOOB renders c wrapped for an htmx out-of-band swap into target
// (e.g. "beforeend:#toast-container").
func RenderOOB(w http.ResponseWriter, r *http.Request, c templ.Component, target string) {
	_, err := fmt.Fprintf(w, `<div hx-swap-oob="%s">`, templ.EscapeString(target))
	if err != nil {
		slog.Error("render oob write wrapper start failed", "error", err)
		return
	}

	err = c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render oob component render failed", "error", err)
		return
	}

	_, err = w.Write([]byte(`</div>`))
	if err != nil {
		slog.Error("render oob write wrapper end failed", "error", err)
	}
}

// IsPartial reports whether an htmx request wants only the page content.
// Boosted requests still get the full document.
func IsPartial(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

// RenderView renders the content block for htmx navigation and the whole page otherwise.
func RenderView(w http.ResponseWriter, r *http.Request, v View) {
	if IsPartial(r) {
		Render(w, r, v.Content())
		return
	}
	Render(w, r, v.Page())
}
