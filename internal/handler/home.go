package handler

import (
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/middleware"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomePage has no content of its own.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	if ctxkeys.User(r.Context()) != nil {
		middleware.Redirect(w, r, "/app/dashboard")
		return
	}
	middleware.Redirect(w, r, "/auth/login")
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	v := pages.NotFound()
	if ui.IsPartial(r) {
		ui.RenderStatus(w, r, http.StatusNotFound, v.Content())
		return
	}
	ui.RenderStatus(w, r, http.StatusNotFound, v.Page())
}

func (h *HomeHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
