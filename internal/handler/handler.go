package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/middleware"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/components/toast"
)

const toastTarget = "beforeend:#toast-container"

// expiredLoginURL shows the "session expired" notice on the login page.
const expiredLoginURL = "/auth/login?expired=1"

// sessionExpired ends the session and sends the user back to login when the backend
// rejected the token.
func sessionExpired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	slog.Info("backend rejected session token", "path", r.URL.Path, "session_id", ctxkeys.SessionID(r.Context()))
	middleware.EndSession(w, r)
	middleware.Redirect(w, r, expiredLoginURL)
	return true
}

func toastError(w http.ResponseWriter, r *http.Request, title, description string) {
	ui.RenderOOB(w, r, toast.Error(title, description), toastTarget)
}

func toastSuccess(w http.ResponseWriter, r *http.Request, title, description string) {
	ui.RenderOOB(w, r, toast.Success(title, description), toastTarget)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// rowAction splits a form action like "remove-food:1:2" into its name and indexes.
func rowAction(action string) (string, []int) {
	parts := strings.Split(action, ":")
	var idx []int
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return parts[0], nil
		}
		idx = append(idx, n)
	}
	return parts[0], idx
}

func userID(r *http.Request) int64 {
	if u := ctxkeys.User(r.Context()); u != nil {
		return u.ID
	}
	return 0
}
