package pages

import (
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

type LoginProps struct {
	Email  string
	Error  string
	Notice string
	// Locked disables the form until the cool-down ends.
	Locked        bool
	LockedMinutes int
	// NeedsVerification offers the resend button for Email.
	NeedsVerification bool
}

func Login(p LoginProps) ui.View {
	return ui.NewView("login", "Iniciar sesión", p)
}

type RegisterProps struct {
	Name    string
	Surname string
	Email   string
	Errors  form.Errors
	Error   string
}

func Register(p RegisterProps) ui.View {
	return ui.NewView("register", "Crear cuenta", p)
}

type VerifyEmailProps struct {
	Email    string
	Verified bool
	Sent     bool
	Error    string
}

func VerifyEmail(p VerifyEmailProps) ui.View {
	return ui.NewView("verify_email", "Verificar email", p)
}

func NotFound() ui.View {
	return ui.NewView("not_found", "Página no encontrada", nil)
}
