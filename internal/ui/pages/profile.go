package pages

import (
	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

type ProfileProps struct {
	Name    string
	Surname string
	Email   string
	Health  *model.HealthProfile
	Errors  form.Errors
	Error   string
}

func Profile(p ProfileProps) ui.View {
	return ui.NewView("profile", "Mi perfil", p)
}
