package preferences

import (
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Preferences", "The dark mode flag of each client. Clients that never chose a theme get dark mode."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/preferences/{clientId}/theme",
		OpId:    "get_theme",
		Method:  uapi.GET,
		Docs:    GetThemeDocs,
		Handler: GetTheme,
	}.Route(r)

	uapi.Route{
		Pattern: "/preferences/{clientId}/theme/toggle",
		OpId:    "toggle_theme",
		Method:  uapi.POST,
		Docs:    ToggleThemeDocs,
		Handler: ToggleTheme,
	}.Route(r)
}
