package meta

import (
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Meta", "Information about this server."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/status",
		OpId:    "status",
		Method:  uapi.GET,
		Docs:    StatusDocs,
		Handler: Status,
	}.Route(r)
}
