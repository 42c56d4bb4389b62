package views

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/uapi"
)

func idParam() docs.Parameter {
	return docs.Parameter{
		Name:        "id",
		In:          "path",
		Description: "The id returned when the screen was mounted",
		Required:    true,
		Schema:      docs.IdSchema,
	}
}

func GetScreenDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Screen",
		Description: "Returns the current snapshot of a mounted screen. Reading a screen keeps it from expiring.",
		Params:      []docs.Parameter{idParam(), waitParam()},
		Resp:        screens.Mounted{},
	}
}

func GetScreen(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	s, id, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	api.Settle(r, id)

	return uapi.HttpResponse{
		Json: api.Envelope(id, s),
	}
}
