package preferences

import (
	"net/http"

	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

func ToggleThemeDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Toggle Theme",
		Description: "Flips the theme of a client, stores it and returns the new value.",
		Params:      []docs.Parameter{clientParam()},
		Resp:        types.Theme{},
	}
}

func ToggleTheme(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	clientID := chi.URLParam(r, "clientId")

	dark, err := state.Themes.Toggle(d.Context, clientID)

	if err != nil {
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Json: types.Theme{ClientID: clientID, Dark: dark},
	}
}
