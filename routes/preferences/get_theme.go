package preferences

import (
	"net/http"

	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func clientParam() docs.Parameter {
	return docs.Parameter{
		Name:        "clientId",
		In:          "path",
		Description: "Opaque id the client picked for itself",
		Required:    true,
		Schema:      docs.StringSchema,
	}
}

func GetThemeDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Theme",
		Description: "Returns the theme of a client.",
		Params:      []docs.Parameter{clientParam()},
		Resp:        types.Theme{},
	}
}

func GetTheme(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	clientID := chi.URLParam(r, "clientId")

	dark, err := state.Themes.Get(d.Context, clientID)

	if err != nil {
		state.Logger.Error("Failed to read theme", zap.String("client", clientID), zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Json: types.Theme{ClientID: clientID, Dark: dark},
	}
}
