package meta

import (
	"net/http"

	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"
)

func StatusDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Status",
		Description: "Returns the model used for each content tier, the theme storage backend and how many screens are mounted.",
		Params:      []docs.Parameter{},
		Resp:        types.Status{},
	}
}

func Status(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	models := state.Gateway.Models()

	return uapi.HttpResponse{
		Json: types.Status{
			FastModel:      models.Fast,
			ReasoningModel: models.Reasoning,
			StorageBackend: state.Config.Storage.Backend,
			MountedScreens: state.Screens.Len(),
		},
	}
}
