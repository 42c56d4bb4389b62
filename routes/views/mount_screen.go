package views

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"go.uber.org/zap"
)

var compiledMountMessages = uapi.CompileValidationErrors(types.MountScreen{})

func waitParam() docs.Parameter {
	return docs.Parameter{
		Name:        "wait",
		In:          "query",
		Description: "Set to true to respond only once the screen finished loading",
		Schema:      docs.StringSchema,
	}
}

func MountScreenDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Mount Screen",
		Description: "Creates a screen instance and starts loading its content. The returned id addresses the screen in every other screen endpoint.",
		Params:      []docs.Parameter{waitParam()},
		Req:         types.MountScreen{},
		Resp:        screens.Mounted{},
	}
}

func MountScreen(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload types.MountScreen

	hresp, ok := uapi.MarshalValidReq(r, &payload, compiledMountMessages)

	if !ok {
		return hresp
	}

	id, s, err := state.Screens.Mount(screens.Kind(payload.Kind), payload.Param)

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	state.Logger.Info("Mounted screen", zap.String("id", id), zap.String("kind", payload.Kind))

	api.Settle(r, id)

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json:   api.Envelope(id, s),
	}
}
