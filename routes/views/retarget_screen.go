package views

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

var compiledRetargetMessages = uapi.CompileValidationErrors(types.RetargetScreen{})

func RetargetScreenDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Retarget Screen",
		Description: "Loads the screen again for a new parameter, e.g. another username on a profile. Results of the previous load are discarded.",
		Params:      []docs.Parameter{idParam(), waitParam()},
		Req:         types.RetargetScreen{},
		Resp:        screens.Mounted{},
	}
}

func RetargetScreen(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload types.RetargetScreen

	hresp, ok := uapi.MarshalValidReq(r, &payload, compiledRetargetMessages)

	if !ok {
		return hresp
	}

	id := chi.URLParam(r, "id")

	s, err := state.Screens.Retarget(id, payload.Param)

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	api.Settle(r, id)

	return uapi.HttpResponse{
		Json: api.Envelope(id, s),
	}
}
