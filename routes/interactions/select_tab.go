package interactions

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"
)

var compiledTabMessages = uapi.CompileValidationErrors(types.SelectTab{})

func SelectTabDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Select Profile Tab",
		Description: "Switches the grid of a profile screen. The reels and shorts tabs show reels, every other tab shows posts.",
		Params:      []docs.Parameter{idParam()},
		Req:         types.SelectTab{},
		Resp:        screens.Mounted{},
	}
}

func SelectTab(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload types.SelectTab

	hresp, ok := uapi.MarshalValidReq(r, &payload, compiledTabMessages)

	if !ok {
		return hresp
	}

	s, id, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	profile, ok := s.(*screens.Profile)

	if !ok {
		return api.WrongScreen(s, "tabs")
	}

	if err := profile.SelectTab(screens.Tab(payload.Tab)); err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Json: api.Envelope(id, s),
	}
}
