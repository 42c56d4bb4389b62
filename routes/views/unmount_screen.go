package views

import (
	"net/http"

	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

func UnmountScreenDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Unmount Screen",
		Description: "Closes a screen. Pending loads and chat replies of the screen are cancelled.",
		Params:      []docs.Parameter{idParam()},
	}
}

func UnmountScreen(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	if !state.Screens.Unmount(chi.URLParam(r, "id")) {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	return uapi.DefaultResponse(http.StatusNoContent)
}
