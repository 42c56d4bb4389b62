package interactions

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

func ToggleReelLikeDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Toggle Reel Like",
		Description: "Flips the local like flag of a reel on a reels or profile screen.",
		Params:      []docs.Parameter{idParam(), pathParam("reelId", "Id of a reel shown on the screen")},
		Resp:        types.Video{},
	}
}

func ToggleReelLike(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	holder, ok := s.(screens.ReelHolder)

	if !ok {
		return api.WrongScreen(s, "reels")
	}

	reel, err := holder.ToggleReelLike(chi.URLParam(r, "reelId"))

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Json: reel,
	}
}
