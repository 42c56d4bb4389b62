package interactions

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"
)

func FollowersDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Followers",
		Description: "Loads the follower list of a profile screen on first request and returns the stored list afterwards.",
		Params:      []docs.Parameter{idParam()},
		Resp:        screens.LazyView[[]types.Follower]{},
	}
}

func Followers(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	profile, ok := s.(*screens.Profile)

	if !ok {
		return api.WrongScreen(s, "followers")
	}

	view, err := profile.Followers(s.Context())

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Json: view,
	}
}
