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

func TogglePostLikeDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Toggle Post Like",
		Description: "Flips the local like flag of a post. Likes are never sent anywhere.",
		Params:      []docs.Parameter{idParam(), pathParam("postId", "Id of a post shown on the screen")},
		Resp:        types.Post{},
	}
}

func TogglePostLike(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	holder, ok := s.(screens.PostHolder)

	if !ok {
		return api.WrongScreen(s, "posts")
	}

	post, err := holder.ToggleLike(chi.URLParam(r, "postId"))

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Json: post,
	}
}
