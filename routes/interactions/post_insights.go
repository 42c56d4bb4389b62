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

func PostInsightsDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Post Insights",
		Description: "Generates the vibe, hashtags and engagement prediction of a post. The first call generates them, later calls return the stored result.",
		Params:      []docs.Parameter{idParam(), pathParam("postId", "Id of a post shown on the screen")},
		Resp:        screens.LazyView[types.PostInsights]{},
	}
}

func PostInsights(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	holder, ok := s.(screens.PostHolder)

	if !ok {
		return api.WrongScreen(s, "posts")
	}

	// insights outlive the request, so they are generated on the screen lifetime
	view, err := holder.PostInsights(s.Context(), chi.URLParam(r, "postId"))

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Json: view,
	}
}
