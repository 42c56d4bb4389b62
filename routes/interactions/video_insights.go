package interactions

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"
)

func VideoInsightsDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Video Insights",
		Description: "Returns the summary, key takeaways and sentiment of the video on a watch screen, generating them if the screen has not yet.",
		Params:      []docs.Parameter{idParam()},
		Resp:        screens.LazyView[types.VideoInsights]{},
	}
}

func VideoInsights(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	watch, ok := s.(*screens.Watch)

	if !ok {
		return api.WrongScreen(s, "video")
	}

	view, err := watch.VideoInsights(s.Context())

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Json: view,
	}
}
