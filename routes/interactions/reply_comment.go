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

var compiledReplyMessages = uapi.CompileValidationErrors(types.ReplyComment{})

func ReplyCommentDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Reply To Comment",
		Description: "Adds a local reply after the existing replies of a top-level comment on a watch screen. Replies themselves cannot be replied to.",
		Params:      []docs.Parameter{idParam(), pathParam("commentId", "Id of a top-level comment")},
		Req:         types.ReplyComment{},
		Resp:        types.Comment{},
	}
}

func ReplyComment(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload types.ReplyComment

	hresp, ok := uapi.MarshalValidReq(r, &payload, compiledReplyMessages)

	if !ok {
		return hresp
	}

	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	watch, ok := s.(*screens.Watch)

	if !ok {
		return api.WrongScreen(s, "comments")
	}

	reply, err := watch.Reply(chi.URLParam(r, "commentId"), payload.Text)

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json:   reply,
	}
}
