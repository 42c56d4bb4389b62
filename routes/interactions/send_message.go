package interactions

import (
	"net/http"

	"github.com/stevenson0/Insta-clone/api"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"
)

var compiledMessageMessages = uapi.CompileValidationErrors(types.SendMessage{})

func SendMessageDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Send Message",
		Description: "Appends a message to a chat screen. A simulated reply from the other user follows after a short delay, poll the screen to see it.",
		Params:      []docs.Parameter{idParam()},
		Req:         types.SendMessage{},
		Resp:        types.Message{},
	}
}

func SendMessage(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload types.SendMessage

	hresp, ok := uapi.MarshalValidReq(r, &payload, compiledMessageMessages)

	if !ok {
		return hresp
	}

	s, _, ok := api.Mounted(r)

	if !ok {
		return uapi.DefaultResponse(http.StatusNotFound)
	}

	chat, ok := s.(*screens.ChatRoom)

	if !ok {
		return api.WrongScreen(s, "messages")
	}

	msg, err := chat.Send(payload.Text)

	if err != nil {
		return api.ScreenErrorResponse(err)
	}

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json:   msg,
	}
}
