package api

import (
	"errors"
	"net/http"

	"github.com/stevenson0/Insta-clone/constants"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DefaultResponder struct{}

func (d DefaultResponder) New(err string, ctx map[string]string) any {
	return types.ApiError{
		Message: err,
		Context: ctx,
	}
}

func Setup() {
	uapi.SetupState(uapi.UAPIState{
		Logger:    state.Logger,
		Context:   state.Context,
		Validator: state.Validator,
		Constants: &uapi.UAPIConstants{
			ResourceNotFound:    constants.ResourceNotFound,
			BadRequest:          constants.BadRequest,
			Conflict:            constants.Conflict,
			InternalServerError: constants.InternalServerError,
			MethodNotAllowed:    constants.MethodNotAllowed,
			BodyRequired:        constants.BodyRequired,
		},
		DefaultResponder: DefaultResponder{},
	})
}

func errorResponse(status int, msg string) uapi.HttpResponse {
	return uapi.HttpResponse{
		Status: status,
		Json:   DefaultResponder{}.New(msg, nil),
	}
}

// ScreenErrorResponse maps a screen error to its HTTP response
func ScreenErrorResponse(err error) uapi.HttpResponse {
	switch {
	case errors.Is(err, screens.ErrNotFound):
		return uapi.DefaultResponse(http.StatusNotFound)
	case errors.Is(err, screens.ErrLoading), errors.Is(err, screens.ErrClosed):
		return errorResponse(http.StatusConflict, err.Error())
	case errors.Is(err, screens.ErrBlankText),
		errors.Is(err, screens.ErrParamRequired),
		errors.Is(err, screens.ErrUnknownKind),
		errors.Is(err, screens.ErrUnknownTab):
		return errorResponse(http.StatusBadRequest, err.Error())
	}

	state.Logger.Error("Unexpected screen error", zap.Error(err))
	return uapi.DefaultResponse(http.StatusInternalServerError)
}

// WrongScreen is returned when an interaction does not apply to the screen kind
func WrongScreen(s screens.Screen, what string) uapi.HttpResponse {
	return errorResponse(http.StatusBadRequest, "a "+string(s.Kind())+" screen has no "+what)
}

// Mounted looks up a screen by the id path param
func Mounted(r *http.Request) (screens.Screen, string, bool) {
	id := chi.URLParam(r, "id")

	s, ok := state.Screens.Get(id)
	return s, id, ok
}

// Envelope wraps a screen snapshot for the client
func Envelope(id string, s screens.Screen) screens.Mounted {
	return screens.Mounted{ID: id, Kind: s.Kind(), Screen: s.Snapshot()}
}

// waitRequested reports whether the client asked to block until the screen
// finished loading
func waitRequested(r *http.Request) bool {
	return r.URL.Query().Get("wait") == "true"
}

// Settle blocks until the latest activation of the screen returned, when the
// client asked for it with ?wait=true
func Settle(r *http.Request, id string) {
	if !waitRequested(r) {
		return
	}

	if err := state.Screens.Settle(r.Context(), id); err != nil {
		state.Logger.Debug("Stopped waiting for screen", zap.String("id", id), zap.Error(err))
	}
}
