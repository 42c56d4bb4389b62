// Package routetest wires the global state against a scripted generator so
// route packages can be tested through a real router.
package routetest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/infinitybotlist/eureka/jsonimpl"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stevenson0/Insta-clone/api"
	"github.com/stevenson0/Insta-clone/config"
	"github.com/stevenson0/Insta-clone/decorator"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/gateway/gatewaytest"
	"github.com/stevenson0/Insta-clone/preferences"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"
)

const PublicURL = "https://insta.example"

// New resets the global state and returns a router serving the given routers
func New(t *testing.T, fake *gatewaytest.Fake, routers ...uapi.APIRouter) *chi.Mux {
	t.Helper()

	state.Logger = zap.NewNop()
	state.Validator = validator.New()
	state.SetupValidator()

	state.Config = &config.Config{
		Server:  config.Server{PublicURL: PublicURL},
		Storage: config.Storage{Backend: "memory"},
	}

	state.Gateway = gateway.New(fake, gateway.Models{Fast: "fast-model", Reasoning: "reasoning-model"}, decorator.New(""), nil)
	state.Screens = screens.NewRegistry(screens.Deps{
		Gateway:        state.Gateway,
		Logger:         state.Logger,
		PublicURL:      PublicURL,
		ChatReplyDelay: 10 * time.Millisecond,
	}, time.Minute)
	t.Cleanup(state.Screens.Close)

	state.Themes = preferences.NewThemes(preferences.NewMemoryStore(), nil)

	docs.DocsSetupData = &docs.SetupData{
		URL:         PublicURL,
		ErrorStruct: types.ApiError{},
		Info:        docs.Info{Title: "Insta-clone", Version: "test"},
	}
	docs.Setup()
	api.Setup()

	r := chi.NewMux()

	for _, router := range routers {
		name, desc := router.Tag()
		docs.AddTag(name, desc)
		uapi.State.SetCurrentTag(name)
		router.Routes(r)
	}

	return r
}

// Do sends a request with body marshalled as JSON unless it is nil
func Do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := jsonimpl.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = http.NoBody
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

// Decode unmarshals the response body into T
func Decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, jsonimpl.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
