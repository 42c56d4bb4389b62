package views_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/gateway/gatewaytest"
	"github.com/stevenson0/Insta-clone/routes/routetest"
	"github.com/stevenson0/Insta-clone/routes/views"
	"github.com/stevenson0/Insta-clone/schemas"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
)

type envelope[T any] struct {
	ID     string       `json:"id"`
	Kind   screens.Kind `json:"kind"`
	Screen T            `json:"screen"`
}

var posts = []map[string]string{
	{"id": "p1", "username": "ana", "location": "Porto", "caption": "river", "likes": "5", "timeAgo": "3h"},
}

func TestMountAndWait(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindPosts, posts)
	r := routetest.New(t, fake, views.Router{})

	rec := routetest.Do(t, r, http.MethodPost, "/screens?wait=true", types.MountScreen{Kind: "search", Param: "rivers"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := routetest.Decode[envelope[screens.SearchSnapshot]](t, rec)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, screens.KindSearch, got.Kind)
	assert.False(t, got.Screen.Loading)
	assert.Equal(t, "rivers", got.Screen.Param)
	assert.Equal(t, gateway.OutcomeOK, got.Screen.Posts.Outcome)
	require.Len(t, got.Screen.Posts.Data, 1)
	assert.Equal(t, "p1", got.Screen.Posts.Data[0].ID)

	rec = routetest.Do(t, r, http.MethodGet, "/screens/"+got.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, got, routetest.Decode[envelope[screens.SearchSnapshot]](t, rec))
}

func TestMountValidation(t *testing.T) {
	r := routetest.New(t, gatewaytest.New(), views.Router{})

	rec := routetest.Do(t, r, http.MethodPost, "/screens", types.MountScreen{Kind: "settings"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	apiErr := routetest.Decode[types.ApiError](t, rec)
	assert.Contains(t, apiErr.Message, "Kind must be one of")

	rec = routetest.Do(t, r, http.MethodPost, "/screens", types.MountScreen{Kind: "profile"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, screens.ErrParamRequired.Error(), routetest.Decode[types.ApiError](t, rec).Message)

	rec = routetest.Do(t, r, http.MethodPost, "/screens", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Zero(t, state.Screens.Len())
}

func TestFailedLoadStillSettles(t *testing.T) {
	fake := gatewaytest.New().FailAll(errors.New("quota exceeded"))
	r := routetest.New(t, fake, views.Router{})

	rec := routetest.Do(t, r, http.MethodPost, "/screens?wait=true", types.MountScreen{Kind: "home"})
	require.Equal(t, http.StatusCreated, rec.Code)

	got := routetest.Decode[envelope[screens.HomeSnapshot]](t, rec)
	assert.False(t, got.Screen.Loading)
	assert.Equal(t, gateway.OutcomeUnavailable, got.Screen.Posts.Outcome)
	assert.Equal(t, gateway.ReasonTransport, got.Screen.Posts.Reason)
	assert.Empty(t, got.Screen.Posts.Data)
	assert.Empty(t, got.Screen.Stories.Data)
}

func TestRetargetAndUnmount(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindPosts, posts)
	r := routetest.New(t, fake, views.Router{})

	rec := routetest.Do(t, r, http.MethodPost, "/screens?wait=true", types.MountScreen{Kind: "profile", Param: "ana"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := routetest.Decode[envelope[screens.ProfileSnapshot]](t, rec).ID

	rec = routetest.Do(t, r, http.MethodPatch, "/screens/"+id+"?wait=true", types.RetargetScreen{Param: "bo"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := routetest.Decode[envelope[screens.ProfileSnapshot]](t, rec)
	assert.Equal(t, "bo", got.Screen.Username)
	assert.Equal(t, "@bo", got.Screen.Handle)
	require.Len(t, got.Screen.Posts.Data, 1)
	assert.Equal(t, "bo", got.Screen.Posts.Data[0].Username)

	rec = routetest.Do(t, r, http.MethodPatch, "/screens/"+id, types.RetargetScreen{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = routetest.Do(t, r, http.MethodDelete, "/screens/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = routetest.Do(t, r, http.MethodGet, "/screens/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = routetest.Do(t, r, http.MethodDelete, "/screens/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
