package interactions_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenson0/Insta-clone/gateway/gatewaytest"
	"github.com/stevenson0/Insta-clone/routes/interactions"
	"github.com/stevenson0/Insta-clone/routes/routetest"
	"github.com/stevenson0/Insta-clone/routes/views"
	"github.com/stevenson0/Insta-clone/schemas"
	"github.com/stevenson0/Insta-clone/screens"
	"github.com/stevenson0/Insta-clone/types"
)

type envelope[T any] struct {
	ID     string       `json:"id"`
	Kind   screens.Kind `json:"kind"`
	Screen T            `json:"screen"`
}

func setup(t *testing.T, fake *gatewaytest.Fake) http.Handler {
	return routetest.New(t, fake, views.Router{}, interactions.Router{})
}

func mount(t *testing.T, h http.Handler, kind, param string) string {
	t.Helper()

	rec := routetest.Do(t, h, http.MethodPost, "/screens?wait=true", types.MountScreen{Kind: kind, Param: param})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return routetest.Decode[envelope[any]](t, rec).ID
}

func fixtures() *gatewaytest.Fake {
	return gatewaytest.New().
		RespondJSON(schemas.KindPosts, []map[string]string{
			{"id": "p1", "username": "ana", "location": "Porto", "caption": "river", "likes": "5", "timeAgo": "3h"},
		}).
		RespondJSON(schemas.KindPostInsights, map[string]any{
			"vibe": "Calm", "hashtags": []string{"#porto"}, "engagementPrediction": "High",
		}).
		RespondJSON(schemas.KindReels, []map[string]string{
			{"id": "r1", "title": "clip", "views": "9K", "postedAt": "1d"},
		}).
		RespondJSON(schemas.KindFollowers, []map[string]string{
			{"username": "bo", "fullName": "Bo B"},
		}).
		RespondJSON(schemas.KindMessages, []map[string]any{
			{"id": "h1", "sender": "ana", "text": "hi", "timestamp": "9:00", "isMe": false},
		}).
		RespondJSON(schemas.KindVideos, []map[string]string{
			{"id": "v1", "title": "Go", "channelName": "gopher", "views": "1K", "postedAt": "1d", "duration": "3:00", "description": "d"},
		}).
		RespondJSON(schemas.KindComments, []map[string]string{
			{"author": "ana", "text": "nice", "likes": "2", "time": "1h"},
		}).
		RespondJSON(schemas.KindVideoInsights, map[string]any{
			"summary": "s", "keyTakeaways": []string{"k"}, "sentiment": "Positive",
		})
}

func TestPostInsightsAndLikes(t *testing.T) {
	fake := fixtures()
	h := setup(t, fake)
	id := mount(t, h, "home", "")

	for i := 0; i < 3; i++ {
		rec := routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/posts/p1/insights", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		view := routetest.Decode[screens.LazyView[types.PostInsights]](t, rec)
		assert.Equal(t, screens.LazyReady, view.State)
		require.NotNil(t, view.Result)
		assert.Equal(t, "Calm", view.Result.Data.Vibe)
	}
	assert.Equal(t, 1, fake.Calls(schemas.KindPostInsights))

	rec := routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/posts/p1/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, routetest.Decode[types.Post](t, rec).IsLiked)

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/posts/nope/like", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/reels/r1/like", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileFollowersAndTabs(t *testing.T) {
	fake := fixtures()
	h := setup(t, fake)
	id := mount(t, h, "profile", "ana")

	rec := routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/followers", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := routetest.Decode[screens.LazyView[[]types.Follower]](t, rec)
	require.NotNil(t, view.Result)
	require.Len(t, view.Result.Data, 1)
	assert.Equal(t, "bo", view.Result.Data[0].Username)

	rec = routetest.Do(t, h, http.MethodPut, "/screens/"+id+"/tab", types.SelectTab{Tab: "reels"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, screens.TabReels, routetest.Decode[envelope[screens.ProfileSnapshot]](t, rec).Screen.Tab)

	rec = routetest.Do(t, h, http.MethodPut, "/screens/"+id+"/tab", types.SelectTab{Tab: "likes"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/reels/r1/like", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, routetest.Decode[types.Video](t, rec).IsLiked)
}

func TestChatMessages(t *testing.T) {
	h := setup(t, fixtures())
	id := mount(t, h, "chat", "ana")

	rec := routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/messages", types.SendMessage{Text: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/messages", types.SendMessage{Text: "hello"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sent := routetest.Decode[types.Message](t, rec)
	assert.True(t, sent.IsMe)

	require.Eventually(t, func() bool {
		rec := routetest.Do(t, h, http.MethodGet, "/screens/"+id, nil)
		return len(routetest.Decode[envelope[screens.ChatSnapshot]](t, rec).Screen.Messages) == 3
	}, time.Second, 5*time.Millisecond)

	rec = routetest.Do(t, h, http.MethodGet, "/screens/"+id, nil)
	msgs := routetest.Decode[envelope[screens.ChatSnapshot]](t, rec).Screen.Messages
	assert.Equal(t, sent.ID, msgs[1].ID)
	assert.False(t, msgs[2].IsMe)
	assert.Equal(t, "ana", msgs[2].Sender)
}

func TestWatchReplies(t *testing.T) {
	fake := fixtures()
	h := setup(t, fake)
	id := mount(t, h, "watch", "v1")

	rec := routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/comments/c-0/replies", types.ReplyComment{Text: "same"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reply := routetest.Decode[types.Comment](t, rec)

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/comments/"+reply.ID+"/replies", types.ReplyComment{Text: "deeper"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/video/insights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Positive", routetest.Decode[screens.LazyView[types.VideoInsights]](t, rec).Result.Data.Sentiment)
	assert.Equal(t, 1, fake.Calls(schemas.KindVideoInsights))

	rec = routetest.Do(t, h, http.MethodPost, "/screens/"+id+"/messages", types.SendMessage{Text: "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownScreen(t *testing.T) {
	h := setup(t, fixtures())

	rec := routetest.Do(t, h, http.MethodPost, "/screens/missing/followers", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
