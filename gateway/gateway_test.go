package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenson0/Insta-clone/decorator"
	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/gateway/gatewaytest"
	"github.com/stevenson0/Insta-clone/schemas"
	"github.com/stevenson0/Insta-clone/types"
)

var models = gateway.Models{Fast: "fast-model", Reasoning: "reasoning-model"}

func newGateway(fake *gatewaytest.Fake) *gateway.Gateway {
	return gateway.New(fake, models, decorator.New(""), nil)
}

func TestFeedPostsDecorated(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindPosts, []map[string]string{
		{"id": "p1", "username": "ana", "location": "Lisbon", "caption": "sunset", "likes": "1.2k", "timeAgo": "2h"},
	})

	res := newGateway(fake).FeedPosts(context.Background())

	require.Equal(t, gateway.OutcomeOK, res.Outcome)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "https://picsum.photos/seed/p1/1080/1350", res.Data[0].MediaURL)
	assert.Equal(t, "https://picsum.photos/seed/ana/150/150", res.Data[0].UserAvatar)
	assert.Equal(t, "sunset", res.Data[0].Caption)
}

func TestTransportFailureReturnsDefaults(t *testing.T) {
	fake := gatewaytest.New().FailAll(errors.New("connection reset"))
	g := newGateway(fake)
	ctx := context.Background()

	posts := g.FeedPosts(ctx)
	assert.Equal(t, gateway.OutcomeUnavailable, posts.Outcome)
	assert.Equal(t, gateway.ReasonTransport, posts.Reason)
	assert.NotNil(t, posts.Data)
	assert.Empty(t, posts.Data)

	stories := g.Stories(ctx)
	assert.Equal(t, gateway.OutcomeUnavailable, stories.Outcome)
	assert.Empty(t, stories.Data)

	profile := g.UserProfile(ctx, "ana")
	assert.Equal(t, gateway.OutcomeUnavailable, profile.Outcome)
	assert.Equal(t, gateway.DefaultProfile(), profile.Data)

	pi := g.PostInsights(ctx, types.Post{Caption: "x"})
	assert.Equal(t, gateway.DefaultPostInsights(), pi.Data)

	vi := g.VideoInsights(ctx, types.Video{Title: "x"})
	assert.Equal(t, gateway.DefaultVideoInsights(), vi.Data)

	for _, r := range []gateway.Outcome{
		g.UserPosts(ctx, "ana").Outcome,
		g.UserReels(ctx, "ana").Outcome,
		g.Followers(ctx, "ana").Outcome,
		g.Conversations(ctx).Outcome,
		g.ChatHistory(ctx, "ana").Outcome,
		g.PostComments(ctx, "hi").Outcome,
		g.SearchVideos(ctx, "go").Outcome,
	} {
		assert.Equal(t, gateway.OutcomeUnavailable, r)
	}
}

func TestMalformedResponse(t *testing.T) {
	fake := gatewaytest.New().Respond(schemas.KindStories, "{not json")

	res := newGateway(fake).Stories(context.Background())

	assert.Equal(t, gateway.OutcomeUnavailable, res.Outcome)
	assert.Equal(t, gateway.ReasonMalformed, res.Reason)
	assert.Empty(t, res.Data)
}

func TestSchemaViolation(t *testing.T) {
	fake := gatewaytest.New().Respond(schemas.KindProfile, `{"bio":"hello"}`)

	res := newGateway(fake).UserProfile(context.Background(), "ana")

	assert.Equal(t, gateway.OutcomeUnavailable, res.Outcome)
	assert.Equal(t, gateway.ReasonSchema, res.Reason)
	assert.Equal(t, gateway.DefaultProfile(), res.Data)
}

func TestEmptyListIsDistinctFromFailure(t *testing.T) {
	fake := gatewaytest.New().Respond(schemas.KindConversations, "[]")

	res := newGateway(fake).Conversations(context.Background())

	assert.Equal(t, gateway.OutcomeEmpty, res.Outcome)
	assert.Equal(t, gateway.ReasonNone, res.Reason)
	assert.NotNil(t, res.Data)
}

func TestBlankBodyIsEmpty(t *testing.T) {
	res := newGateway(gatewaytest.New()).Followers(context.Background(), "ana")

	assert.Equal(t, gateway.OutcomeEmpty, res.Outcome)
	assert.Empty(t, res.Data)
}

func TestFencedJSONIsAccepted(t *testing.T) {
	fake := gatewaytest.New().Respond(schemas.KindStories, "```json\n[{\"id\":\"s1\",\"username\":\"bo\"}]\n```")

	res := newGateway(fake).Stories(context.Background())

	require.True(t, res.OK())
	assert.Equal(t, "https://picsum.photos/seed/bo/150/150", res.Data[0].Avatar)
}

func TestModelRouting(t *testing.T) {
	fake := gatewaytest.New()
	g := newGateway(fake)
	ctx := context.Background()

	g.FeedPosts(ctx)
	g.PostInsights(ctx, types.Post{Caption: "c", Location: "l"})
	g.VideoInsights(ctx, types.Video{Title: "t"})

	reqs := fake.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "fast-model", reqs[0].Model)
	assert.Equal(t, "reasoning-model", reqs[1].Model)
	assert.Equal(t, "reasoning-model", reqs[2].Model)
	assert.Same(t, schemas.Lookup(schemas.KindPosts).Schema, reqs[0].Schema)
}

func TestSearchPostsForwardsQuery(t *testing.T) {
	fake := gatewaytest.New()
	g := newGateway(fake)

	g.SearchPosts(context.Background(), "  ramen in osaka ")
	g.SearchPosts(context.Background(), "   ")

	reqs := fake.Requests()
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[0].Prompt, `"ramen in osaka"`)
	assert.Contains(t, reqs[1].Prompt, "Themes: travel, tech, food, lifestyle, and art")
}

func TestUserPostsPinnedToUser(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindPosts, []map[string]string{
		{"id": "1", "username": "other", "location": "x", "caption": "y", "likes": "1", "timeAgo": "1d"},
	})

	res := newGateway(fake).UserPosts(context.Background(), "ana")

	require.Len(t, res.Data, 1)
	assert.Equal(t, "ana", res.Data[0].Username)
	assert.Equal(t, "https://picsum.photos/seed/1/1080/1080", res.Data[0].MediaURL)
}

func TestUserReels(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindReels, []map[string]string{
		{"id": "r1", "title": "clip", "views": "1.2M", "postedAt": "1d"},
	})

	res := newGateway(fake).UserReels(context.Background(), "ana")

	require.Len(t, res.Data, 1)
	assert.Equal(t, "ana", res.Data[0].ChannelName)
	assert.Equal(t, "0:15", res.Data[0].Duration)
	assert.Equal(t, "https://picsum.photos/seed/reel-r1/1080/1920", res.Data[0].Thumbnail)
}

func TestCommentsGetPositionalIDs(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindComments, []map[string]string{
		{"author": "a", "text": "one", "likes": "1", "time": "1h"},
		{"author": "b", "text": "two", "likes": "2", "time": "2h"},
	})

	res := newGateway(fake).VideoComments(context.Background(), "Go tour")

	require.Len(t, res.Data, 2)
	assert.Equal(t, "c-0", res.Data[0].ID)
	assert.Equal(t, "c-1", res.Data[1].ID)
	assert.Contains(t, fake.Requests()[0].Prompt, `"Video: Go tour"`)
}

func TestPostInsights(t *testing.T) {
	fake := gatewaytest.New().RespondJSON(schemas.KindPostInsights, map[string]any{
		"vibe":                 "golden hour calm",
		"hashtags":             []string{"#a", "#b"},
		"engagementPrediction": "High",
	})

	res := newGateway(fake).PostInsights(context.Background(), types.Post{Caption: "sunset"})

	require.True(t, res.OK())
	assert.Equal(t, []string{"#a", "#b"}, res.Data.Hashtags)
	assert.Equal(t, "High", res.Data.EngagementPrediction)
}
