// Package gateway turns a content need into one generation request and a
// typed result. Failures never reach the caller: they become an unavailable
// Result carrying the documented default value.
package gateway

import (
	"context"
	"strings"

	"github.com/infinitybotlist/eureka/jsonimpl"
	"go.uber.org/zap"

	"github.com/stevenson0/Insta-clone/decorator"
	"github.com/stevenson0/Insta-clone/schemas"
	"github.com/stevenson0/Insta-clone/types"
)

// Models is the static model routing table
type Models struct {
	Fast      string
	Reasoning string
}

func (m Models) For(t schemas.Tier) string {
	if t == schemas.TierReasoning {
		return m.Reasoning
	}
	return m.Fast
}

type Gateway struct {
	gen       Generator
	models    Models
	decorator *decorator.Decorator
	logger    *zap.Logger
}

func New(gen Generator, models Models, d *decorator.Decorator, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Gateway{
		gen:       gen,
		models:    models,
		decorator: d,
		logger:    logger,
	}
}

func (g *Gateway) Models() Models {
	return g.models
}

func (g *Gateway) Decorator() *decorator.Decorator {
	return g.decorator
}

// DefaultProfile is returned when a profile cannot be generated
func DefaultProfile() types.Profile {
	return types.Profile{Bio: "AI-powered account", Followers: "0", Following: "0", PostCount: "0"}
}

func DefaultPostInsights() types.PostInsights {
	return types.PostInsights{Vibe: "Chilled", Hashtags: []string{}, EngagementPrediction: "Medium"}
}

func DefaultVideoInsights() types.VideoInsights {
	return types.VideoInsights{Summary: "Analysis unavailable.", KeyTakeaways: []string{}, Sentiment: "Neutral"}
}

// generate runs one request through the pipeline: generate, strip fences,
// decode, shape-check and map into T.
func generate[T any](ctx context.Context, g *Gateway, kind schemas.Kind, prompt string, fallback T) Result[T] {
	desc := schemas.Lookup(kind)
	model := g.models.For(desc.Tier)

	text, err := g.gen.Generate(ctx, Request{
		Model:  model,
		Prompt: prompt,
		Schema: desc.Schema,
	})
	if err != nil {
		g.logger.Error("Generation request failed", zap.String("kind", string(kind)), zap.String("model", model), zap.Error(err))
		return unavailable(fallback, ReasonTransport)
	}

	text = cleanJSON(text)
	if text == "" {
		return empty(fallback)
	}

	var raw any
	if err := jsonimpl.Unmarshal([]byte(text), &raw); err != nil {
		g.logger.Error("Generated content is not JSON", zap.String("kind", string(kind)), zap.String("model", model), zap.Error(err), zap.Int("size", len(text)))
		return unavailable(fallback, ReasonMalformed)
	}

	if err := desc.Validate(raw); err != nil {
		g.logger.Error("Generated content does not match schema", zap.String("kind", string(kind)), zap.String("model", model), zap.Error(err))
		return unavailable(fallback, ReasonSchema)
	}

	var out T
	if err := jsonimpl.Unmarshal([]byte(text), &out); err != nil {
		g.logger.Error("Failed to map generated content", zap.String("kind", string(kind)), zap.String("model", model), zap.Error(err))
		return unavailable(fallback, ReasonSchema)
	}

	return ok(out)
}

// generateList is generate for list kinds: a zero-length answer is empty, not ok
func generateList[T any](ctx context.Context, g *Gateway, kind schemas.Kind, prompt string) Result[[]T] {
	res := generate(ctx, g, kind, prompt, []T{})

	if res.Data == nil {
		res.Data = []T{}
	}

	if res.Outcome == OutcomeOK && len(res.Data) == 0 {
		res.Outcome = OutcomeEmpty
	}

	return res
}

func decorateEach[T any](items []T, f func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}

func (g *Gateway) FeedPosts(ctx context.Context) Result[[]types.Post] {
	res := generateList[types.Post](ctx, g, schemas.KindPosts, feedPostsPrompt())
	return mapResult(res, func(posts []types.Post) []types.Post {
		return decorateEach(posts, g.decorator.FeedPost)
	})
}

// SearchPosts forwards the query into the prompt; a blank query is the feed
func (g *Gateway) SearchPosts(ctx context.Context, query string) Result[[]types.Post] {
	query = strings.TrimSpace(query)
	if query == "" {
		return g.FeedPosts(ctx)
	}

	res := generateList[types.Post](ctx, g, schemas.KindPosts, searchPostsPrompt(query))
	return mapResult(res, func(posts []types.Post) []types.Post {
		return decorateEach(posts, g.decorator.FeedPost)
	})
}

func (g *Gateway) UserPosts(ctx context.Context, username string) Result[[]types.Post] {
	res := generateList[types.Post](ctx, g, schemas.KindPosts, userPostsPrompt(username))
	return mapResult(res, func(posts []types.Post) []types.Post {
		return decorateEach(posts, func(p types.Post) types.Post {
			return g.decorator.ProfilePost(p, username)
		})
	})
}

func (g *Gateway) UserReels(ctx context.Context, username string) Result[[]types.Video] {
	res := generateList[types.Video](ctx, g, schemas.KindReels, userReelsPrompt(username))
	return mapResult(res, func(reels []types.Video) []types.Video {
		return decorateEach(reels, func(v types.Video) types.Video {
			return g.decorator.Reel(v, username)
		})
	})
}

func (g *Gateway) UserProfile(ctx context.Context, username string) Result[types.Profile] {
	return generate(ctx, g, schemas.KindProfile, userProfilePrompt(username), DefaultProfile())
}

func (g *Gateway) Followers(ctx context.Context, username string) Result[[]types.Follower] {
	res := generateList[types.Follower](ctx, g, schemas.KindFollowers, followersPrompt(username))
	return mapResult(res, func(f []types.Follower) []types.Follower {
		return decorateEach(f, g.decorator.Follower)
	})
}

func (g *Gateway) Conversations(ctx context.Context) Result[[]types.Conversation] {
	res := generateList[types.Conversation](ctx, g, schemas.KindConversations, conversationsPrompt())
	return mapResult(res, func(c []types.Conversation) []types.Conversation {
		return decorateEach(c, g.decorator.Conversation)
	})
}

func (g *Gateway) ChatHistory(ctx context.Context, username string) Result[[]types.Message] {
	return generateList[types.Message](ctx, g, schemas.KindMessages, chatHistoryPrompt(username))
}

func (g *Gateway) Stories(ctx context.Context) Result[[]types.Story] {
	res := generateList[types.Story](ctx, g, schemas.KindStories, storiesPrompt())
	return mapResult(res, func(s []types.Story) []types.Story {
		return decorateEach(s, g.decorator.Story)
	})
}

func (g *Gateway) PostComments(ctx context.Context, caption string) Result[[]types.Comment] {
	res := generateList[types.Comment](ctx, g, schemas.KindComments, commentsPrompt(caption))
	return mapResult(res, func(comments []types.Comment) []types.Comment {
		out := make([]types.Comment, len(comments))
		for i, c := range comments {
			out[i] = g.decorator.Comment(c, i)
		}
		return out
	})
}

func (g *Gateway) VideoComments(ctx context.Context, title string) Result[[]types.Comment] {
	return g.PostComments(ctx, "Video: "+title)
}

func (g *Gateway) PostInsights(ctx context.Context, post types.Post) Result[types.PostInsights] {
	return generate(ctx, g, schemas.KindPostInsights, postInsightsPrompt(post), DefaultPostInsights())
}

func (g *Gateway) SearchVideos(ctx context.Context, query string) Result[[]types.Video] {
	res := generateList[types.Video](ctx, g, schemas.KindVideos, searchVideosPrompt(query))
	return mapResult(res, func(v []types.Video) []types.Video {
		return decorateEach(v, g.decorator.Video)
	})
}

func (g *Gateway) VideoInsights(ctx context.Context, video types.Video) Result[types.VideoInsights] {
	return generate(ctx, g, schemas.KindVideoInsights, videoInsightsPrompt(video), DefaultVideoInsights())
}
