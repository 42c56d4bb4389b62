package screens

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/stevenson0/Insta-clone/decorator"
	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

const (
	relatedQuery = "related and trending programming videos"
	localAuthor  = "Gemini User"
)

// Watch plays one video with its comments, related videos and insights
type Watch struct {
	base
	gw        *gateway.Gateway
	publicURL string
	video     *types.Video
	comments  gateway.Result[[]types.Comment]
	related   gateway.Result[[]types.Video]
	insights  *Memo[types.VideoInsights]
}

type WatchSnapshot struct {
	Header
	Video    *types.Video                    `json:"video"`
	EmbedURL string                          `json:"embed_url"`
	ShareURL string                          `json:"share_url"`
	Comments gateway.Result[[]types.Comment] `json:"comments"`
	Related  gateway.Result[[]types.Video]   `json:"related"`
	Insights LazyView[types.VideoInsights]   `json:"insights"`
}

func NewWatch(d Deps) *Watch {
	return &Watch{
		base:      newBase(KindWatch, d.Logger),
		gw:        d.Gateway,
		publicURL: d.PublicURL,
		insights:  &Memo[types.VideoInsights]{},
	}
}

// FallbackVideo is shown when the search for the id yields nothing
func FallbackVideo(d *decorator.Decorator, id string) types.Video {
	return types.Video{
		ID:            id,
		Title:         "Mastering Gemini API with React and TypeScript",
		ChannelName:   "DevMasters",
		ChannelAvatar: d.SmallAvatar(id),
		Views:         "250K views",
		PostedAt:      "1 day ago",
		Description:   "In this comprehensive guide, we explore how to integrate the latest Google Gemini API into your React applications. From real-time streaming to advanced grounding, we cover everything you need to build intelligent AI-powered UI components.",
		Thumbnail:     decorator.WatchThumbnail(id),
	}
}

func (w *Watch) Load(ctx context.Context, gen uint64, videoID string) {
	defer w.finish(gen)

	var video types.Video
	if results := w.gw.SearchVideos(ctx, videoID); len(results.Data) > 0 {
		video = results.Data[0]
	} else {
		video = FallbackVideo(w.gw.Decorator(), videoID)
	}

	insights := &Memo[types.VideoInsights]{}

	if !w.apply(gen, func() {
		w.video = &video
		w.comments = gateway.Result[[]types.Comment]{}
		w.related = gateway.Result[[]types.Video]{}
		w.insights = insights
	}) {
		return
	}

	var (
		comments gateway.Result[[]types.Comment]
		related  gateway.Result[[]types.Video]
	)

	var g errgroup.Group
	g.Go(func() error {
		comments = w.gw.VideoComments(ctx, video.Title)
		return nil
	})
	g.Go(func() error {
		related = w.gw.SearchVideos(ctx, relatedQuery)
		return nil
	})
	g.Go(func() error {
		insights.Get(ctx, func(ctx context.Context) gateway.Result[types.VideoInsights] {
			return w.gw.VideoInsights(ctx, video)
		})
		return nil
	})
	g.Wait()

	w.apply(gen, func() {
		w.comments = comments
		w.related = related
	})
}

// Reply appends a local reply after the existing replies of a top-level
// comment. Replies cannot be replied to.
func (w *Watch) Reply(parentID, text string) (types.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return types.Comment{}, ErrBlankText
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return types.Comment{}, ErrClosed
	}

	for i := range w.comments.Data {
		parent := &w.comments.Data[i]
		if parent.ID != parentID {
			continue
		}

		reply := types.Comment{
			ID:     "local-reply-" + uuid.NewString(),
			Author: localAuthor,
			Avatar: w.gw.Decorator().LocalUserAvatar(),
			Text:   text,
			Likes:  "0",
			Time:   justNow,
		}

		replies := make([]types.Comment, 0, len(parent.Replies)+1)
		replies = append(replies, parent.Replies...)
		parent.Replies = append(replies, reply)

		return reply, nil
	}

	return types.Comment{}, ErrNotFound
}

func (w *Watch) Snapshot() any {
	w.mu.RLock()
	defer w.mu.RUnlock()

	comments := w.comments
	comments.Data = make([]types.Comment, len(w.comments.Data))
	for i, c := range w.comments.Data {
		c.Replies = clone(c.Replies)
		comments.Data[i] = c
	}

	related := w.related
	related.Data = clone(w.related.Data)

	var video *types.Video
	if w.video != nil {
		v := *w.video
		video = &v
	}

	return WatchSnapshot{
		Header:   w.header(),
		Video:    video,
		EmbedURL: "https://www.youtube.com/embed/" + url.PathEscape(w.param) + "?autoplay=1",
		ShareURL: shareURL(w.publicURL, "watch", w.param),
		Comments: comments,
		Related:  related,
		Insights: w.insights.View(),
	}
}

// VideoInsights returns the insights of the current video, generating them if
// the activation has not done so yet.
func (w *Watch) VideoInsights(ctx context.Context) (LazyView[types.VideoInsights], error) {
	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return LazyView[types.VideoInsights]{}, ErrClosed
	}
	if w.video == nil {
		w.mu.RUnlock()
		return LazyView[types.VideoInsights]{}, ErrLoading
	}
	memo, video := w.insights, *w.video
	w.mu.RUnlock()

	memo.Get(ctx, func(ctx context.Context) gateway.Result[types.VideoInsights] {
		return w.gw.VideoInsights(ctx, video)
	})

	return memo.View(), nil
}
