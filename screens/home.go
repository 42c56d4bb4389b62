package screens

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

// Home is the feed: posts and stories, loaded together
type Home struct {
	postScreen
	stories gateway.Result[[]types.Story]
}

type HomeSnapshot struct {
	Header
	PostsView
	Stories gateway.Result[[]types.Story] `json:"stories"`
}

func NewHome(d Deps) *Home {
	return &Home{postScreen: postScreen{base: newBase(KindHome, d.Logger), gw: d.Gateway}}
}

func (h *Home) Load(ctx context.Context, gen uint64, param string) {
	defer h.finish(gen)

	var (
		posts   gateway.Result[[]types.Post]
		stories gateway.Result[[]types.Story]
	)

	var g errgroup.Group
	g.Go(func() error {
		posts = h.gw.FeedPosts(ctx)
		return nil
	})
	g.Go(func() error {
		stories = h.gw.Stories(ctx)
		return nil
	})
	g.Wait()

	h.apply(gen, func() {
		h.board.reset(posts)
		h.stories = stories
	})
}

func (h *Home) Snapshot() any {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stories := h.stories
	stories.Data = clone(h.stories.Data)

	return HomeSnapshot{
		Header:    h.header(),
		PostsView: h.board.view(),
		Stories:   stories,
	}
}
