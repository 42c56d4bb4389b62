package screens

import (
	"context"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

const trendingQuery = "trending viral videos across all categories"

var exploreCategories = []types.Category{
	{Name: "Trending", Icon: "flame"},
	{Name: "Music", Icon: "music"},
	{Name: "Gaming", Icon: "gamepad"},
	{Name: "Sports", Icon: "trophy"},
	{Name: "News", Icon: "newspaper"},
	{Name: "Movies", Icon: "clapperboard"},
}

type Explore struct {
	base
	gw     *gateway.Gateway
	videos gateway.Result[[]types.Video]
}

type ExploreSnapshot struct {
	Header
	Categories []types.Category              `json:"categories"`
	Trending   gateway.Result[[]types.Video] `json:"trending"`
}

func NewExplore(d Deps) *Explore {
	return &Explore{base: newBase(KindExplore, d.Logger), gw: d.Gateway}
}

func (e *Explore) Load(ctx context.Context, gen uint64, param string) {
	defer e.finish(gen)

	videos := e.gw.SearchVideos(ctx, trendingQuery)

	e.apply(gen, func() {
		e.videos = videos
	})
}

func (e *Explore) Snapshot() any {
	e.mu.RLock()
	defer e.mu.RUnlock()

	videos := e.videos
	videos.Data = clone(e.videos.Data)

	return ExploreSnapshot{
		Header:     e.header(),
		Categories: clone(exploreCategories),
		Trending:   videos,
	}
}
