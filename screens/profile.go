package screens

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

type Tab string

const (
	TabPosts     Tab = "posts"
	TabReels     Tab = "reels"
	TabShorts    Tab = "shorts"
	TabBookmarks Tab = "bookmarks"
	TabTagged    Tab = "tagged"
)

var tabs = []Tab{TabPosts, TabReels, TabShorts, TabBookmarks, TabTagged}

// ShowsReels reports whether the grid of the tab is filled with reels
func (t Tab) ShowsReels() bool {
	return t == TabReels || t == TabShorts
}

// Profile is a user page: posts, bio and reels, with followers loaded on demand
type Profile struct {
	postScreen
	publicURL string
	profile   gateway.Result[types.Profile]
	reels     gateway.Result[[]types.Video]
	tab       Tab
	followers *Memo[[]types.Follower]
}

type ProfileSnapshot struct {
	Header
	PostsView
	Username  string                        `json:"username"`
	Handle    string                        `json:"handle"`
	Avatar    string                        `json:"avatar"`
	Profile   gateway.Result[types.Profile] `json:"profile"`
	Reels     gateway.Result[[]types.Video] `json:"reels"`
	Tab       Tab                           `json:"tab"`
	ShareURL  string                        `json:"share_url"`
	Followers LazyView[[]types.Follower]    `json:"followers"`
}

func NewProfile(d Deps) *Profile {
	return &Profile{
		postScreen: postScreen{base: newBase(KindProfile, d.Logger), gw: d.Gateway},
		publicURL:  d.PublicURL,
		tab:        TabPosts,
		followers:  &Memo[[]types.Follower]{},
	}
}

func (p *Profile) Load(ctx context.Context, gen uint64, username string) {
	defer p.finish(gen)

	var (
		posts   gateway.Result[[]types.Post]
		profile gateway.Result[types.Profile]
		reels   gateway.Result[[]types.Video]
	)

	var g errgroup.Group
	g.Go(func() error {
		posts = p.gw.UserPosts(ctx, username)
		return nil
	})
	g.Go(func() error {
		profile = p.gw.UserProfile(ctx, username)
		return nil
	})
	g.Go(func() error {
		reels = p.gw.UserReels(ctx, username)
		return nil
	})
	g.Wait()

	p.apply(gen, func() {
		p.board.reset(posts)
		p.profile = profile
		p.reels = reels
		p.followers = &Memo[[]types.Follower]{}
	})
}

// Followers loads the follower list on first request and reuses it afterwards
func (p *Profile) Followers(ctx context.Context) (LazyView[[]types.Follower], error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return LazyView[[]types.Follower]{}, ErrClosed
	}
	if p.loading {
		p.mu.RUnlock()
		return LazyView[[]types.Follower]{}, ErrLoading
	}
	memo, username := p.followers, p.param
	p.mu.RUnlock()

	memo.Get(ctx, func(ctx context.Context) gateway.Result[[]types.Follower] {
		return p.gw.Followers(ctx, username)
	})

	return memo.View(), nil
}

func (p *Profile) SelectTab(t Tab) error {
	if !slices.Contains(tabs, t) {
		return ErrUnknownTab
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	p.tab = t
	return nil
}

func (p *Profile) ToggleReelLike(reelID string) (types.Video, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return types.Video{}, ErrClosed
	}

	return toggleVideoLike(p.reels.Data, reelID)
}

func (p *Profile) Snapshot() any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	reels := p.reels
	reels.Data = clone(p.reels.Data)

	return ProfileSnapshot{
		Header:    p.header(),
		PostsView: p.board.view(),
		Username:  p.param,
		Handle:    "@" + strings.ToLower(p.param),
		Avatar:    p.gw.Decorator().Image(p.param, 200, 200),
		Profile:   p.profile,
		Reels:     reels,
		Tab:       p.tab,
		ShareURL:  shareURL(p.publicURL, "profile", p.param),
		Followers: p.followers.View(),
	}
}
