package screens

import (
	"context"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

// PostHolder is implemented by screens that render posts
type PostHolder interface {
	ToggleLike(postID string) (types.Post, error)
	PostInsights(ctx context.Context, postID string) (LazyView[types.PostInsights], error)
}

// postBoard is the post list of a screen with its local likes and the lazily
// generated insights per post. Callers hold the screen lock.
type postBoard struct {
	posts    gateway.Result[[]types.Post]
	insights map[string]*Memo[types.PostInsights]
}

func (pb *postBoard) reset(posts gateway.Result[[]types.Post]) {
	pb.posts = posts
	pb.insights = map[string]*Memo[types.PostInsights]{}
}

func (pb *postBoard) index(postID string) int {
	for i, p := range pb.posts.Data {
		if p.ID == postID {
			return i
		}
	}
	return -1
}

func (pb *postBoard) toggleLike(postID string) (types.Post, error) {
	i := pb.index(postID)
	if i < 0 {
		return types.Post{}, ErrNotFound
	}

	pb.posts.Data[i].IsLiked = !pb.posts.Data[i].IsLiked
	return pb.posts.Data[i], nil
}

// memo returns the insight memo of a post, creating it on first use
func (pb *postBoard) memo(postID string) (*Memo[types.PostInsights], types.Post, error) {
	i := pb.index(postID)
	if i < 0 {
		return nil, types.Post{}, ErrNotFound
	}

	if pb.insights == nil {
		pb.insights = map[string]*Memo[types.PostInsights]{}
	}

	m, ok := pb.insights[postID]
	if !ok {
		m = &Memo[types.PostInsights]{}
		pb.insights[postID] = m
	}

	return m, pb.posts.Data[i], nil
}

type PostsView struct {
	Posts    gateway.Result[[]types.Post]            `json:"posts"`
	Insights map[string]LazyView[types.PostInsights] `json:"insights"`
}

func (pb *postBoard) view() PostsView {
	posts := pb.posts
	posts.Data = clone(pb.posts.Data)

	insights := make(map[string]LazyView[types.PostInsights], len(pb.insights))
	for id, m := range pb.insights {
		insights[id] = m.View()
	}

	return PostsView{Posts: posts, Insights: insights}
}

// postScreen is the PostHolder implementation shared by home, search and
// profile.
type postScreen struct {
	base
	board postBoard
	gw    *gateway.Gateway
}

func (s *postScreen) ToggleLike(postID string) (types.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.Post{}, ErrClosed
	}

	return s.board.toggleLike(postID)
}

// PostInsights generates the insights of a post once per screen instance
func (s *postScreen) PostInsights(ctx context.Context, postID string) (LazyView[types.PostInsights], error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return LazyView[types.PostInsights]{}, ErrClosed
	}
	m, post, err := s.board.memo(postID)
	s.mu.Unlock()

	if err != nil {
		return LazyView[types.PostInsights]{}, err
	}

	m.Get(ctx, func(ctx context.Context) gateway.Result[types.PostInsights] {
		return s.gw.PostInsights(ctx, post)
	})

	return m.View(), nil
}
