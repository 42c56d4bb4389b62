package screens

import (
	"context"
)

// Search shows posts for a query. The query is the tracked parameter.
type Search struct {
	postScreen
}

type SearchSnapshot struct {
	Header
	PostsView
}

func NewSearch(d Deps) *Search {
	return &Search{postScreen: postScreen{base: newBase(KindSearch, d.Logger), gw: d.Gateway}}
}

func (s *Search) Load(ctx context.Context, gen uint64, query string) {
	defer s.finish(gen)

	posts := s.gw.SearchPosts(ctx, query)

	s.apply(gen, func() {
		s.board.reset(posts)
	})
}

func (s *Search) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SearchSnapshot{
		Header:    s.header(),
		PostsView: s.board.view(),
	}
}
