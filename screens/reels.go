package screens

import (
	"context"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

// reelsChannel is the synthetic channel the reels screen plays from
const reelsChannel = "TrendingShorts"

// ReelHolder is implemented by screens with likeable reels
type ReelHolder interface {
	ToggleReelLike(reelID string) (types.Video, error)
}

type Reels struct {
	base
	gw    *gateway.Gateway
	reels gateway.Result[[]types.Video]
}

type ReelsSnapshot struct {
	Header
	Reels gateway.Result[[]types.Video] `json:"reels"`
}

func NewReels(d Deps) *Reels {
	return &Reels{base: newBase(KindReels, d.Logger), gw: d.Gateway}
}

func (r *Reels) Load(ctx context.Context, gen uint64, param string) {
	defer r.finish(gen)

	reels := r.gw.UserReels(ctx, reelsChannel)

	r.apply(gen, func() {
		r.reels = reels
	})
}

func (r *Reels) ToggleReelLike(reelID string) (types.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.Video{}, ErrClosed
	}

	return toggleVideoLike(r.reels.Data, reelID)
}

func (r *Reels) Snapshot() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reels := r.reels
	reels.Data = clone(r.reels.Data)

	return ReelsSnapshot{
		Header: r.header(),
		Reels:  reels,
	}
}

func toggleVideoLike(videos []types.Video, id string) (types.Video, error) {
	for i := range videos {
		if videos[i].ID == id {
			videos[i].IsLiked = !videos[i].IsLiked
			return videos[i], nil
		}
	}
	return types.Video{}, ErrNotFound
}
