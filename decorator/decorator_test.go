package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stevenson0/Insta-clone/types"
)

func TestImageTemplate(t *testing.T) {
	d := New("")
	assert.Equal(t, "https://picsum.photos/seed/p1/1080/1350", d.Image("p1", 1080, 1350))
}

func TestCustomBaseTrimsSlash(t *testing.T) {
	d := New("https://img.example.com/")
	assert.Equal(t, "https://img.example.com/seed/ana/150/150", d.Avatar("ana"))
}

func TestSeedIsEscaped(t *testing.T) {
	d := New("")
	assert.Equal(t, "https://picsum.photos/seed/a%2Fb%20c/100/100", d.SmallAvatar("a/b c"))
}

func TestDeterministic(t *testing.T) {
	d := New("")
	p := types.Post{ID: "42", Username: "ana"}

	first := d.FeedPost(p)
	second := d.FeedPost(p)

	assert.Equal(t, first, second)
	assert.Equal(t, first, d.FeedPost(first))
	assert.Equal(t, New("").FeedPost(p), first)
}

func TestFeedPost(t *testing.T) {
	got := New("").FeedPost(types.Post{ID: "42", Username: "ana", Caption: "hi"})

	assert.Equal(t, "https://picsum.photos/seed/42/1080/1350", got.MediaURL)
	assert.Equal(t, "https://picsum.photos/seed/ana/150/150", got.UserAvatar)
	assert.Equal(t, "hi", got.Caption)
}

func TestProfilePostPinsUsername(t *testing.T) {
	got := New("").ProfilePost(types.Post{ID: "7", Username: "someone_else"}, "ana")

	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, "https://picsum.photos/seed/7/1080/1080", got.MediaURL)
	assert.Equal(t, "https://picsum.photos/seed/ana/150/150", got.UserAvatar)
}

func TestReel(t *testing.T) {
	got := New("").Reel(types.Video{ID: "9", Title: "clip"}, "ana")

	assert.Equal(t, "ana", got.ChannelName)
	assert.Equal(t, "https://picsum.photos/seed/reel-9/1080/1920", got.Thumbnail)
	assert.Equal(t, "https://picsum.photos/seed/ana/100/100", got.ChannelAvatar)
	assert.Equal(t, DefaultReelDuration, got.Duration)
}

func TestVideo(t *testing.T) {
	got := New("").Video(types.Video{ID: "v1", ChannelName: "DevMasters"})

	assert.Equal(t, "https://picsum.photos/seed/v1/640/360", got.Thumbnail)
	assert.Equal(t, "https://picsum.photos/seed/DevMasters/100/100", got.ChannelAvatar)
}

func TestComment(t *testing.T) {
	got := New("").Comment(types.Comment{Author: "bo", Text: "nice"}, 3)

	assert.Equal(t, "c-3", got.ID)
	assert.Equal(t, "https://picsum.photos/seed/bo/100/100", got.Avatar)
}

func TestWatchThumbnail(t *testing.T) {
	assert.Equal(t, "https://i.ytimg.com/vi/abc/maxresdefault.jpg", WatchThumbnail("abc"))
}
