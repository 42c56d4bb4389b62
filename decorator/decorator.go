// Package decorator derives placeholder asset URLs from generated record
// identifiers. Every function is pure: the same seed always yields the same URL.
package decorator

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/stevenson0/Insta-clone/types"
)

const (
	DefaultImageBaseURL = "https://picsum.photos"
	DefaultReelDuration = "0:15"
)

type Decorator struct {
	base string
}

func New(imageBaseURL string) *Decorator {
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}

	return &Decorator{base: strings.TrimRight(imageBaseURL, "/")}
}

// Image returns <base>/seed/<seed>/<w>/<h>
func (d *Decorator) Image(seed string, w, h int) string {
	return d.base + "/seed/" + url.PathEscape(seed) + "/" + strconv.Itoa(w) + "/" + strconv.Itoa(h)
}

func (d *Decorator) Avatar(username string) string {
	return d.Image(username, 150, 150)
}

func (d *Decorator) SmallAvatar(username string) string {
	return d.Image(username, 100, 100)
}

func (d *Decorator) FeedPost(p types.Post) types.Post {
	p.MediaURL = d.Image(p.ID, 1080, 1350)
	p.UserAvatar = d.Avatar(p.Username)
	return p
}

// ProfilePost pins the author to the profile owner, the model is not trusted
// to keep the username consistent.
func (d *Decorator) ProfilePost(p types.Post, username string) types.Post {
	p.Username = username
	p.MediaURL = d.Image(p.ID, 1080, 1080)
	p.UserAvatar = d.Avatar(username)
	return p
}

func (d *Decorator) Reel(v types.Video, username string) types.Video {
	v.ChannelName = username
	v.Thumbnail = d.Image("reel-"+v.ID, 1080, 1920)
	v.ChannelAvatar = d.SmallAvatar(username)
	v.Duration = DefaultReelDuration
	return v
}

func (d *Decorator) Video(v types.Video) types.Video {
	v.Thumbnail = d.Image(v.ID, 640, 360)
	v.ChannelAvatar = d.SmallAvatar(v.ChannelName)
	return v
}

func (d *Decorator) Story(s types.Story) types.Story {
	s.Avatar = d.Avatar(s.Username)
	return s
}

func (d *Decorator) Follower(f types.Follower) types.Follower {
	f.Avatar = d.SmallAvatar(f.Username)
	return f
}

func (d *Decorator) Conversation(c types.Conversation) types.Conversation {
	c.UserAvatar = d.Avatar(c.Username)
	return c
}

// Comment assigns the positional id the model does not produce
func (d *Decorator) Comment(c types.Comment, index int) types.Comment {
	c.ID = "c-" + strconv.Itoa(index)
	c.Avatar = d.SmallAvatar(c.Author)
	return c
}

// LocalUserAvatar is the avatar of replies written by the local user
func (d *Decorator) LocalUserAvatar() string {
	return d.SmallAvatar("user")
}

// WatchThumbnail is the thumbnail of the fallback video on the watch screen
func WatchThumbnail(videoID string) string {
	return "https://i.ytimg.com/vi/" + url.PathEscape(videoID) + "/maxresdefault.jpg"
}
