// Package schemas declares the response shape of every generated content kind.
package schemas

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"google.golang.org/genai"
)

// Tier selects the model weight used for a kind
type Tier int

const (
	TierFast Tier = iota
	TierReasoning
)

func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierReasoning:
		return "reasoning"
	}

	panic("Invalid tier")
}

type Kind string

const (
	KindPosts         Kind = "posts"
	KindStories       Kind = "stories"
	KindReels         Kind = "reels"
	KindProfile       Kind = "profile"
	KindFollowers     Kind = "followers"
	KindConversations Kind = "conversations"
	KindMessages      Kind = "messages"
	KindComments      Kind = "comments"
	KindPostInsights  Kind = "post_insights"
	KindVideos        Kind = "videos"
	KindVideoInsights Kind = "video_insights"
)

// Descriptor is a registry entry
type Descriptor struct {
	Kind   Kind
	Tier   Tier
	Schema *genai.Schema

	shape *openapi3.Schema
}

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func boolean() *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean}
}

func stringList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: str()}
}

// object builds an object schema where every listed property is required
func object(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func arrayOf(item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: item}
}

var registry = map[Kind]Descriptor{
	KindPosts: {
		Kind: KindPosts,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"id":       str(),
			"username": str(),
			"location": str(),
			"caption":  str(),
			"likes":    str(),
			"timeAgo":  str(),
		}, "id", "username", "location", "caption", "likes", "timeAgo")),
	},
	KindStories: {
		Kind: KindStories,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"id":       str(),
			"username": str(),
		}, "id", "username")),
	},
	KindReels: {
		Kind: KindReels,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"id":       str(),
			"title":    str(),
			"views":    str(),
			"postedAt": str(),
		}, "id", "title", "views", "postedAt")),
	},
	KindProfile: {
		Kind: KindProfile,
		Tier: TierFast,
		Schema: object(map[string]*genai.Schema{
			"bio":       str(),
			"followers": str(),
			"following": str(),
			"postCount": str(),
		}, "bio", "followers", "following", "postCount"),
	},
	KindFollowers: {
		Kind: KindFollowers,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"username": str(),
			"fullName": str(),
		}, "username", "fullName")),
	},
	KindConversations: {
		Kind: KindConversations,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"id":          str(),
			"username":    str(),
			"lastMessage": str(),
			"timestamp":   str(),
			"unread":      boolean(),
			"isOnline":    boolean(),
		}, "id", "username", "lastMessage", "timestamp", "unread", "isOnline")),
	},
	KindMessages: {
		Kind: KindMessages,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"id":        str(),
			"sender":    str(),
			"text":      str(),
			"timestamp": str(),
			"isMe":      boolean(),
		}, "id", "sender", "text", "timestamp", "isMe")),
	},
	KindComments: {
		Kind: KindComments,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"author": str(),
			"text":   str(),
			"likes":  str(),
			"time":   str(),
		}, "author", "text", "likes", "time")),
	},
	KindPostInsights: {
		Kind: KindPostInsights,
		Tier: TierReasoning,
		Schema: object(map[string]*genai.Schema{
			"vibe":                 str(),
			"hashtags":             stringList(),
			"engagementPrediction": str(),
		}, "vibe", "hashtags", "engagementPrediction"),
	},
	KindVideos: {
		Kind: KindVideos,
		Tier: TierFast,
		Schema: arrayOf(object(map[string]*genai.Schema{
			"id":          str(),
			"title":       str(),
			"channelName": str(),
			"views":       str(),
			"postedAt":    str(),
			"duration":    str(),
			"description": str(),
		}, "id", "title", "channelName", "views", "postedAt", "duration", "description")),
	},
	KindVideoInsights: {
		Kind: KindVideoInsights,
		Tier: TierReasoning,
		Schema: object(map[string]*genai.Schema{
			"summary":      str(),
			"keyTakeaways": stringList(),
			"sentiment":    str(),
		}, "summary", "keyTakeaways", "sentiment"),
	},
}

func init() {
	for k, d := range registry {
		d.shape = openAPISchema(d.Schema)
		registry[k] = d
	}
}

// Lookup returns the descriptor of a kind. Unknown kinds panic, they can only
// come from a programming error.
func Lookup(k Kind) Descriptor {
	d, ok := registry[k]

	if !ok {
		panic(fmt.Sprintf("schemas: unknown kind %q", k))
	}

	return d
}

// Kinds lists every registered kind
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	return kinds
}
