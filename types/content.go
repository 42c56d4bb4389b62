package types

// Post is a generated feed or profile post
type Post struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	UserAvatar string `json:"userAvatar"`
	Location   string `json:"location"`
	MediaURL   string `json:"mediaUrl"`
	Caption    string `json:"caption"`
	Likes      string `json:"likes"`
	TimeAgo    string `json:"timeAgo"`
	IsLiked    bool   `json:"isLiked"`
}

type Story struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	HasSeen  bool   `json:"hasSeen"`
}

// Video is used by search, explore, watch, reels and profile reels
type Video struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Thumbnail     string `json:"thumbnail"`
	ChannelName   string `json:"channelName"`
	ChannelAvatar string `json:"channelAvatar"`
	Views         string `json:"views"`
	PostedAt      string `json:"postedAt"`
	Duration      string `json:"duration,omitempty"`
	Description   string `json:"description,omitempty"`
	IsLiked       bool   `json:"isLiked"`
}

// Comment replies only go one level deep
type Comment struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Avatar  string    `json:"avatar"`
	Text    string    `json:"text"`
	Likes   string    `json:"likes"`
	Time    string    `json:"time"`
	Replies []Comment `json:"replies,omitempty"`
}

type Conversation struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	UserAvatar  string `json:"userAvatar"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Unread      bool   `json:"unread"`
	IsOnline    bool   `json:"isOnline"`
}

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	IsMe      bool   `json:"isMe"`
}

type Profile struct {
	Bio       string `json:"bio"`
	Followers string `json:"followers"`
	Following string `json:"following"`
	PostCount string `json:"postCount"`
}

type Follower struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

type PostInsights struct {
	Vibe                 string   `json:"vibe"`
	Hashtags             []string `json:"hashtags"`
	EngagementPrediction string   `json:"engagementPrediction"`
}

type VideoInsights struct {
	Summary      string   `json:"summary"`
	KeyTakeaways []string `json:"keyTakeaways"`
	Sentiment    string   `json:"sentiment"`
}

// Category is a fixed explore shortcut
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
