package types

// MountScreen creates a screen instance
type MountScreen struct {
	Kind  string `json:"kind" validate:"required,screenkind" msg:"Kind must be one of home, search, explore, reels, profile, messages, chat or watch"`
	Param string `json:"param" description:"Search query, username or video id. Required for profile, chat and watch" validate:"max=256" msg:"Param must be at most 256 characters"`
}

// RetargetScreen changes the tracked parameter of a mounted screen
type RetargetScreen struct {
	Param string `json:"param" description:"New parameter: search query, username or video id" validate:"max=256" msg:"Param must be at most 256 characters"`
}

type SelectTab struct {
	Tab string `json:"tab" validate:"required,oneof=posts reels shorts bookmarks tagged" msg:"Tab must be one of posts, reels, shorts, bookmarks or tagged"`
}

type SendMessage struct {
	Text string `json:"text" validate:"required,notblank,max=2000" msg:"Message text must not be blank and at most 2000 characters"`
}

type ReplyComment struct {
	Text string `json:"text" validate:"required,notblank,max=2000" msg:"Reply text must not be blank and at most 2000 characters"`
}

// Theme is the dark mode flag of one client
type Theme struct {
	ClientID string `json:"client_id" description:"Opaque id the client picked for itself"`
	Dark     bool   `json:"dark" description:"Whether dark mode is on"`
}
