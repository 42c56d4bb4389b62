package gateway

import (
	"fmt"
	"strings"

	"github.com/stevenson0/Insta-clone/types"
)

const (
	// LocalUser is the name the local user goes by in generated chats
	LocalUser = "GeminiUser"

	feedPostCount         = 10
	userPostCount         = 12
	reelCount             = 9
	followerCount         = 15
	conversationCount     = 8
	storyCount            = 12
	commentCount          = 5
	videoSearchCount      = 6
	chatHistoryMinMessage = 6
	chatHistoryMaxMessage = 8
)

func feedPostsPrompt() string {
	return fmt.Sprintf("Generate %d realistic Instagram-style post descriptions. Themes: travel, tech, food, lifestyle, and art. Include usernames and locations.", feedPostCount)
}

func searchPostsPrompt(query string) string {
	return fmt.Sprintf("Generate %d realistic Instagram-style post descriptions that would appear as results for the search %q. Include usernames and locations.", feedPostCount, query)
}

func userPostsPrompt(username string) string {
	return fmt.Sprintf("Generate %d realistic social media post descriptions specifically for the user %q. The posts should reflect a consistent lifestyle (e.g., photographer, traveler, or chef).", userPostCount, username)
}

func userReelsPrompt(username string) string {
	return fmt.Sprintf("Generate %d realistic short-form vertical video (Reels) metadata for user %q. Include trendy titles and view counts like \"1.2M\".", reelCount, username)
}

func userProfilePrompt(username string) string {
	return fmt.Sprintf("Generate a profile bio for a social media user named %q. Include a short bio, follower count (e.g., \"1.2M\"), and following count.", username)
}

func followersPrompt(username string) string {
	return fmt.Sprintf("Generate a list of %d followers for the user %q. For each follower, provide a unique username and a full name.", followerCount, username)
}

func conversationsPrompt() string {
	return fmt.Sprintf("Generate a list of %d realistic social media direct message conversations. Include username, a short catchy last message, and a timestamp.", conversationCount)
}

func chatHistoryPrompt(username string) string {
	return fmt.Sprintf("Generate a realistic chat history of %d-%d messages between me (%s) and %q. The conversation should be friendly and casual. Some messages should be from me and some from them.", chatHistoryMinMessage, chatHistoryMaxMessage, LocalUser, username)
}

func storiesPrompt() string {
	return fmt.Sprintf("Generate %d unique usernames for social media stories.", storyCount)
}

func commentsPrompt(caption string) string {
	return fmt.Sprintf("Generate %d trendy and realistic comments for a post with this caption: %q. Use emojis and modern internet slang.", commentCount, caption)
}

func postInsightsPrompt(p types.Post) string {
	return fmt.Sprintf("Analyze this post: Caption: %q. Location: %q. Provide a \"vibe\" description, 5 trending hashtags, and an engagement prediction (High/Medium/Low).", p.Caption, p.Location)
}

func searchVideosPrompt(query string) string {
	return fmt.Sprintf("Generate %d realistic video search results for the query: %q. Return as JSON array of video objects.", videoSearchCount, query)
}

func videoInsightsPrompt(v types.Video) string {
	return fmt.Sprintf("Provide AI analysis for this video: Title: %q. Description: %q. Include summary, key takeaways, and sentiment.", v.Title, v.Description)
}

// cleanJSON strips the markdown fences some models wrap JSON answers in
func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
