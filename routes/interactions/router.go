package interactions

import (
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Interactions", "Actions on a mounted screen: likes, insights, followers, profile tabs, chat messages and comment replies."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/screens/{id}/posts/{postId}/insights",
		OpId:    "get_post_insights",
		Method:  uapi.POST,
		Docs:    PostInsightsDocs,
		Handler: PostInsights,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/posts/{postId}/like",
		OpId:    "toggle_post_like",
		Method:  uapi.POST,
		Docs:    TogglePostLikeDocs,
		Handler: TogglePostLike,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/reels/{reelId}/like",
		OpId:    "toggle_reel_like",
		Method:  uapi.POST,
		Docs:    ToggleReelLikeDocs,
		Handler: ToggleReelLike,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/followers",
		OpId:    "get_followers",
		Method:  uapi.POST,
		Docs:    FollowersDocs,
		Handler: Followers,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/tab",
		OpId:    "select_profile_tab",
		Method:  uapi.PUT,
		Docs:    SelectTabDocs,
		Handler: SelectTab,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/messages",
		OpId:    "send_message",
		Method:  uapi.POST,
		Docs:    SendMessageDocs,
		Handler: SendMessage,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/comments/{commentId}/replies",
		OpId:    "reply_to_comment",
		Method:  uapi.POST,
		Docs:    ReplyCommentDocs,
		Handler: ReplyComment,
	}.Route(r)

	uapi.Route{
		Pattern: "/screens/{id}/video/insights",
		OpId:    "get_video_insights",
		Method:  uapi.POST,
		Docs:    VideoInsightsDocs,
		Handler: VideoInsights,
	}.Route(r)
}
