package router

import (
	interactionhandlers "VidTube.com/cmd/api/handlers/interaction"
	relationhandlers "VidTube.com/cmd/api/handlers/relation"
	tweethandlers "VidTube.com/cmd/api/handlers/tweet"
	userhandlers "VidTube.com/cmd/api/handlers/user"
	videohandlers "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/middleware"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/hertz-contrib/jwt"
)

type Handlers struct {
	Users         *userhandlers.UserHandler
	Videos        *videohandlers.VideoHandler
	Playlists     *videohandlers.PlaylistHandler
	Dashboard     *videohandlers.DashboardHandler
	Comments      *interactionhandlers.CommentHandler
	Likes         *interactionhandlers.LikeHandler
	Tweets        *tweethandlers.TweetHandler
	Subscriptions *relationhandlers.SubscriptionHandler
}

// Register mounts the health check and every API route. guards run ahead of
// all /api/v1 routes.
func Register(r *route.Engine, h *Handlers, mw *jwt.HertzJWTMiddleware, guards ...app.HandlerFunc) {
	r.GET("/healthcheck", middleware.Health)

	auth := authfunc.Auth(mw)
	optional := authfunc.OptionalAuth(mw)

	api := r.Group(constants.APIPrefix, guards...)
	api.GET("/healthcheck", middleware.Health)

	users := api.Group("/users")
	users.POST("/register", h.Users.Register)
	users.POST("/login", mw.LoginHandler)
	users.POST("/refresh-token", mw.RefreshHandler)
	users.GET("/current-user", auth, h.Users.CurrentUser)
	users.GET("/c/:username", optional, h.Users.ChannelProfile)

	videos := api.Group("/videos")
	videos.GET("", h.Videos.ListVideos)
	videos.POST("", auth, h.Videos.PublishVideo)
	videos.GET("/:videoId", optional, h.Videos.GetVideo)
	videos.PATCH("/:videoId", auth, h.Videos.UpdateVideo)
	videos.DELETE("/:videoId", auth, h.Videos.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", auth, h.Videos.TogglePublish)

	comments := api.Group("/comments")
	comments.GET("/:videoId", h.Comments.ListComments)
	comments.POST("/:videoId", auth, h.Comments.AddComment)
	comments.PATCH("/c/:commentId", auth, h.Comments.UpdateComment)
	comments.DELETE("/c/:commentId", auth, h.Comments.DeleteComment)

	likes := api.Group("/likes", auth)
	likes.POST("/toggle/v/:videoId", h.Likes.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", h.Likes.ToggleCommentLike)
	likes.POST("/toggle/t/:tweetId", h.Likes.ToggleTweetLike)
	likes.GET("/videos", h.Likes.LikedVideos)

	tweets := api.Group("/tweets")
	tweets.POST("", auth, h.Tweets.CreateTweet)
	tweets.GET("/user/:userId", h.Tweets.ListUserTweets)
	tweets.PATCH("/:tweetId", auth, h.Tweets.UpdateTweet)
	tweets.DELETE("/:tweetId", auth, h.Tweets.DeleteTweet)

	playlists := api.Group("/playlist")
	playlists.POST("", auth, h.Playlists.CreatePlaylist)
	playlists.GET("/user/:userId", h.Playlists.ListUserPlaylists)
	playlists.GET("/:playlistId", h.Playlists.GetPlaylist)
	playlists.PATCH("/:playlistId", auth, h.Playlists.UpdatePlaylist)
	playlists.DELETE("/:playlistId", auth, h.Playlists.DeletePlaylist)
	playlists.PATCH("/add/:videoId/:playlistId", auth, h.Playlists.AddVideo)
	playlists.PATCH("/remove/:videoId/:playlistId", auth, h.Playlists.RemoveVideo)

	subscriptions := api.Group("/subscriptions")
	subscriptions.POST("/c/:channelId", auth, h.Subscriptions.ToggleSubscription)
	subscriptions.GET("/c/:channelId", h.Subscriptions.ListSubscribers)
	subscriptions.GET("/u/:subscriberId", h.Subscriptions.ListSubscribedChannels)

	dashboard := api.Group("/dashboard", auth)
	dashboard.GET("/stats", h.Dashboard.Stats)
	dashboard.GET("/videos", h.Dashboard.Videos)
}
