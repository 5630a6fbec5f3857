package constants

import "time"

const (
	APIPrefix = "/api/v1"

	// IdentityKey is where the auth middleware stores the caller's user id (int64).
	IdentityKey = "user_id"

	UserTableName          = "users"
	VideoTableName         = "videos"
	CommentTableName       = "comments"
	LikeTableName          = "likes"
	TweetTableName         = "tweets"
	PlaylistTableName      = "playlists"
	PlaylistVideoTableName = "playlist_videos"
	SubscriptionTableName  = "subscriptions"

	VideoBucket   = "video"
	PictureBucket = "picture"

	CommentRateLimit = 10
	TweetRateLimit   = 10
	RateLimitWindow  = time.Minute

	ChannelStatsTTL = 30 * time.Second

	UploadTempDir = "vidtube-upload"
)
