package model

type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
}

type ChannelProfile struct {
	ID                        int64  `json:"id,string"`
	Username                  string `json:"username"`
	FullName                  string `json:"fullName"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}
