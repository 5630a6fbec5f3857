package model

import "VidTube.com/pkg/constants"

// Subscription records that Subscriber follows the channel owned by Channel.
type Subscription struct {
	Base
	SubscriberID int64  `gorm:"not null;uniqueIndex:idx_subscription_pair,priority:1" json:"subscriberId,string"`
	ChannelID    int64  `gorm:"not null;uniqueIndex:idx_subscription_pair,priority:2;index" json:"channelId,string"`
	Subscriber   *Owner `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	Channel      *Owner `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}

func (Subscription) TableName() string {
	return constants.SubscriptionTableName
}
