package model

import "VidTube.com/pkg/constants"

type Tweet struct {
	Base
	Content string `gorm:"type:text;not null" json:"content"`
	OwnerID int64  `gorm:"not null;index" json:"ownerId,string"`
	Owner   *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Tweet) TableName() string {
	return constants.TweetTableName
}

func (t *Tweet) GetOwnerID() int64 { return t.OwnerID }

func (t *Tweet) Kind() string { return "tweet" }
