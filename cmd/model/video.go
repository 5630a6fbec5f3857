package model

import "VidTube.com/pkg/constants"

type Video struct {
	Base
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	VideoFile   string  `gorm:"size:512;not null" json:"videoFile"`
	Thumbnail   string  `gorm:"size:512;not null" json:"thumbnail"`
	Duration    float64 `gorm:"not null;default:0" json:"duration"`
	Views       int64   `gorm:"not null;default:0" json:"views"`
	IsPublished bool    `gorm:"not null;index" json:"isPublished"`
	OwnerID     int64   `gorm:"not null;index" json:"ownerId,string"`
	Owner       *Owner  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Video) TableName() string {
	return constants.VideoTableName
}

func (v *Video) GetOwnerID() int64 { return v.OwnerID }

func (v *Video) Kind() string { return "video" }
