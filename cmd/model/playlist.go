package model

import (
	"time"

	"VidTube.com/pkg/constants"
)

type Playlist struct {
	Base
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	OwnerID     int64  `gorm:"not null;index" json:"ownerId,string"`
	Owner       *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	// Videos is filled by the access layer in playlist order.
	Videos []*Video `gorm:"-" json:"videos"`
}

func (Playlist) TableName() string {
	return constants.PlaylistTableName
}

func (p *Playlist) GetOwnerID() int64 { return p.OwnerID }

func (p *Playlist) Kind() string { return "playlist" }

// PlaylistVideo is one ordered entry of a playlist. The composite key keeps a
// video from appearing twice in the same playlist.
type PlaylistVideo struct {
	PlaylistID int64     `gorm:"primaryKey;autoIncrement:false"`
	VideoID    int64     `gorm:"primaryKey;autoIncrement:false;index"`
	Position   int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (PlaylistVideo) TableName() string {
	return constants.PlaylistVideoTableName
}
