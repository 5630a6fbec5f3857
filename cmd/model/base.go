package model

import (
	"time"

	"VidTube.com/pkg/utils"
	"gorm.io/gorm"
)

// Base carries the snowflake id and timestamps shared by every document.
type Base struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == 0 {
		b.ID = utils.NextID()
		// created_at follows the id so both sort keys agree.
		if b.CreatedAt.IsZero() {
			b.CreatedAt = utils.IDTime(b.ID)
		}
	}
	return nil
}

// Owned is implemented by every document that carries an owner reference.
type Owned interface {
	GetOwnerID() int64
	Kind() string
}
