package model

import "VidTube.com/pkg/constants"

type User struct {
	Base
	Username   string `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email      string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName   string `gorm:"size:128;not null" json:"fullName"`
	Avatar     string `gorm:"size:512;not null;default:''" json:"avatar"`
	CoverImage string `gorm:"size:512;not null;default:''" json:"coverImage"`
	Password   string `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string {
	return constants.UserTableName
}

// Owner is the denormalized projection of a user attached to other documents.
type Owner struct {
	ID       int64  `gorm:"primaryKey" json:"id,string"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (Owner) TableName() string {
	return constants.UserTableName
}

// OwnerColumns restricts joins to the projected columns.
var OwnerColumns = []string{"id", "username", "avatar"}
