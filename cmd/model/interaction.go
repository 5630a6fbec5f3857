package model

import (
	"time"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"gorm.io/gorm"
)

type Comment struct {
	Base
	Content string `gorm:"type:text;not null" json:"content"`
	VideoID int64  `gorm:"not null;index" json:"videoId,string"`
	OwnerID int64  `gorm:"not null;index" json:"ownerId,string"`
	Owner   *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Comment) TableName() string {
	return constants.CommentTableName
}

func (c *Comment) GetOwnerID() int64 { return c.OwnerID }

func (c *Comment) Kind() string { return "comment" }

type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

// LikeTarget names the single document a like points at.
type LikeTarget struct {
	Kind LikeKind
	ID   int64
}

// Column is the likes column holding the target reference.
func (t LikeTarget) Column() string {
	switch t.Kind {
	case LikeComment:
		return "comment_id"
	case LikeTweet:
		return "tweet_id"
	default:
		return "video_id"
	}
}

// Like associates a user with exactly one of video, comment or tweet. The
// other two references stay NULL, which keeps the per-kind unique indexes
// meaningful.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	LikedByID int64     `gorm:"not null;uniqueIndex:idx_like_video,priority:1;uniqueIndex:idx_like_comment,priority:1;uniqueIndex:idx_like_tweet,priority:1" json:"likedBy,string"`
	VideoID   *int64    `gorm:"uniqueIndex:idx_like_video,priority:2;index" json:"video,omitempty"`
	CommentID *int64    `gorm:"uniqueIndex:idx_like_comment,priority:2;index" json:"comment,omitempty"`
	TweetID   *int64    `gorm:"uniqueIndex:idx_like_tweet,priority:2;index" json:"tweet,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Like) TableName() string {
	return constants.LikeTableName
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == 0 {
		l.ID = utils.NextID()
	}
	return nil
}

func NewLike(userID int64, target LikeTarget) *Like {
	id := target.ID
	like := &Like{LikedByID: userID}
	switch target.Kind {
	case LikeComment:
		like.CommentID = &id
	case LikeTweet:
		like.TweetID = &id
	default:
		like.VideoID = &id
	}
	return like
}

// Target reports which document the like points at.
func (l *Like) Target() LikeTarget {
	switch {
	case l.CommentID != nil:
		return LikeTarget{Kind: LikeComment, ID: *l.CommentID}
	case l.TweetID != nil:
		return LikeTarget{Kind: LikeTweet, ID: *l.TweetID}
	case l.VideoID != nil:
		return LikeTarget{Kind: LikeVideo, ID: *l.VideoID}
	}
	return LikeTarget{}
}
