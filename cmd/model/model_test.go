package model

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"VidTube.com/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestNewLikeSetsExactlyOneTarget(t *testing.T) {
	cases := []struct {
		target LikeTarget
		column string
	}{
		{LikeTarget{Kind: LikeVideo, ID: 7}, "video_id"},
		{LikeTarget{Kind: LikeComment, ID: 8}, "comment_id"},
		{LikeTarget{Kind: LikeTweet, ID: 9}, "tweet_id"},
	}
	for _, tc := range cases {
		t.Run(string(tc.target.Kind), func(t *testing.T) {
			like := NewLike(1, tc.target)
			set := 0
			for _, p := range []*int64{like.VideoID, like.CommentID, like.TweetID} {
				if p != nil {
					set++
				}
			}
			assert.Equal(t, 1, set)
			assert.Equal(t, tc.target, like.Target())
			assert.Equal(t, tc.column, tc.target.Column())
		})
	}
}

func TestBeforeCreateAssignsID(t *testing.T) {
	v := &Video{}
	require.NoError(t, v.BeforeCreate(nil))
	assert.NotZero(t, v.ID)

	kept := &Video{Base: Base{ID: 42}}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, int64(42), kept.ID)
}

func TestOwnedDocuments(t *testing.T) {
	docs := []Owned{
		&Video{OwnerID: 1},
		&Comment{OwnerID: 1},
		&Tweet{OwnerID: 1},
		&Playlist{OwnerID: 1},
	}
	for _, d := range docs {
		assert.Equal(t, int64(1), d.GetOwnerID())
		assert.NotEmpty(t, d.Kind())
	}
}

func TestIdsSerializeAsStrings(t *testing.T) {
	v := Video{Base: Base{ID: 1234567890123456789}, OwnerID: 99, Owner: &Owner{ID: 99, Username: "u1"}}
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"1234567890123456789"`)
	assert.Contains(t, string(raw), `"ownerId":"99"`)
	assert.Contains(t, string(raw), `"owner":{"id":"99","username":"u1","avatar":""}`)
}

func TestBeforeCreateStampsCreationFromID(t *testing.T) {
	before := time.Now().Add(-time.Second)
	v := &Video{}
	require.NoError(t, v.BeforeCreate(nil))
	assert.Equal(t, utils.IDTime(v.ID), v.CreatedAt)
	assert.WithinRange(t, v.CreatedAt, before, time.Now().Add(time.Second))

	set := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	kept := &Video{Base: Base{CreatedAt: set}}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, set, kept.CreatedAt)
}

func TestOwnerColumnsExistOnOwner(t *testing.T) {
	s, err := schema.Parse(&Owner{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	for _, col := range OwnerColumns {
		assert.NotNil(t, s.LookUpField(col), col)
	}
}
