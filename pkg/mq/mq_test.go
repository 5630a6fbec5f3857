package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent(LikeToggled, 7, 9007199254740993).WithState(true)
	assert.NotEmpty(t, e.EventID)
	assert.Equal(t, "9007199254740993", e.TargetID)

	body, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"state":true`)

	plain, err := json.Marshal(NewEvent(CommentAdded, 1, 2))
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "state")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), NewEvent(VideoDeleted, 1, 2)))
}
