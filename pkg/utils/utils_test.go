package utils

import (
	"testing"
	"time"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDNodeIsMonotonicAndUnique(t *testing.T) {
	node, err := NewIDNode(3, 2)
	require.NoError(t, err)

	seen := make(map[int64]struct{}, 5000)
	var last int64
	for i := 0; i < 5000; i++ {
		id := node.Generate().Int64()
		assert.Greater(t, id, last)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		last = id
	}
}

func TestIDTime(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := NextID()
	assert.Positive(t, id)
	assert.WithinRange(t, IDTime(id), before, time.Now().Add(time.Second))
}

func TestNewIDNodeRejectsOutOfRange(t *testing.T) {
	_, err := NewIDNode(32, 0)
	assert.Error(t, err)
	_, err = NewIDNode(0, -1)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ParseID(" 184467440737 ", "video ID")
		require.NoError(t, err)
		assert.Equal(t, int64(184467440737), id)
	})

	for _, raw := range []string{"", "abc", "0", "-5", "12x", "1.5", "99999999999999999999", "64b7f0c2e4a1b2c3d4e5f6a7"} {
		t.Run("malformed "+raw, func(t *testing.T) {
			_, err := ParseID(raw, "video ID")
			require.Error(t, err)
			assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)
			assert.Equal(t, "Invalid video ID", errno.ConvertErr(err).ErrMsg)
		})
	}
}

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(42), Transfer("42"))
	assert.Equal(t, int64(42), Transfer(int64(42)))
	assert.Equal(t, int64(42), Transfer(float64(42)))
	assert.Equal(t, int64(-1), Transfer("nope"))
	assert.Equal(t, int64(-1), Transfer(struct{}{}))
}

func TestCrypt(t *testing.T) {
	hashed, err := Crypt("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)
	assert.True(t, VerifyPassword("s3cret", hashed))
	assert.False(t, VerifyPassword("wrong", hashed))
}

func TestParseProbeDuration(t *testing.T) {
	d, err := parseProbeDuration(`{"streams":[],"format":{"filename":"a.mp4","duration":"12.480000"}}`)
	require.NoError(t, err)
	assert.InDelta(t, 12.48, d, 1e-9)

	d, err = parseProbeDuration(`{"format":{}}`)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = parseProbeDuration(`not json`)
	assert.Error(t, err)
}
