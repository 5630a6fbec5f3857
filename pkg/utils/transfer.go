package utils

import (
	"strconv"
	"strings"

	"VidTube.com/pkg/errno"
)

// ParseID validates a client supplied identifier. Anything other than a
// positive decimal int64 is rejected before it reaches the store.
func ParseID(raw, name string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errno.InvalidIDErr.WithMessage("Invalid " + name)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.InvalidIDErr.WithMessage("Invalid " + name)
	}
	return id, nil
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Transfer turns an identity claim back into a user id. Claims travel as
// strings because JSON numbers lose precision above 2^53.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	}
	return -1
}
