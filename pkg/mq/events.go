package mq

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event is a domain fact published after a mutation commits.
type Event struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	ActorID   string `json:"actor_id"`
	TargetID  string `json:"target_id"`
	State     *bool  `json:"state,omitempty"` // toggles only
	Timestamp int64  `json:"timestamp"`
}

const (
	EventExchange = "vidtube_events"

	VideoPublished      = "video.published"
	VideoDeleted        = "video.deleted"
	LikeToggled         = "like.toggled"
	CommentAdded        = "comment.added"
	SubscriptionToggled = "subscription.toggled"
)

func NewEvent(typ string, actor, target int64) *Event {
	return &Event{
		EventID:   uuid.NewString(),
		Type:      typ,
		ActorID:   strconv.FormatInt(actor, 10),
		TargetID:  strconv.FormatInt(target, 10),
		Timestamp: time.Now().Unix(),
	}
}

// WithState records the resulting state of a toggle.
func (e *Event) WithState(on bool) *Event {
	e.State = &on
	return e
}
