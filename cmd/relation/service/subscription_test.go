package service

import (
	"context"
	"errors"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ subscriber, channel int64 }

type memSubs struct {
	users   map[int64]bool
	subs    map[pair]bool
	creates int
	deletes int
}

func newMemSubs(users ...int64) *memSubs {
	m := &memSubs{users: map[int64]bool{}, subs: map[pair]bool{}}
	for _, u := range users {
		m.users[u] = true
	}
	return m
}

func (m *memSubs) ChannelExists(_ context.Context, id int64) error {
	if !m.users[id] {
		return errno.NotFoundErr.WithMessage("Channel not found")
	}
	return nil
}

func (m *memSubs) IsSubscribed(_ context.Context, s, c int64) (bool, error) {
	return m.subs[pair{s, c}], nil
}

func (m *memSubs) CreateSubscription(_ context.Context, sub *model.Subscription) error {
	m.creates++
	m.subs[pair{sub.SubscriberID, sub.ChannelID}] = true
	return nil
}

func (m *memSubs) DeleteSubscription(_ context.Context, s, c int64) error {
	m.deletes++
	delete(m.subs, pair{s, c})
	return nil
}

func (m *memSubs) list(p paginate.Params, keep func(pair) bool) *paginate.Page[*model.Subscription] {
	var docs []*model.Subscription
	for k := range m.subs {
		if keep(k) {
			docs = append(docs, &model.Subscription{SubscriberID: k.subscriber, ChannelID: k.channel})
		}
	}
	return paginate.NewPage(docs, int64(len(docs)), p)
}

func (m *memSubs) ListSubscribers(_ context.Context, c int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	return m.list(p, func(k pair) bool { return k.channel == c }), nil
}

func (m *memSubs) ListSubscribedChannels(_ context.Context, s int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	return m.list(p, func(k pair) bool { return k.subscriber == s }), nil
}

type recordingPublisher struct {
	events []*mq.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e *mq.Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestToggleSubscription(t *testing.T) {
	ctx := context.Background()
	subs := newMemSubs(1, 2)
	pub := &recordingPublisher{}
	svc := NewSubscriptionService(subs, pub)

	for i, want := range []bool{true, false, true} {
		got, err := svc.ToggleSubscription(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got, "call %d", i)
	}
	assert.Equal(t, 2, subs.creates)
	assert.Equal(t, 1, subs.deletes)

	require.Len(t, pub.events, 3)
	assert.Equal(t, mq.SubscriptionToggled, pub.events[0].Type)
	require.NotNil(t, pub.events[1].State)
	assert.False(t, *pub.events[1].State)
}

func TestToggleSubscriptionRejects(t *testing.T) {
	ctx := context.Background()
	subs := newMemSubs(1, 2)
	svc := NewSubscriptionService(subs, nil)

	t.Run("own channel", func(t *testing.T) {
		_, err := svc.ToggleSubscription(ctx, 1, 1)
		assert.Equal(t, int64(errno.BadRequestCode), errno.ConvertErr(err).ErrCode)
	})
	t.Run("missing channel", func(t *testing.T) {
		_, err := svc.ToggleSubscription(ctx, 1, 9)
		assert.True(t, errno.IsNotFound(err))
	})
	assert.Zero(t, subs.creates+subs.deletes)
}

func TestSubscriptionListings(t *testing.T) {
	ctx := context.Background()
	subs := newMemSubs(1, 2, 3)
	svc := NewSubscriptionService(subs, nil)
	for _, s := range []int64{1, 3} {
		_, err := svc.ToggleSubscription(ctx, s, 2)
		require.NoError(t, err)
	}
	p := paginate.NewParams("", "", "", "", "")

	page, err := svc.ListSubscribers(ctx, 2, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalDocs)

	page, err = svc.ListSubscribedChannels(ctx, 2, p)
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
	assert.EqualValues(t, 0, page.TotalPages)

	_, err = svc.ListSubscribers(ctx, 42, p)
	assert.True(t, errors.Is(err, errno.NotFoundErr))
}
