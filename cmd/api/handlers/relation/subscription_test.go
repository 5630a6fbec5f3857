package handlers

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"VidTube.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
)

type stubSubs struct {
	calls      int
	subscribed bool
	err        error
}

func (s *stubSubs) ToggleSubscription(context.Context, int64, int64) (bool, error) {
	s.calls++
	s.subscribed = !s.subscribed
	return s.subscribed, s.err
}

func (s *stubSubs) ListSubscribers(_ context.Context, _ int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	s.calls++
	return paginate.NewPage([]*model.Subscription(nil), 0, p), s.err
}

func (s *stubSubs) ListSubscribedChannels(_ context.Context, _ int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	s.calls++
	return paginate.NewPage([]*model.Subscription(nil), 0, p), s.err
}

func subscriptionEngine(actor int64, subs *stubSubs) *route.Engine {
	r := testutil.NewEngine(actor)
	h := NewSubscriptionHandler(subs)
	r.POST("/subscriptions/c/:channelId", h.ToggleSubscription)
	r.GET("/subscriptions/c/:channelId", h.ListSubscribers)
	r.GET("/subscriptions/u/:subscriberId", h.ListSubscribedChannels)
	return r
}

func TestSubscriptionMalformedIDs(t *testing.T) {
	subs := &stubSubs{}
	r := subscriptionEngine(1, subs)
	for _, tc := range []struct{ method, url, msg string }{
		{consts.MethodPost, "/subscriptions/c/x", "Invalid channelId"},
		{consts.MethodGet, "/subscriptions/c/x", "Invalid channelId"},
		{consts.MethodGet, "/subscriptions/u/x", "Invalid subscriberId"},
	} {
		code, env := testutil.Perform(t, r, tc.method, tc.url, "")
		assert.Equal(t, consts.StatusBadRequest, code)
		assert.Equal(t, tc.msg, env.Message)
	}
	assert.Zero(t, subs.calls)
}

func TestToggleSubscriptionHandler(t *testing.T) {
	r := subscriptionEngine(1, &stubSubs{})

	code, env := testutil.Perform(t, r, consts.MethodPost, "/subscriptions/c/2", "")
	assert.Equal(t, consts.StatusCreated, code)
	assert.JSONEq(t, `{"isSubscribed":true}`, string(env.Data))

	code, env = testutil.Perform(t, r, consts.MethodPost, "/subscriptions/c/2", "")
	assert.Equal(t, consts.StatusOK, code)
	assert.Equal(t, "Unsubscribed successfully", env.Message)
}

func TestMissingChannel(t *testing.T) {
	r := subscriptionEngine(0, &stubSubs{err: errno.NotFoundErr.WithMessage("Channel not found")})
	code, env := testutil.Perform(t, r, consts.MethodGet, "/subscriptions/c/2", "")
	assert.Equal(t, consts.StatusNotFound, code)
	assert.Equal(t, "Channel not found", env.Message)
}
