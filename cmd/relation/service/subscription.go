package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/paginate"
	"github.com/sirupsen/logrus"
)

type SubscriptionStore interface {
	ChannelExists(ctx context.Context, channelID int64) error
	IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error)
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriberID, channelID int64) error
	ListSubscribers(ctx context.Context, channelID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error)
	ListSubscribedChannels(ctx context.Context, subscriberID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error)
}

type SubscriptionService struct {
	subs   SubscriptionStore
	events mq.Publisher
}

func NewSubscriptionService(subs SubscriptionStore, events mq.Publisher) *SubscriptionService {
	if events == nil {
		events = mq.NopPublisher{}
	}
	return &SubscriptionService{subs: subs, events: events}
}

// ToggleSubscription subscribes the actor to the channel or cancels an
// existing subscription, returning whether the actor is subscribed afterwards.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, actor, channelID int64) (bool, error) {
	if actor == channelID {
		return false, errno.RequestErr.WithMessage("You cannot subscribe to your own channel")
	}
	if err := s.subs.ChannelExists(ctx, channelID); err != nil {
		return false, err
	}
	subscribed, err := guard.Toggle(ctx,
		func(ctx context.Context) (bool, error) { return s.subs.IsSubscribed(ctx, actor, channelID) },
		func(ctx context.Context) error { return s.subs.DeleteSubscription(ctx, actor, channelID) },
		func(ctx context.Context) error {
			return s.subs.CreateSubscription(ctx, &model.Subscription{SubscriberID: actor, ChannelID: channelID})
		},
	)
	if err != nil {
		return false, err
	}
	if err := s.events.Publish(ctx, mq.NewEvent(mq.SubscriptionToggled, actor, channelID).WithState(subscribed)); err != nil {
		logrus.WithError(err).Warn("publish subscription event failed")
	}
	return subscribed, nil
}

// ListSubscribers pages the users subscribed to a channel.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	if err := s.subs.ChannelExists(ctx, channelID); err != nil {
		return nil, err
	}
	return s.subs.ListSubscribers(ctx, channelID, p)
}

// ListSubscribedChannels pages the channels a user subscribes to.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	if err := s.subs.ChannelExists(ctx, subscriberID); err != nil {
		return nil, err
	}
	return s.subs.ListSubscribedChannels(ctx, subscriberID, p)
}
