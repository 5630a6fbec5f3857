package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionDao struct {
	db *gorm.DB
}

func NewSubscriptionDao(db *gorm.DB) *SubscriptionDao {
	return &SubscriptionDao{db: db}
}

// ChannelExists reports NotFound when no user owns the channel id.
func (d *SubscriptionDao) ChannelExists(ctx context.Context, channelID int64) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", channelID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "ChannelExists failed")
	}
	if count == 0 {
		return errno.NotFoundErr.WithMessage("Channel not found")
	}
	return nil
}

func (d *SubscriptionDao) IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "IsSubscribed failed")
	}
	return count > 0, nil
}

func (d *SubscriptionDao) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(sub).Error; err != nil {
		return errors.Wrap(err, "CreateSubscription failed")
	}
	return nil
}

func (d *SubscriptionDao) DeleteSubscription(ctx context.Context, subscriberID, channelID int64) error {
	err := d.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{}).Error
	if err != nil {
		return errors.Wrap(err, "DeleteSubscription failed")
	}
	return nil
}

func (d *SubscriptionDao) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, errors.Wrap(err, "CountSubscribers failed")
}

func (d *SubscriptionDao) CountSubscribedTo(ctx context.Context, subscriberID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, errors.Wrap(err, "CountSubscribedTo failed")
}

var subscriptionSort = map[string]string{"createdAt": "created_at"}

// ListSubscribers pages a channel's subscriptions with the subscriber projection.
func (d *SubscriptionDao) ListSubscribers(ctx context.Context, channelID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	plan := paginate.Plan{
		Model:       &model.Subscription{},
		Filters:     []paginate.Scope{paginate.Eq("channel_id", channelID)},
		SortColumns: subscriptionSort,
		Joins:       []paginate.Scope{paginate.WithOwner("Subscriber")},
	}
	return paginate.Find[*model.Subscription](ctx, d.db, plan, p)
}

// ListSubscribedChannels pages a user's subscriptions with the channel projection.
func (d *SubscriptionDao) ListSubscribedChannels(ctx context.Context, subscriberID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error) {
	plan := paginate.Plan{
		Model:       &model.Subscription{},
		Filters:     []paginate.Scope{paginate.Eq("subscriber_id", subscriberID)},
		SortColumns: subscriptionSort,
		Joins:       []paginate.Scope{paginate.WithOwner("Channel")},
	}
	return paginate.Find[*model.Subscription](ctx, d.db, plan, p)
}
