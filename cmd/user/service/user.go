package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	UserExists(ctx context.Context, username, email string) (bool, error)
	FindUser(ctx context.Context, id int64) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// SubscriptionCounter backs the channel profile counters.
type SubscriptionCounter interface {
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID int64) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error)
}

type ImageStore interface {
	UploadImage(ctx context.Context, path string) (*oss.Object, error)
	Remove(ctx context.Context, url string) error
}

type UserService struct {
	users UserStore
	subs  SubscriptionCounter
	media ImageStore
}

func NewUserService(users UserStore, subs SubscriptionCounter, media ImageStore) *UserService {
	return &UserService{users: users, subs: subs, media: media}
}

type RegisterRequest struct {
	Username       string
	Email          string
	FullName       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// Register creates an account. Avatar and cover image are optional local
// files uploaded before the row is written.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || email == "" || fullName == "" || strings.TrimSpace(req.Password) == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}
	taken, err := s.users.UserExists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errno.ConflictErr.WithMessage("User with email or username already exists")
	}
	password, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &model.User{Username: username, Email: email, FullName: fullName, Password: password}
	var uploaded []string
	for _, f := range []struct {
		path string
		dst  *string
	}{{req.AvatarPath, &user.Avatar}, {req.CoverImagePath, &user.CoverImage}} {
		if f.path == "" {
			continue
		}
		obj, err := s.media.UploadImage(ctx, f.path)
		if err != nil {
			s.cleanup(ctx, uploaded)
			return nil, err
		}
		*f.dst = obj.URL
		uploaded = append(uploaded, obj.URL)
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		s.cleanup(ctx, uploaded)
		return nil, err
	}
	created, err := s.users.FindUser(ctx, user.ID)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.ServiceErr.WithMessage("Something went wrong while registering the user")
		}
		return nil, err
	}
	return created, nil
}

// Authenticate checks a username-or-email and password pair.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*model.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return nil, errno.RequestErr.WithMessage("Username or email and password are required")
	}
	user, err := s.users.FindUserByLogin(ctx, login)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("User does not exist")
		}
		return nil, err
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.UnauthorizedErr.WithMessage("Invalid user credentials")
	}
	return user, nil
}

func (s *UserService) CurrentUser(ctx context.Context, actor int64) (*model.User, error) {
	return s.users.FindUser(ctx, actor)
}

// ChannelProfile describes a channel by username. viewer is 0 for anonymous
// callers, who are never reported as subscribed.
func (s *UserService) ChannelProfile(ctx context.Context, viewer int64, username string) (*model.ChannelProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errno.RequestErr.WithMessage("Username is missing")
	}
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
		}
		return nil, err
	}
	profile := &model.ChannelProfile{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
	}
	if profile.SubscribersCount, err = s.subs.CountSubscribers(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.ChannelsSubscribedToCount, err = s.subs.CountSubscribedTo(ctx, user.ID); err != nil {
		return nil, err
	}
	if viewer != 0 && viewer != user.ID {
		if profile.IsSubscribed, err = s.subs.IsSubscribed(ctx, viewer, user.ID); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (s *UserService) cleanup(ctx context.Context, urls []string) {
	for _, u := range urls {
		if err := s.media.Remove(ctx, u); err != nil {
			logrus.WithError(err).Warnf("remove orphaned upload %s", u)
		}
	}
}
