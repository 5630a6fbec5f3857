package db

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var errUserNotFound = errno.NotFoundErr.WithMessage("User not found")

type UserDao struct {
	db *gorm.DB
}

func NewUserDao(db *gorm.DB) *UserDao {
	return &UserDao{db: db}
}

func (d *UserDao) CreateUser(ctx context.Context, user *model.User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errno.ConflictErr.WithMessage("User with email or username already exists")
		}
		return errors.Wrap(err, "CreateUser failed")
	}
	return nil
}

// UserExists reports whether the username or the email is taken.
func (d *UserDao) UserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", strings.ToLower(username), strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "UserExists failed")
	}
	return count > 0, nil
}

func (d *UserDao) FindUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, "FindUser")
	}
	return &user, nil
}

func (d *UserDao) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := d.db.WithContext(ctx).Where("username = ?", strings.ToLower(username)).First(&user).Error; err != nil {
		return nil, notFound(err, "FindUserByUsername")
	}
	return &user, nil
}

// FindUserByLogin matches either the username or the email.
func (d *UserDao) FindUserByLogin(ctx context.Context, login string) (*model.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	var user model.User
	if err := d.db.WithContext(ctx).Where("username = ? OR email = ?", login, login).First(&user).Error; err != nil {
		return nil, notFound(err, "FindUserByLogin")
	}
	return &user, nil
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errUserNotFound
	}
	return errors.Wrapf(err, "%s failed", op)
}
