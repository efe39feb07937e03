package store

import (
	"context"

	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (s *GormStore) CreateUser(ctx context.Context, user *types.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "Saving user %q to db", user.Email)
	}
	return nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (types.User, error) {
	var user types.User
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.User{}, errors.Wrapf(types.ErrNotFound, "user %q", email)
	}
	if err != nil {
		return types.User{}, errors.Wrapf(err, "Looking for user %q", email)
	}
	return user, nil
}

func (s *GormStore) LookupEmails(ctx context.Context, userIDs []string) (map[string]string, error) {
	ret := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return ret, nil
	}

	var users []types.User
	err := s.db.WithContext(ctx).Select("id", "email").Where("id IN ?", userIDs).Find(&users).Error
	if err != nil {
		return nil, errors.Wrapf(err, "Looking up %d note authors", len(userIDs))
	}
	for _, u := range users {
		ret[u.ID] = u.Email
	}
	return ret, nil
}
