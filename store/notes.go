package store

import (
	"context"

	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const newestFirst = "created_at DESC, id DESC"

func (s *GormStore) ListByOwner(ctx context.Context, userID string) ([]types.Note, error) {
	ret := []types.Note{}
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Order(newestFirst).Find(&ret)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "Looking for notes owned by user %q", userID)
	}
	return ret, nil
}

func (s *GormStore) ListPublic(ctx context.Context) ([]types.Note, error) {
	ret := []types.Note{}
	result := s.db.WithContext(ctx).Where("is_public = ?", true).Order(newestFirst).Find(&ret)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "Looking for public notes")
	}
	return ret, nil
}

func (s *GormStore) GetPublic(ctx context.Context, id uint) (types.Note, error) {
	var note types.Note
	err := s.db.WithContext(ctx).Where("id = ? AND is_public = ?", id, true).Take(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.Note{}, errors.Wrapf(types.ErrNotFound, "public note %d", id)
	}
	if err != nil {
		return types.Note{}, errors.Wrapf(err, "Looking for public note %d", id)
	}
	return note, nil
}

func (s *GormStore) Insert(ctx context.Context, note *types.Note) error {
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return errors.Wrap(err, "Saving note to db")
	}
	return nil
}

func (s *GormStore) DeleteOwned(ctx context.Context, id uint, userID string) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&types.Note{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "Deleting note %d", id)
	}
	return result.RowsAffected > 0, nil
}
