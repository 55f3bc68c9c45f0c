package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devhub/internal/model"
)

// ProfileRepository defines profile persistence operations. Experience and
// education rows are preloaded newest-first everywhere a profile is read.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Save(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindByHandle(ctx context.Context, handle string) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	DeleteWithUser(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, entry *model.Experience) error
	DeleteExperience(ctx context.Context, profileID, entryID uuid.UUID) (int64, error)
	AddEducation(ctx context.Context, entry *model.Education) error
	DeleteEducation(ctx context.Context, profileID, entryID uuid.UUID) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) withEntries(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Omit("Experience", "Education").Save(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.withEntries(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.withEntries(r.db.WithContext(ctx)).
		Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteWithUser removes the profile and its owning user in one transaction.
func (r *profileRepository) DeleteWithUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Profile{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&model.User{}).Error
	})
}

func (r *profileRepository) AddExperience(ctx context.Context, entry *model.Experience) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, entryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, entryID).
		Delete(&model.Experience{})
	return res.RowsAffected, res.Error
}

func (r *profileRepository) AddEducation(ctx context.Context, entry *model.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, entryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, entryID).
		Delete(&model.Education{})
	return res.RowsAffected, res.Error
}
