package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devhub/internal/cache"
	apperrors "devhub/internal/errors"
	"devhub/internal/model"
	"devhub/internal/repository"
)

const (
	profileListCacheKey = "profiles:all"
	profileListCacheTTL = 1 * time.Minute
)

// ProfileFields is the sparse set of attributes accepted by Upsert. Only
// non-empty fields are written; Skills is the raw comma-joined request value.
type ProfileFields struct {
	Handle         string
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceEntry carries a new work history entry.
type ExperienceEntry struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationEntry carries a new schooling entry.
type EducationEntry struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// ProfileService handles profile operations.
type ProfileService interface {
	Own(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, fields ProfileFields) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	ByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	DeleteOwn(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, entry ExperienceEntry) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, entry EducationEntry) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	cache       *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, cache *cache.Client) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// Own returns the caller's profile.
func (s *profileService) Own(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Upsert creates the caller's profile or applies the supplied fields to the
// existing one. Handle uniqueness is only checked on first-time creation.
func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, fields ProfileFields) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	creating := profile == nil
	if creating {
		if fields.Handle != "" {
			if _, err := s.profileRepo.FindByHandle(ctx, fields.Handle); err == nil {
				return nil, apperrors.ErrHandleTaken
			} else if err != gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("check handle: %w", err)
			}
		}
		profile = &model.Profile{UserID: userID}
	}

	applyFields(profile, fields)

	if creating {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
	} else {
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	s.invalidateList(ctx)
	return s.Own(ctx, userID)
}

// List returns all profiles, cached briefly.
func (s *profileService) List(ctx context.Context) ([]model.Profile, error) {
	var cached []model.Profile
	if s.cache.GetJSON(ctx, profileListCacheKey, &cached) {
		return cached, nil
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, profileListCacheKey, profiles, profileListCacheTTL)
	return profiles, nil
}

// ByUserID returns the profile owned by the given user.
func (s *profileService) ByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// DeleteOwn removes the caller's profile together with the user record.
func (s *profileService) DeleteOwn(ctx context.Context, userID uuid.UUID) error {
	if err := s.profileRepo.DeleteWithUser(ctx, userID); err != nil {
		return fmt.Errorf("delete profile and user: %w", err)
	}
	s.invalidateList(ctx)
	_ = s.cache.Delete(ctx, userCacheKey(userID))
	return nil
}

// AddExperience inserts a work history entry at the head of the list.
func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, entry ExperienceEntry) (*model.Profile, error) {
	profile, err := s.Own(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &model.Experience{
		ProfileID:   profile.ID,
		Title:       entry.Title,
		Company:     entry.Company,
		Location:    entry.Location,
		From:        entry.From,
		To:          entry.To,
		Current:     entry.Current,
		Description: entry.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}

	s.invalidateList(ctx)
	return s.Own(ctx, userID)
}

// RemoveExperience deletes an entry by id from the caller's profile.
func (s *profileService) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error) {
	profile, err := s.Own(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.profileRepo.DeleteExperience(ctx, profile.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("remove experience: %w", err)
	}
	if removed == 0 {
		return nil, apperrors.ErrEntryNotFound
	}

	s.invalidateList(ctx)
	return s.Own(ctx, userID)
}

// AddEducation inserts a schooling entry at the head of the list.
func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, entry EducationEntry) (*model.Profile, error) {
	profile, err := s.Own(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &model.Education{
		ProfileID:    profile.ID,
		School:       entry.School,
		Degree:       entry.Degree,
		FieldOfStudy: entry.FieldOfStudy,
		From:         entry.From,
		To:           entry.To,
		Current:      entry.Current,
		Description:  entry.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, fmt.Errorf("add education: %w", err)
	}

	s.invalidateList(ctx)
	return s.Own(ctx, userID)
}

// RemoveEducation deletes an entry by id from the caller's profile.
func (s *profileService) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error) {
	profile, err := s.Own(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.profileRepo.DeleteEducation(ctx, profile.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("remove education: %w", err)
	}
	if removed == 0 {
		return nil, apperrors.ErrEntryNotFound
	}

	s.invalidateList(ctx)
	return s.Own(ctx, userID)
}

func (s *profileService) invalidateList(ctx context.Context) {
	_ = s.cache.Delete(ctx, profileListCacheKey)
}

// applyFields writes only the supplied attributes onto the profile. The
// skills value is a comma-joined string split into an ordered list.
func applyFields(profile *model.Profile, fields ProfileFields) {
	if fields.Handle != "" {
		profile.Handle = fields.Handle
	}
	if fields.Company != "" {
		profile.Company = fields.Company
	}
	if fields.Website != "" {
		profile.Website = fields.Website
	}
	if fields.Location != "" {
		profile.Location = fields.Location
	}
	if fields.Bio != "" {
		profile.Bio = fields.Bio
	}
	if fields.Status != "" {
		profile.Status = fields.Status
	}
	if fields.GithubUsername != "" {
		profile.GithubUsername = fields.GithubUsername
	}
	if fields.Skills != "" {
		profile.Skills = splitSkills(fields.Skills)
	}
	if fields.Youtube != "" {
		profile.Social.Youtube = fields.Youtube
	}
	if fields.Twitter != "" {
		profile.Social.Twitter = fields.Twitter
	}
	if fields.Facebook != "" {
		profile.Social.Facebook = fields.Facebook
	}
	if fields.Linkedin != "" {
		profile.Social.Linkedin = fields.Linkedin
	}
	if fields.Instagram != "" {
		profile.Social.Instagram = fields.Instagram
	}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
