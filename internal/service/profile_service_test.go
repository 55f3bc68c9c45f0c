package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "devhub/internal/errors"
	"devhub/internal/model"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepository) DeleteWithUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileRepository) AddExperience(ctx context.Context, entry *model.Experience) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteExperience(ctx context.Context, profileID, entryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID, entryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) AddEducation(ctx context.Context, entry *model.Education) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteEducation(ctx context.Context, profileID, entryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID, entryID)
	return args.Get(0).(int64), args.Error(1)
}

func TestProfileService_Upsert_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("creates and splits skills", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound).Once()
		mockRepo.On("FindByHandle", mock.Anything, "ada").Return(nil, gorm.ErrRecordNotFound)

		var saved *model.Profile
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.Profile)
			}).Return(nil)
		mockRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.Profile{UserID: userID, Handle: "ada"}, nil)

		svc := NewProfileService(mockRepo, noCache())

		_, err := svc.Upsert(context.Background(), userID, ProfileFields{
			Handle: "ada",
			Status: "Developer",
			Skills: "Go, SQL , Redis,",
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL", "Redis"}, saved.Skills)
		assert.Equal(t, "Developer", saved.Status)
		assert.Equal(t, userID, saved.UserID)

		mockRepo.AssertExpectations(t)
	})

	t.Run("taken handle is a conflict", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("FindByHandle", mock.Anything, "ada").Return(&model.Profile{Handle: "ada"}, nil)
		// no Create expectation: the profile must not be written

		svc := NewProfileService(mockRepo, noCache())

		profile, err := svc.Upsert(context.Background(), userID, ProfileFields{
			Handle: "ada",
			Status: "Developer",
			Skills: "Go",
		})
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, apperrors.ErrHandleTaken)

		mockRepo.AssertExpectations(t)
	})
}

func TestProfileService_Upsert_Update(t *testing.T) {
	userID := uuid.New()
	existing := &model.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Handle: "ada",
		Status: "Developer",
		Skills: []string{"Go"},
		Social: model.SocialLinks{Twitter: "https://twitter.com/ada"},
	}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(existing, nil)

	var saved *model.Profile
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Profile")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Profile)
		}).Return(nil)

	svc := NewProfileService(mockRepo, noCache())

	_, err := svc.Upsert(context.Background(), userID, ProfileFields{
		Status:  "Senior Developer",
		Skills:  "Go,Kubernetes",
		Youtube: "https://youtube.com/@ada",
	})
	assert.NoError(t, err)

	// Supplied fields are applied, absent ones keep their values.
	assert.Equal(t, "Senior Developer", saved.Status)
	assert.Equal(t, []string{"Go", "Kubernetes"}, saved.Skills)
	assert.Equal(t, "https://youtube.com/@ada", saved.Social.Youtube)
	assert.Equal(t, "ada", saved.Handle)
	assert.Equal(t, "https://twitter.com/ada", saved.Social.Twitter)

	// Update path never checks handle uniqueness.
	mockRepo.AssertNotCalled(t, "FindByHandle", mock.Anything, mock.Anything)
}

func TestProfileService_Own_NotFound(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProfileService(mockRepo, noCache())

	profile, err := svc.Own(context.Background(), userID)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_DeleteOwn(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("DeleteWithUser", mock.Anything, userID).Return(nil)

	svc := NewProfileService(mockRepo, noCache())

	assert.NoError(t, svc.DeleteOwn(context.Background(), userID))
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Experience(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	entryID := uuid.New()

	t.Run("add inserts entry for own profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.Profile{ID: profileID, UserID: userID}, nil)

		var saved *model.Experience
		mockRepo.On("AddExperience", mock.Anything, mock.AnythingOfType("*model.Experience")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.Experience)
			}).Return(nil)

		svc := NewProfileService(mockRepo, noCache())

		_, err := svc.AddExperience(context.Background(), userID, ExperienceEntry{
			Title:   "Engineer",
			Company: "Acme",
			From:    "2019-06-01",
			Current: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, profileID, saved.ProfileID)
		assert.Equal(t, "Engineer", saved.Title)
		assert.True(t, saved.Current)
	})

	t.Run("remove missing entry is not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.Profile{ID: profileID, UserID: userID}, nil)
		mockRepo.On("DeleteExperience", mock.Anything, profileID, entryID).Return(int64(0), nil)

		svc := NewProfileService(mockRepo, noCache())

		profile, err := svc.RemoveExperience(context.Background(), userID, entryID)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
	})
}

func TestProfileService_Education(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	entryID := uuid.New()

	t.Run("add inserts entry for own profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.Profile{ID: profileID, UserID: userID}, nil)

		var saved *model.Education
		mockRepo.On("AddEducation", mock.Anything, mock.AnythingOfType("*model.Education")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.Education)
			}).Return(nil)

		svc := NewProfileService(mockRepo, noCache())

		_, err := svc.AddEducation(context.Background(), userID, EducationEntry{
			School:       "MIT",
			Degree:       "BSc",
			FieldOfStudy: "CS",
			From:         "2015-09-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, profileID, saved.ProfileID)
		assert.Equal(t, "MIT", saved.School)
	})

	t.Run("remove missing entry is not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("FindByUserID", mock.Anything, userID).
			Return(&model.Profile{ID: profileID, UserID: userID}, nil)
		mockRepo.On("DeleteEducation", mock.Anything, profileID, entryID).Return(int64(0), nil)

		svc := NewProfileService(mockRepo, noCache())

		profile, err := svc.RemoveEducation(context.Background(), userID, entryID)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
	})
}
