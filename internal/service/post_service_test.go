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

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AddLike(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockPostRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func TestPostService_Create_SnapshotsAuthor(t *testing.T) {
	userID := uuid.New()

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:     userID,
		Name:   "Ada",
		Avatar: "https://www.gravatar.com/avatar/abc",
	}, nil)

	mockPosts := new(MockPostRepository)
	mockPosts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

	svc := NewPostService(mockPosts, mockUsers, noCache())

	post, err := svc.Create(context.Background(), userID, "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, "Ada", post.Name)
	assert.Equal(t, "https://www.gravatar.com/avatar/abc", post.Avatar)
	assert.Equal(t, userID, post.UserID)

	mockPosts.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestPostService_Delete(t *testing.T) {
	postID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	tests := []struct {
		name          string
		caller        uuid.UUID
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:   "owner may delete",
			caller: ownerID,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: ownerID}, nil)
				m.On("Delete", mock.Anything, postID).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "non-owner is forbidden",
			caller: strangerID,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, UserID: ownerID}, nil)
			},
			expectedError: apperrors.ErrNotPostOwner,
		},
		{
			name:   "missing post",
			caller: ownerID,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPosts := new(MockPostRepository)
			tt.setupMock(mockPosts)

			svc := NewPostService(mockPosts, new(MockUserRepository), noCache())

			err := svc.Delete(context.Background(), postID, tt.caller)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockPosts.AssertExpectations(t)
		})
	}
}

func TestPostService_Like(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	t.Run("first like succeeds", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("HasLike", mock.Anything, postID, userID).Return(false, nil)
		mockPosts.On("AddLike", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil)
		mockPosts.On("ListLikes", mock.Anything, postID).Return([]model.Like{{PostID: postID, UserID: userID}}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository), noCache())

		likes, err := svc.Like(context.Background(), postID, userID)
		assert.NoError(t, err)
		assert.Len(t, likes, 1)
		assert.Equal(t, userID, likes[0].UserID)

		mockPosts.AssertExpectations(t)
	})

	t.Run("second like is a conflict", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("HasLike", mock.Anything, postID, userID).Return(true, nil)
		// no AddLike expectation: a duplicate must never be written

		svc := NewPostService(mockPosts, new(MockUserRepository), noCache())

		likes, err := svc.Like(context.Background(), postID, userID)
		assert.Nil(t, likes)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyLiked)

		mockPosts.AssertExpectations(t)
	})
}

func TestPostService_Unlike(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	t.Run("removes an existing like", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("RemoveLike", mock.Anything, postID, userID).Return(int64(1), nil)
		mockPosts.On("ListLikes", mock.Anything, postID).Return([]model.Like{}, nil)

		svc := NewPostService(mockPosts, new(MockUserRepository), noCache())

		likes, err := svc.Unlike(context.Background(), postID, userID)
		assert.NoError(t, err)
		assert.Empty(t, likes)
	})

	t.Run("unliking an un-liked post is not found", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("RemoveLike", mock.Anything, postID, userID).Return(int64(0), nil)

		svc := NewPostService(mockPosts, new(MockUserRepository), noCache())

		likes, err := svc.Unlike(context.Background(), postID, userID)
		assert.Nil(t, likes)
		assert.ErrorIs(t, err, apperrors.ErrNotLiked)
	})
}

func TestPostService_Comments(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()
	commentID := uuid.New()

	t.Run("add snapshots commenter", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:     userID,
			Name:   "Ada",
			Avatar: "https://www.gravatar.com/avatar/abc",
		}, nil)

		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		var saved *model.Comment
		mockPosts.On("AddComment", mock.Anything, mock.AnythingOfType("*model.Comment")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.Comment)
			}).Return(nil)
		mockPosts.On("ListComments", mock.Anything, postID).Return([]model.Comment{{ID: commentID}}, nil)

		svc := NewPostService(mockPosts, mockUsers, noCache())

		comments, err := svc.AddComment(context.Background(), postID, userID, "nice post")
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, "nice post", saved.Text)
		assert.Equal(t, "Ada", saved.Name)
	})

	t.Run("remove missing comment is not found", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockPosts.On("RemoveComment", mock.Anything, postID, commentID).Return(int64(0), nil)

		svc := NewPostService(mockPosts, new(MockUserRepository), noCache())

		comments, err := svc.RemoveComment(context.Background(), postID, commentID)
		assert.Nil(t, comments)
		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	})
}
