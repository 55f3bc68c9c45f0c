package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devhub/internal/cache"
	apperrors "devhub/internal/errors"
	"devhub/internal/model"
	"devhub/internal/repository"
)

const (
	postListCacheKey = "posts:all"
	postListCacheTTL = 30 * time.Second
)

// PostService handles post, like, and comment operations.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Like(ctx context.Context, id, userID uuid.UUID) ([]model.Like, error)
	Unlike(ctx context.Context, id, userID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, id, userID uuid.UUID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, id, commentID uuid.UUID) ([]model.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cache *cache.Client) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Create stores a new post, snapshotting the author's name and avatar so the
// feed keeps displaying them as they were at posting time.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	post := &model.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.invalidateList(ctx)
	return post, nil
}

// List returns all posts newest-first, cached briefly.
func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	var cached []model.Post
	if s.cache.GetJSON(ctx, postListCacheKey, &cached) {
		return cached, nil
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, postListCacheKey, posts, postListCacheTTL)
	return posts, nil
}

// ByID returns a single post with its likes and comments.
func (s *postService) ByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the owning identity may delete it.
func (s *postService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	post, err := s.ByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.invalidateList(ctx)
	return nil
}

// Like records a like for the identity. Liking the same post twice is a
// conflict; the unique (post, user) index backs up the pre-check.
func (s *postService) Like(ctx context.Context, id, userID uuid.UUID) ([]model.Like, error) {
	post, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.HasLike(ctx, post.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check like: %w", err)
	}
	if liked {
		return nil, apperrors.ErrAlreadyLiked
	}

	if err := s.postRepo.AddLike(ctx, &model.Like{PostID: post.ID, UserID: userID}); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}

	s.invalidateList(ctx)
	return s.postRepo.ListLikes(ctx, post.ID)
}

// Unlike removes the identity's like from a post.
func (s *postService) Unlike(ctx context.Context, id, userID uuid.UUID) ([]model.Like, error) {
	post, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.postRepo.RemoveLike(ctx, post.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}
	if removed == 0 {
		return nil, apperrors.ErrNotLiked
	}

	s.invalidateList(ctx)
	return s.postRepo.ListLikes(ctx, post.ID)
}

// AddComment inserts a comment at the head of the post's comment list,
// snapshotting the commenter's name and avatar.
func (s *postService) AddComment(ctx context.Context, id, userID uuid.UUID, text string) ([]model.Comment, error) {
	post, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find commenter: %w", err)
	}

	comment := &model.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.invalidateList(ctx)
	return s.postRepo.ListComments(ctx, post.ID)
}

// RemoveComment deletes a comment by id from the addressed post.
func (s *postService) RemoveComment(ctx context.Context, id, commentID uuid.UUID) ([]model.Comment, error) {
	post, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.postRepo.RemoveComment(ctx, post.ID, commentID)
	if err != nil {
		return nil, fmt.Errorf("remove comment: %w", err)
	}
	if removed == 0 {
		return nil, apperrors.ErrCommentNotFound
	}

	s.invalidateList(ctx)
	return s.postRepo.ListComments(ctx, post.ID)
}

func (s *postService) invalidateList(ctx context.Context) {
	_ = s.cache.Delete(ctx, postListCacheKey)
}
