package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devhub/internal/model"
)

// PostRepository defines post persistence operations. Likes and comments are
// preloaded newest-first everywhere a post is read.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, error)
	HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) (int64, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.withRelations(r.db.WithContext(ctx)).
		Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.withRelations(r.db.WithContext(ctx)).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) AddLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *postRepository) HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	var likes []model.Like
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *postRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND id = ?", postID, commentID).
		Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}

func (r *postRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
