package repositories

import (
	"errors"
	"fmt"

	"github.com/breadsapp/breads/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment attachment
type CommentRepository interface {
	CreateComment(target models.CommentTarget, comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsForTarget(target models.CommentTarget) ([]models.Comment, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// targetExists resolves the tagged target to its concrete table.
func (r *PostgresCommentRepository) targetExists(target models.CommentTarget) (bool, error) {
	var count int64
	switch target.Kind {
	case models.CommentablePost:
		if err := r.db.Model(&models.Post{}).Where("id = ?", target.ID).Count(&count).Error; err != nil {
			return false, err
		}
	case models.CommentableImage:
		if err := r.db.Model(&models.Image{}).Where("id = ?", target.ID).Count(&count).Error; err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown commentable kind %q", target.Kind)
	}
	return count > 0, nil
}

// CreateComment attaches the comment to the target. The target must exist;
// a referenced parent comment must exist as well. Whether the parent is
// attached to the same target is not checked.
func (r *PostgresCommentRepository) CreateComment(target models.CommentTarget, comment *models.Comment) error {
	exists, err := r.targetExists(target)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if comment.ParentCommentID != nil {
		var count int64
		if err := r.db.Model(&models.Comment{}).
			Where("id = ?", *comment.ParentCommentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}

	comment.CommentableType = target.Kind
	comment.CommentableID = target.ID
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment with its author, parent and direct
// children. Deeper reply trees require repeated calls.
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.
		Preload("Author").
		Preload("ParentComment").
		Preload("ChildComments").
		Preload("ChildComments.Author").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsForTarget retrieves all comments attached to the target in
// chronological order, each with author, parent and direct children.
func (r *PostgresCommentRepository) GetCommentsForTarget(target models.CommentTarget) ([]models.Comment, error) {
	exists, err := r.targetExists(target)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	var comments []models.Comment
	err = r.db.
		Where("commentable_type = ? AND commentable_id = ?", target.Kind, target.ID).
		Order("created_at, id").
		Preload("Author").
		Preload("ParentComment").
		Preload("ChildComments").
		Preload("ChildComments.Author").
		Find(&comments).Error
	return comments, err
}
