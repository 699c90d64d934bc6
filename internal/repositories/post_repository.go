package repositories

import (
	"errors"

	"github.com/breadsapp/breads/backend/internal/models"
	"gorm.io/gorm"
)

// maxPageSize caps a single page to keep result sets bounded.
const maxPageSize = 100

// PostRepository defines the interface for post ownership and feed assembly
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByUser(userID uint, page, pageSize int) ([]models.Post, int64, error)
	GetFeed(userID uint, page, pageSize int) ([]models.Post, int64, error)
	UpdatePost(id uint, patch map[string]interface{}, newImages []models.Image) (*models.Post, error)
	DeletePost(id uint) (*models.Post, error)
	DetachImage(postID uint, filename string) (*models.Image, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// normalizePage clamps page and pageSize into their valid ranges and
// returns the resulting offset and limit.
func normalizePage(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return (page - 1) * pageSize, pageSize
}

// CreatePost persists the post and every image already linked on it within
// a single transaction, so a failure partway through attaching images
// leaves nothing behind.
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
}

// GetPostByID retrieves a post with its images
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Images").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByUser returns one page of the user's posts in chronological
// order plus the total row count for that user. A page past the end of the
// data yields an empty slice with the count intact.
func (r *PostgresPostRepository) GetPostsByUser(userID uint, page, pageSize int) ([]models.Post, int64, error) {
	offset, limit := normalizePage(page, pageSize)

	var total int64
	if err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).
		Order("created_at, id").
		Offset(offset).Limit(limit).
		Preload("Images").
		Find(&posts).Error
	return posts, total, err
}

// feedQuery scopes posts to everyone userID follows, excluding the user's
// own posts. Both the page query and the count run over this same filter.
func (r *PostgresPostRepository) feedQuery(userID uint) *gorm.DB {
	followed := r.db.Table("follows").Select("followed_id").Where("follower_id = ?", userID)
	return r.db.Model(&models.Post{}).
		Where("user_id IN (?)", followed).
		Where("user_id <> ?", userID)
}

// GetFeed returns one page of posts authored by everyone userID follows,
// plus the total count over the same filter.
func (r *PostgresPostRepository) GetFeed(userID uint, page, pageSize int) ([]models.Post, int64, error) {
	offset, limit := normalizePage(page, pageSize)

	var total int64
	if err := r.feedQuery(userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.feedQuery(userID).
		Order("created_at, id").
		Offset(offset).Limit(limit).
		Preload("Images").
		Find(&posts).Error
	return posts, total, err
}

// UpdatePost applies a partial update and attaches any new images, all in
// one transaction. The updated-at timestamp is bumped even when only
// images change.
func (r *PostgresPostRepository) UpdatePost(id uint, patch map[string]interface{}, newImages []models.Image) (*models.Post, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if len(patch) > 0 {
			if err := tx.Model(&post).Updates(patch).Error; err != nil {
				return err
			}
		}
		for i := range newImages {
			newImages[i].PostID = &post.ID
			if err := tx.Create(&newImages[i]).Error; err != nil {
				return err
			}
		}
		if len(patch) == 0 && len(newImages) > 0 {
			if err := tx.Model(&post).Update("updated_at", tx.NowFunc()).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetPostByID(id)
}

// DeletePost removes the post and all of its image rows in one transaction
// and returns the deleted post so the caller can clean up the stored
// files. Image rows go first; they do not exist independently of their
// post once attached.
func (r *PostgresPostRepository) DeletePost(id uint) (*models.Post, error) {
	post, err := r.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DetachImage removes the named image from the post's collection and
// deletes its row. The post itself is untouched; the caller deletes the
// underlying file.
func (r *PostgresPostRepository) DetachImage(postID uint, filename string) (*models.Image, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var image models.Image
	if err := r.db.Where("post_id = ? AND name = ?", postID, filename).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.db.Delete(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
