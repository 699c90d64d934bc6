package repositories

import (
	"errors"

	"github.com/breadsapp/breads/backend/internal/models"
	"gorm.io/gorm"
)

// ImageRepository defines the interface for standalone image records
type ImageRepository interface {
	CreateImage(image *models.Image) error
	CreateImages(images []models.Image) error
	GetImageByName(name string) (*models.Image, error)
	GetImagesByUser(userID uint) ([]models.Image, error)
	DeleteImageByName(name string) (*models.Image, error)
}

// PostgresImageRepository implements ImageRepository for PostgreSQL
type PostgresImageRepository struct {
	db *gorm.DB
}

// NewPostgresImageRepository creates a new PostgresImageRepository
func NewPostgresImageRepository(db *gorm.DB) *PostgresImageRepository {
	return &PostgresImageRepository{db: db}
}

// CreateImage creates a single image record
func (r *PostgresImageRepository) CreateImage(image *models.Image) error {
	return r.db.Create(image).Error
}

// CreateImages creates all records in one transaction: a multi-file upload
// commits all rows or none.
func (r *PostgresImageRepository) CreateImages(images []models.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range images {
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetImageByName retrieves an image record by its generated name
func (r *PostgresImageRepository) GetImageByName(name string) (*models.Image, error) {
	var image models.Image
	if err := r.db.Where("name = ?", name).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// GetImagesByUser retrieves all images owned by a user
func (r *PostgresImageRepository) GetImagesByUser(userID uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.Where("user_id = ?", userID).Order("upload_time, id").Find(&images).Error
	return images, err
}

// DeleteImageByName deletes the record and returns it so the caller can
// remove the stored file.
func (r *PostgresImageRepository) DeleteImageByName(name string) (*models.Image, error) {
	image, err := r.GetImageByName(name)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}
