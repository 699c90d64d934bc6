package models

import "time"

// Post is a text entry owned by one user, with zero or more attached images.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Images    []Image   `json:"images,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the form fields for creating a new post.
// Image files ride along in the same multipart request.
type CreatePostRequest struct {
	Content string `json:"content" form:"content" validate:"required,min=1,max=2000"`
}

// UpdatePostRequest defines the form fields for a partial post update.
// Only non-nil fields are applied; new image files may be attached in the
// same request.
type UpdatePostRequest struct {
	Content *string `json:"content,omitempty" form:"content" validate:"omitempty,min=1,max=2000"`
}
