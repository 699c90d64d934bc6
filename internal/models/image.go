package models

import "time"

// Image is an uploaded file owned by one user. The name is generated at
// upload time and unique across all images. An image may be attached to at
// most one post; a nil PostID means it stands alone.
type Image struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:45;uniqueIndex;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	PostID     *uint     `json:"post_id,omitempty" gorm:"index"`
	UploadTime time.Time `json:"upload_time"`
}
