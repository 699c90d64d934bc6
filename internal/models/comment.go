package models

import "time"

// CommentableKind discriminates the entity kinds a comment can attach to.
type CommentableKind string

const (
	CommentablePost  CommentableKind = "post"
	CommentableImage CommentableKind = "image"
)

// CommentTarget identifies the single entity a comment attaches to: a
// tagged pair of entity kind and id. Code handling targets switches on
// Kind exhaustively.
type CommentTarget struct {
	Kind CommentableKind
	ID   uint
}

// PostTarget returns a target referencing the post with the given id.
func PostTarget(id uint) CommentTarget {
	return CommentTarget{Kind: CommentablePost, ID: id}
}

// ImageTarget returns a target referencing the image with the given id.
func ImageTarget(id uint) CommentTarget {
	return CommentTarget{Kind: CommentableImage, ID: id}
}

// Comment is authored by one user and attached to exactly one commentable
// entity via the (commentable_type, commentable_id) discriminator pair.
// A comment may reference a parent comment to form a reply chain; output
// serialization nests one level of parent and children.
type Comment struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Text            string          `json:"text" gorm:"type:text;not null"`
	UserID          uint            `json:"user_id" gorm:"index;not null"`
	Author          *User           `json:"author,omitempty" gorm:"foreignKey:UserID"`
	CommentableType CommentableKind `json:"commentable_type" gorm:"size:20;index:idx_commentable"`
	CommentableID   uint            `json:"commentable_id" gorm:"index:idx_commentable"`
	ParentCommentID *uint           `json:"parent_comment_id,omitempty" gorm:"index"`
	ParentComment   *Comment        `json:"parent_comment,omitempty" gorm:"foreignKey:ParentCommentID"`
	ChildComments   []Comment       `json:"child_comments,omitempty" gorm:"foreignKey:ParentCommentID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Target returns the tagged target this comment is attached to.
func (c *Comment) Target() CommentTarget {
	return CommentTarget{Kind: c.CommentableType, ID: c.CommentableID}
}

// CreateCommentRequest defines the request body for attaching a comment
type CreateCommentRequest struct {
	Text            string `json:"text" validate:"required,min=1,max=2000"`
	ParentCommentID *uint  `json:"parent_comment_id,omitempty"`
}
