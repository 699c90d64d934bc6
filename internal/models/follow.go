package models

import "time"

// Follow is a directed edge in the follow graph: the follower receives the
// followed user's posts in their feed. The unique index on the ordered pair
// makes duplicate inserts a storage-level no-op.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}
