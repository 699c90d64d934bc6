package search

import (
	"github.com/breadsapp/breads/backend/internal/models"
	"github.com/sirupsen/logrus"
)

// Indexer upserts a user's public profile fields into the search backend.
// Indexing is best-effort: callers log failures and carry on.
type Indexer interface {
	IndexUser(user *models.User) error
}

// NoopIndexer satisfies Indexer without an external search cluster.
type NoopIndexer struct{}

// NewNoopIndexer creates a new NoopIndexer
func NewNoopIndexer() *NoopIndexer {
	return &NoopIndexer{}
}

// IndexUser records the upsert at debug level and succeeds.
func (NoopIndexer) IndexUser(user *models.User) error {
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Debug("user profile index upsert skipped (no search backend configured)")
	return nil
}
