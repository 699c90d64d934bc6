package repositories

import (
	"errors"
	"testing"

	"github.com/breadsapp/breads/backend/internal/models"
)

func TestFollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("first follow failed: %v", err)
	}
	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("repeated follow should be a no-op, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", alice.ID, bob.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("counting edges failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one edge after repeated follow, got %d", count)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice@example.com")

	if err := repo.Follow(alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("expected ErrSelfFollow, got %v", err)
	}
	if err := repo.Unfollow(alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("expected ErrSelfFollow on unfollow, got %v", err)
	}
}

func TestFollowThenUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	following, err := repo.IsFollowing(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if !following {
		t.Fatal("expected alice to follow bob")
	}

	if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	following, err = repo.IsFollowing(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if following {
		t.Error("expected edge to be gone after unfollow")
	}

	followers, err := repo.GetFollowers(bob.ID)
	if err != nil {
		t.Fatalf("GetFollowers failed: %v", err)
	}
	for _, u := range followers {
		if u.ID == alice.ID {
			t.Error("alice should no longer appear in bob's followers")
		}
	}
}

func TestUnfollowWithoutEdgeIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
		t.Errorf("unfollow without an edge should be a no-op, got: %v", err)
	}
}

func TestFollowIsDirected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	reverse, err := repo.IsFollowing(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if reverse {
		t.Error("following must not be reciprocal")
	}
}

func TestFollowersAndFollowingListings(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	carol := createTestUser(t, db, "carol@example.com")

	if err := repo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := repo.Follow(carol.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	followers, err := repo.GetFollowers(bob.ID)
	if err != nil {
		t.Fatalf("GetFollowers failed: %v", err)
	}
	if len(followers) != 2 {
		t.Fatalf("expected 2 followers of bob, got %d", len(followers))
	}

	following, err := repo.GetFollowing(alice.ID)
	if err != nil {
		t.Fatalf("GetFollowing failed: %v", err)
	}
	if len(following) != 1 || following[0].ID != bob.ID {
		t.Errorf("expected alice to follow only bob, got %+v", following)
	}

	ids, err := repo.GetFollowedIDs(alice.ID)
	if err != nil {
		t.Fatalf("GetFollowedIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != bob.ID {
		t.Errorf("expected followed ids [%d], got %v", bob.ID, ids)
	}

	count, err := repo.GetFollowersCount(bob.ID)
	if err != nil {
		t.Fatalf("GetFollowersCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected followers count 2, got %d", count)
	}
}
