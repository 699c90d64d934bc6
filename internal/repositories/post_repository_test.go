package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/breadsapp/breads/backend/internal/models"
)

func TestPostsByUserPaginationWalk(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")

	const n = 7
	for i := 0; i < n; i++ {
		createTestPost(t, db, alice.ID, fmt.Sprintf("post %d", i))
	}

	const pageSize = 3
	seen := map[uint]bool{}
	var lastID uint
	for page := 1; page <= 3; page++ {
		posts, total, err := repo.GetPostsByUser(alice.ID, page, pageSize)
		if err != nil {
			t.Fatalf("page %d failed: %v", page, err)
		}
		if total != n {
			t.Errorf("page %d: expected total %d, got %d", page, n, total)
		}
		for _, p := range posts {
			if seen[p.ID] {
				t.Errorf("post %d returned twice", p.ID)
			}
			seen[p.ID] = true
			if p.ID <= lastID {
				t.Errorf("ordering not stable: post %d after %d", p.ID, lastID)
			}
			lastID = p.ID
		}
	}
	if len(seen) != n {
		t.Errorf("expected each of %d posts exactly once, saw %d", n, len(seen))
	}
}

func TestPostsByUserPagePastEnd(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	createTestPost(t, db, alice.ID, "only post")

	posts, total, err := repo.GetPostsByUser(alice.ID, 5, 10)
	if err != nil {
		t.Fatalf("page past end must not error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected empty page, got %d items", len(posts))
	}
	if total != 1 {
		t.Errorf("expected total 1 on empty page, got %d", total)
	}
}

func TestFeedScenario(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	follows := NewPostgresFollowRepository(db)
	u1 := createTestUser(t, db, "u1@example.com")
	u2 := createTestUser(t, db, "u2@example.com")

	if err := follows.Follow(u1.ID, u2.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		createTestPost(t, db, u2.ID, fmt.Sprintf("u2 post %d", i))
	}

	page1, total, err := posts.GetFeed(u1.ID, 1, 2)
	if err != nil {
		t.Fatalf("feed page 1 failed: %v", err)
	}
	if len(page1) != 2 || total != 3 {
		t.Errorf("page 1: expected 2 items and total 3, got %d items and total %d", len(page1), total)
	}

	page2, total, err := posts.GetFeed(u1.ID, 2, 2)
	if err != nil {
		t.Fatalf("feed page 2 failed: %v", err)
	}
	if len(page2) != 1 || total != 3 {
		t.Errorf("page 2: expected 1 item and total 3, got %d items and total %d", len(page2), total)
	}

	page3, total, err := posts.GetFeed(u1.ID, 3, 2)
	if err != nil {
		t.Fatalf("feed page 3 failed: %v", err)
	}
	if len(page3) != 0 || total != 3 {
		t.Errorf("page 3: expected 0 items and total 3, got %d items and total %d", len(page3), total)
	}
}

func TestFeedExcludesOwnPostsAndNonFollowed(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	follows := NewPostgresFollowRepository(db)
	u1 := createTestUser(t, db, "u1@example.com")
	u2 := createTestUser(t, db, "u2@example.com")
	u3 := createTestUser(t, db, "u3@example.com")

	if err := follows.Follow(u1.ID, u2.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	createTestPost(t, db, u1.ID, "own post")
	followed := createTestPost(t, db, u2.ID, "followed post")
	createTestPost(t, db, u3.ID, "stranger post")

	feed, total, err := posts.GetFeed(u1.ID, 1, 10)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if total != 1 || len(feed) != 1 {
		t.Fatalf("expected exactly one feed item, got %d (total %d)", len(feed), total)
	}
	if feed[0].ID != followed.ID {
		t.Errorf("expected post %d in feed, got %d", followed.ID, feed[0].ID)
	}
}

func TestCreatePostWithImagesIsAtomic(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")

	post := &models.Post{
		UserID:  alice.ID,
		Content: "with images",
		Images: []models.Image{
			{Name: "a.png", UserID: alice.ID, UploadTime: time.Now()},
			{Name: "b.jpg", UserID: alice.ID, UploadTime: time.Now()},
		},
	}
	if err := repo.CreatePost(post); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetPostByID(post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Images) != 2 {
		t.Errorf("expected 2 linked images, got %d", len(got.Images))
	}
	for _, img := range got.Images {
		if img.PostID == nil || *img.PostID != post.ID {
			t.Errorf("image %s not linked to post %d", img.Name, post.ID)
		}
	}
}

func TestUpdatePostPartialPatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	post := createTestPost(t, db, alice.ID, "original")

	updated, err := repo.UpdatePost(post.ID, map[string]interface{}{"content": "edited"}, nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("expected content %q, got %q", "edited", updated.Content)
	}
	if updated.UserID != alice.ID {
		t.Errorf("owner must not change on patch, got %d", updated.UserID)
	}
	if !updated.UpdatedAt.After(post.UpdatedAt) {
		t.Error("expected updated-at to move forward")
	}
}

func TestUpdatePostAttachesNewImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	post := createTestPost(t, db, alice.ID, "original")

	updated, err := repo.UpdatePost(post.ID, nil, []models.Image{
		{Name: "late.png", UserID: alice.ID, UploadTime: time.Now()},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0].Name != "late.png" {
		t.Errorf("expected the new image attached, got %+v", updated.Images)
	}
}

func TestUpdateMissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)

	if _, err := repo.UpdatePost(999, map[string]interface{}{"content": "x"}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePostCascadesImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	images := NewPostgresImageRepository(db)
	alice := createTestUser(t, db, "alice@example.com")

	post := &models.Post{
		UserID:  alice.ID,
		Content: "doomed",
		Images: []models.Image{
			{Name: "gone.png", UserID: alice.ID, UploadTime: time.Now()},
		},
	}
	if err := repo.CreatePost(post); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := repo.DeletePost(post.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(deleted.Images) != 1 {
		t.Fatalf("expected deleted post to report its images, got %d", len(deleted.Images))
	}

	if _, err := repo.GetPostByID(post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected post gone, got %v", err)
	}
	if _, err := images.GetImageByName("gone.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected image row gone, got %v", err)
	}
}

func TestDeleteMissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)

	if _, err := repo.DeletePost(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDetachImage(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")

	post := &models.Post{
		UserID:  alice.ID,
		Content: "keeps living",
		Images: []models.Image{
			{Name: "detached.png", UserID: alice.ID, UploadTime: time.Now()},
			{Name: "kept.png", UserID: alice.ID, UploadTime: time.Now()},
		},
	}
	if err := repo.CreatePost(post); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	img, err := repo.DetachImage(post.ID, "detached.png")
	if err != nil {
		t.Fatalf("detach failed: %v", err)
	}
	if img.Name != "detached.png" {
		t.Errorf("expected detached.png back, got %s", img.Name)
	}

	got, err := repo.GetPostByID(post.ID)
	if err != nil {
		t.Fatalf("post must survive detach: %v", err)
	}
	if len(got.Images) != 1 || got.Images[0].Name != "kept.png" {
		t.Errorf("expected only kept.png to remain, got %+v", got.Images)
	}

	if _, err := repo.DetachImage(post.ID, "never-there.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown image, got %v", err)
	}
	if _, err := repo.DetachImage(9999, "kept.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown post, got %v", err)
	}
}

func TestPageSizeClamped(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	for i := 0; i < 3; i++ {
		createTestPost(t, db, alice.ID, fmt.Sprintf("post %d", i))
	}

	// Out-of-range page and page size fall back to sane values instead
	// of erroring.
	posts, total, err := repo.GetPostsByUser(alice.ID, 0, 100000)
	if err != nil {
		t.Fatalf("clamped query failed: %v", err)
	}
	if len(posts) != 3 || total != 3 {
		t.Errorf("expected all 3 posts under clamping, got %d (total %d)", len(posts), total)
	}
}
