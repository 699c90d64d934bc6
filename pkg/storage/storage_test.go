package storage

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"photo.GIF", "photo.gif", "photo.bmp", "photo", "photo.png.exe"} {
		if _, err := store.Save(strings.NewReader("data"), name); !errors.Is(err, ErrInvalidFileType) {
			t.Errorf("%s: expected ErrInvalidFileType, got %v", name, err)
		}
	}
}

func TestSaveGeneratesUniqueLowercasedName(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(strings.NewReader("image bytes"), "photo.PNG")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("expected generated name ending in .png, got %s", name)
	}
	if name == "photo.PNG" || name == "photo.png" {
		t.Errorf("name must be generated, not the client's: %s", name)
	}

	other, err := store.Save(strings.NewReader("image bytes"), "photo.PNG")
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if other == name {
		t.Error("two saves of the same filename must get distinct names")
	}

	path, err := store.Path(name)
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file failed: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestDeleteAndPathNotFound(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(strings.NewReader("x"), "pic.jpeg")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(name); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Path(name); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(name); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestPathIgnoresDirectoryTraversal(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Path("../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for traversal attempt, got %v", err)
	}
}
