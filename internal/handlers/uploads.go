package handlers

import (
	"mime/multipart"
	"time"

	"github.com/breadsapp/breads/backend/internal/models"
	"github.com/breadsapp/breads/backend/pkg/storage"
	"github.com/sirupsen/logrus"
)

// storeUploads validates and stores every uploaded file, returning image
// records ready to persist. On any failure the already-stored files are
// removed again so a partial upload leaves nothing on disk.
func storeUploads(store storage.Store, files []*multipart.FileHeader, userID uint) ([]models.Image, error) {
	var images []models.Image
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			cleanupFiles(store, images)
			return nil, err
		}
		name, err := store.Save(src, fh.Filename)
		src.Close()
		if err != nil {
			cleanupFiles(store, images)
			return nil, err
		}
		images = append(images, models.Image{
			Name:       name,
			UserID:     userID,
			UploadTime: time.Now().UTC(),
		})
	}
	return images, nil
}

// cleanupFiles best-effort deletes stored files, logging failures.
func cleanupFiles(store storage.Store, images []models.Image) {
	for _, img := range images {
		if err := store.Delete(img.Name); err != nil {
			logrus.WithError(err).WithField("image", img.Name).Warn("failed to remove stored file")
		}
	}
}

// formFiles extracts the "files" part of a multipart request, tolerating
// plain JSON requests with no files at all.
func formFiles(form *multipart.Form) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	return form.File["files"]
}
