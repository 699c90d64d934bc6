package handlers

import (
	"net/http"

	"github.com/breadsapp/breads/backend/internal/repositories"
	"github.com/breadsapp/breads/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ImageHandler handles standalone image upload and retrieval requests
type ImageHandler struct {
	imageRepository repositories.ImageRepository
	store           storage.Store
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageRepo repositories.ImageRepository, store storage.Store) *ImageHandler {
	return &ImageHandler{
		imageRepository: imageRepo,
		store:           store,
	}
}

// RegisterImageRoutes registers image-related routes
func (h *ImageHandler) RegisterImageRoutes(g *echo.Group) {
	g.POST("/images", h.UploadImages)
	g.GET("/images", h.ListImages)
	g.GET("/images/:filename", h.DownloadImage)
	g.DELETE("/images/:filename", h.DeleteImage)
}

// UploadImages stores one or more uploaded files and records them for the
// current user. All records commit together or not at all; on failure the
// stored files are removed again.
func (h *ImageHandler) UploadImages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}
	files := formFiles(form)
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No files in request")
	}

	images, err := storeUploads(h.store, files, currentUserID)
	if err != nil {
		return httpError(err)
	}

	if err := h.imageRepository.CreateImages(images); err != nil {
		cleanupFiles(h.store, images)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"images": images})
}

// ListImages lists all images owned by the current user
func (h *ImageHandler) ListImages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	images, err := h.imageRepository.GetImagesByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"images": images})
}

// DownloadImage serves the stored file by its generated name
func (h *ImageHandler) DownloadImage(c echo.Context) error {
	name := c.Param("filename")
	if _, err := h.imageRepository.GetImageByName(name); err != nil {
		return httpError(err)
	}
	path, err := h.store.Path(name)
	if err != nil {
		return httpError(err)
	}
	return c.File(path)
}

// DeleteImage removes the image record and its stored file. Only the owner
// may delete an image.
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	name := c.Param("filename")
	existing, err := h.imageRepository.GetImageByName(name)
	if err != nil {
		return httpError(err)
	}
	if existing.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the image owner")
	}

	image, err := h.imageRepository.DeleteImageByName(name)
	if err != nil {
		return httpError(err)
	}

	if err := h.store.Delete(image.Name); err != nil {
		logrus.WithError(err).WithField("image", image.Name).Warn("failed to delete stored file for removed image")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
