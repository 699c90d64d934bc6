package handlers

import (
	"net/http"
	"strconv"

	"github.com/breadsapp/breads/backend/internal/models"
	"github.com/breadsapp/breads/backend/internal/repositories"
	"github.com/breadsapp/breads/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PostHandler handles post CRUD HTTP requests
type PostHandler struct {
	postRepository repositories.PostRepository
	store          storage.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, store storage.Store) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		store:          store,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.DELETE("/posts/:id/images/:filename", h.DetachImage)
}

// CreatePost creates a new post, storing and linking any attached image
// files. The post row and every image row commit in one transaction; if
// that fails, the stored files are removed again.
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}

	images, err := storeUploads(h.store, formFiles(form), currentUserID)
	if err != nil {
		return httpError(err)
	}

	post := &models.Post{
		UserID:  currentUserID,
		Content: req.Content,
		Images:  images,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		cleanupFiles(h.store, images)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post with its images
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost applies a partial update and may attach newly uploaded images
// in the same call.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	existing, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return httpError(err)
	}
	if existing.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}

	images, err := storeUploads(h.store, formFiles(form), currentUserID)
	if err != nil {
		return httpError(err)
	}

	patch := map[string]interface{}{}
	if req.Content != nil {
		patch["content"] = *req.Content
	}

	post, err := h.postRepository.UpdatePost(uint(id), patch, images)
	if err != nil {
		cleanupFiles(h.store, images)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post together with its attached images. Image rows
// are removed in the same transaction as the post; the stored files are
// deleted best-effort afterwards, logging any failure.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	existing, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return httpError(err)
	}
	if existing.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	post, err := h.postRepository.DeletePost(uint(id))
	if err != nil {
		return httpError(err)
	}

	for _, img := range post.Images {
		if err := h.store.Delete(img.Name); err != nil {
			logrus.WithError(err).WithField("image", img.Name).Warn("failed to delete stored file for removed post")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DetachImage removes one image from a post and deletes its file. The post
// itself is untouched.
func (h *PostHandler) DetachImage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	existing, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return httpError(err)
	}
	if existing.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	image, err := h.postRepository.DetachImage(uint(id), c.Param("filename"))
	if err != nil {
		return httpError(err)
	}

	if err := h.store.Delete(image.Name); err != nil {
		logrus.WithError(err).WithField("image", image.Name).Warn("failed to delete stored file for detached image")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
