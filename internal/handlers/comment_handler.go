package handlers

import (
	"net/http"
	"strconv"

	"github.com/breadsapp/breads/backend/internal/models"
	"github.com/breadsapp/breads/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles comment attachment HTTP requests for both
// commentable kinds.
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	imageRepository   repositories.ImageRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, imageRepo repositories.ImageRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		imageRepository:   imageRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreatePostComment)
	g.GET("/posts/:post_id/comments", h.GetPostComments)
	g.POST("/images/:filename/comments", h.CreateImageComment)
	g.GET("/images/:filename/comments", h.GetImageComments)
	g.GET("/comments/:id", h.GetComment)
}

// CreatePostComment attaches a comment to a post
func (h *CommentHandler) CreatePostComment(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return h.createComment(c, models.PostTarget(uint(postID)))
}

// GetPostComments lists all comments attached to a post
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return h.listComments(c, models.PostTarget(uint(postID)))
}

// CreateImageComment attaches a comment to an image, addressed by filename
func (h *CommentHandler) CreateImageComment(c echo.Context) error {
	image, err := h.imageRepository.GetImageByName(c.Param("filename"))
	if err != nil {
		return httpError(err)
	}
	return h.createComment(c, models.ImageTarget(image.ID))
}

// GetImageComments lists all comments attached to an image
func (h *CommentHandler) GetImageComments(c echo.Context) error {
	image, err := h.imageRepository.GetImageByName(c.Param("filename"))
	if err != nil {
		return httpError(err)
	}
	return h.listComments(c, models.ImageTarget(image.ID))
}

// GetComment retrieves one comment with its parent and direct replies
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	comment, err := h.commentRepository.GetCommentByID(uint(id))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) createComment(c echo.Context, target models.CommentTarget) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.Comment{
		Text:            req.Text,
		UserID:          currentUserID,
		ParentCommentID: req.ParentCommentID,
	}
	if err := h.commentRepository.CreateComment(target, comment); err != nil {
		return httpError(err)
	}

	created, err := h.commentRepository.GetCommentByID(comment.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CommentHandler) listComments(c echo.Context, target models.CommentTarget) error {
	comments, err := h.commentRepository.GetCommentsForTarget(target)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}
