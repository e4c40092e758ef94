package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"social-backend/internal/domains/comment/model"
	"social-backend/internal/domains/comment/service"
	postmodel "social-backend/internal/domains/post/model"
	profilemodel "social-backend/internal/domains/profile/model"
	"social-backend/internal/shared/middleware"
	"social-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes mounts comment endpoints under posts.
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts/:id/comments", h.ListComments)
	rg.POST("/posts/:id/comments", h.CreateComment)
	rg.PATCH("/posts/:id/comments/:commentID", h.UpdateComment)
	rg.DELETE("/posts/:id/comments/:commentID", h.DeleteComment)
}

// CreateComment adds a comment to a post
// POST /api/v1/posts/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, postID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// ListComments lists a post's comments, newest first
// GET /api/v1/posts/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	views, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, views)
}

// UpdateComment replaces the comment text, author only
// PATCH /api/v1/posts/:id/comments/:commentID
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	commentID, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), userID, commentID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// DeleteComment removes a comment, author only
// DELETE /api/v1/posts/:id/comments/:commentID
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	commentID, err := uuid.Parse(c.Param("commentID"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps comment domain errors to HTTP status codes
func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var commentErr *model.CommentError
	if errors.As(err, &commentErr) {
		response.ErrorResponse(c, mapCommentErrorStatus(commentErr.Code), commentErr.Code, commentErr.Message)
		return
	}

	switch {
	case errors.Is(err, postmodel.ErrPostNotFound):
		response.ErrorResponse(c, http.StatusNotFound, postmodel.ErrCodePostNotFound, "Post not found")
	case errors.Is(err, profilemodel.ErrProfileNotFound):
		response.ErrorResponse(c, http.StatusNotFound, profilemodel.ErrCodeProfileNotFound, "Profile not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}

// mapCommentErrorStatus maps comment error codes to HTTP status codes
func mapCommentErrorStatus(code string) int {
	switch code {
	case model.ErrCodeCommentNotFound:
		return http.StatusNotFound
	case model.ErrCodeNotAuthor:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
