package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"social-backend/internal/domains/post/model"
	"social-backend/internal/domains/post/service"
	profilemodel "social-backend/internal/domains/profile/model"
	"social-backend/internal/shared/middleware"
	"social-backend/internal/shared/response"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// RegisterRoutes mounts the post endpoints. All of them require auth.
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/feed", h.ListFeed)
		posts.GET("/my-posts", h.ListMyPosts)
		posts.GET("/liked", h.ListLikedPosts)
		posts.GET("/:id", h.GetPost)
		posts.PATCH("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)
		posts.PUT("/:id/image", h.UploadPostImage)
		posts.POST("/:id/like", h.LikePost)
		posts.POST("/:id/unlike", h.UnlikePost)
	}
}

// CreatePost publishes a post, or accepts it for deferred publishing
// when scheduled_at is in the future
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.postService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result.Scheduled() {
		response.Success(c, http.StatusAccepted, gin.H{
			"scheduled_at": result.ScheduledAt,
		})
		return
	}

	response.Success(c, http.StatusCreated, result.Post)
}

// ListPosts lists all posts, optionally filtered by hashtags
// GET /api/v1/posts?hashtags=go,coffee
func (h *PostHandler) ListPosts(c *gin.Context) {
	h.listWithScope(c, model.ScopeAll)
}

// ListFeed lists posts authored by profiles the caller follows
// GET /api/v1/posts/feed
func (h *PostHandler) ListFeed(c *gin.Context) {
	h.listWithScope(c, model.ScopeFeed)
}

// ListMyPosts lists the caller's own posts
// GET /api/v1/posts/my-posts
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	h.listWithScope(c, model.ScopeMine)
}

// ListLikedPosts lists posts the caller has liked
// GET /api/v1/posts/liked
func (h *PostHandler) ListLikedPosts(c *gin.Context) {
	h.listWithScope(c, model.ScopeLiked)
}

func (h *PostHandler) listWithScope(c *gin.Context, scope model.ListScope) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	filter := model.ListPostsFilter{
		Scope:    scope,
		Hashtags: parseHashtags(c.Query("hashtags")),
	}

	items, err := h.postService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// parseHashtags splits the comma-separated hashtags query parameter,
// dropping empty segments.
func parseHashtags(raw string) []string {
	if raw == "" {
		return nil
	}

	var titles []string
	for _, part := range strings.Split(raw, ",") {
		if title := strings.TrimSpace(part); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

// GetPost gets a single post with counters and hashtags
// GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
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

	detail, err := h.postService.GetDetail(c.Request.Context(), userID, postID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdatePost replaces the post text, author only
// PATCH /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
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

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.postService.Update(c.Request.Context(), userID, postID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// DeletePost deletes a post, author only
// DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
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

	if err := h.postService.Delete(c.Request.Context(), userID, postID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// UploadPostImage attaches or replaces the post image, author only
// PUT /api/v1/posts/:id/image
func (h *PostHandler) UploadPostImage(c *gin.Context) {
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

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "Failed to read image file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.postService.SetImage(c.Request.Context(), userID, postID, fileHeader.Filename, data, contentType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_path": url})
}

// LikePost likes a post
// POST /api/v1/posts/:id/like
func (h *PostHandler) LikePost(c *gin.Context) {
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

	if err := h.postService.Like(c.Request.Context(), userID, postID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// UnlikePost removes the caller's like from a post
// POST /api/v1/posts/:id/unlike
func (h *PostHandler) UnlikePost(c *gin.Context) {
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

	if err := h.postService.Unlike(c.Request.Context(), userID, postID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps post domain errors to HTTP status codes
func (h *PostHandler) handleError(c *gin.Context, err error) {
	var postErr *model.PostError
	if errors.As(err, &postErr) {
		response.ErrorResponse(c, mapPostErrorStatus(postErr.Code), postErr.Code, postErr.Message)
		return
	}

	if errors.Is(err, profilemodel.ErrProfileNotFound) {
		response.ErrorResponse(c, http.StatusNotFound, profilemodel.ErrCodeProfileNotFound, "Profile not found")
		return
	}

	response.InternalServerError(c, "Something went wrong")
}

// mapPostErrorStatus maps post error codes to HTTP status codes
func mapPostErrorStatus(code string) int {
	switch code {
	case model.ErrCodePostNotFound, model.ErrCodeNotLiked:
		return http.StatusNotFound
	case model.ErrCodeNotAuthor:
		return http.StatusForbidden
	case model.ErrCodeAlreadyLiked:
		return http.StatusConflict
	case model.ErrCodeTextTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
