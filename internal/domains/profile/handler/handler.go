package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"social-backend/internal/domains/profile/model"
	"social-backend/internal/domains/profile/service"
	"social-backend/internal/shared/middleware"
	"social-backend/internal/shared/response"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// RegisterRoutes mounts the profile endpoints. All of them require auth.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("", h.ListProfiles)
		profiles.GET("/:id", h.GetProfile)
		profiles.POST("/:id/follow", h.FollowProfile)
		profiles.POST("/:id/unfollow", h.UnfollowProfile)
	}

	me := rg.Group("/me")
	{
		me.GET("", h.GetMyProfile)
		me.PATCH("", h.UpdateMyProfile)
		me.DELETE("", h.DeleteMyAccount)
		me.PUT("/image", h.UploadMyImage)
		me.GET("/followers", h.ListMyFollowers)
		me.GET("/following", h.ListMyFollowing)
	}
}

// ListProfiles lists profiles with optional exact-match filters
// GET /api/v1/profiles?username=&first_name=&last_name=
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var filter model.ListProfilesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, err := h.profileService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// GetProfile gets a profile detail with counters and posts
// GET /api/v1/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	detail, err := h.profileService.GetDetail(c.Request.Context(), userID, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// FollowProfile follows another profile
// POST /api/v1/profiles/:id/follow
func (h *ProfileHandler) FollowProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	if err := h.profileService.Follow(c.Request.Context(), userID, profileID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// UnfollowProfile removes a follow edge
// POST /api/v1/profiles/:id/unfollow
func (h *ProfileHandler) UnfollowProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	if err := h.profileService.Unfollow(c.Request.Context(), userID, profileID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// GetMyProfile returns the caller's own profile
// GET /api/v1/me
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	me, err := h.profileService.GetMine(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, me)
}

// UpdateMyProfile partially updates the caller's profile
// PATCH /api/v1/me
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	me, err := h.profileService.UpdateMine(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, me)
}

// DeleteMyAccount deletes the caller's account and everything it owns
// DELETE /api/v1/me
func (h *ProfileHandler) DeleteMyAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.profileService.DeleteMine(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// UploadMyImage replaces the caller's profile image
// PUT /api/v1/me/image
func (h *ProfileHandler) UploadMyImage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
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
	url, err := h.profileService.SetImage(c.Request.Context(), userID, fileHeader.Filename, data, contentType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_path": url})
}

// ListMyFollowers lists profiles following the caller
// GET /api/v1/me/followers
func (h *ProfileHandler) ListMyFollowers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	rows, err := h.profileService.Followers(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

// ListMyFollowing lists profiles the caller follows
// GET /api/v1/me/following
func (h *ProfileHandler) ListMyFollowing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	rows, err := h.profileService.Following(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

// handleError maps profile domain errors to HTTP status codes
func (h *ProfileHandler) handleError(c *gin.Context, err error) {
	var profileErr *model.ProfileError
	if errors.As(err, &profileErr) {
		response.ErrorResponse(c, mapProfileErrorStatus(profileErr.Code), profileErr.Code, profileErr.Message)
		return
	}

	response.InternalServerError(c, "Something went wrong")
}

// mapProfileErrorStatus maps profile error codes to HTTP status codes
func mapProfileErrorStatus(code string) int {
	switch code {
	case model.ErrCodeProfileNotFound, model.ErrCodeNotFollowing:
		return http.StatusNotFound
	case model.ErrCodeSelfFollow:
		return http.StatusBadRequest
	case model.ErrCodeAlreadyFollowing, model.ErrCodeUsernameTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
