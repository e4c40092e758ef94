package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	profilemodel "social-backend/internal/domains/profile/model"
	"social-backend/internal/domains/user/model"
	"social-backend/internal/domains/user/service"
	"social-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes mounts the auth endpoints. These are the only public
// routes besides the health check.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}

// Register creates an account and its profile, returning tokens
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login authenticates with email and password, returning tokens
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tokens, err := h.userService.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tokens)
}

// handleError maps user domain errors to HTTP status codes
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var userErr *model.UserError
	if errors.As(err, &userErr) {
		response.ErrorResponse(c, mapUserErrorStatus(userErr.Code), userErr.Code, userErr.Message)
		return
	}

	var profileErr *profilemodel.ProfileError
	if errors.As(err, &profileErr) && profileErr.Code == profilemodel.ErrCodeUsernameTaken {
		response.ErrorResponse(c, http.StatusConflict, profileErr.Code, profileErr.Message)
		return
	}

	response.InternalServerError(c, "Something went wrong")
}

// mapUserErrorStatus maps user error codes to HTTP status codes
func mapUserErrorStatus(code string) int {
	switch code {
	case model.ErrCodeEmailTaken:
		return http.StatusConflict
	case model.ErrCodeInvalidCredentials, model.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case model.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
