package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/middleware"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	token, user, err := h.authService.Register(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, &dto.AuthResponse{Token: token, User: mapUser(user)})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	token, user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &dto.AuthResponse{Token: token, User: mapUser(user)})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, map[string]dto.UserResponse{"user": mapUser(user)})
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.authService.UpdateProfile(ctx, user, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]dto.UserResponse{"user": mapUser(updated)})
}

func mapUser(user *model.User) dto.UserResponse {
	favorites := user.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	preferences := user.Preferences
	if preferences == nil {
		preferences = map[string]string{}
	}
	permissions := user.Permissions
	if permissions == nil {
		permissions = model.Permissions{}
	}
	return dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Role:          user.Role,
		LoyaltyPoints: user.LoyaltyPoints,
		ReferralCode:  user.ReferralCode,
		Favorites:     favorites,
		Preferences:   preferences,
		Permissions:   permissions,
	}
}
