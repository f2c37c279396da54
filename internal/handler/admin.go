package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/model"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
)

// AdminHandler manages staff accounts and their permission maps.
// Admin-only; the route group enforces that.
type AdminHandler struct {
	userRepo repository.UserRepository
}

func NewAdminHandler(userRepo repository.UserRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo}
}

func (h *AdminHandler) ListStaffUsers(c echo.Context) error {
	users, err := h.userRepo.ListByRole(c.Request().Context(), model.RoleStaff)
	if err != nil {
		return httpError(err)
	}

	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = mapUser(u)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) UpdateStaffPermissions(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Permissions == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "permissions object is required")
	}

	user, err := h.userRepo.UpdatePermissions(c.Request().Context(), id, model.Permissions(req.Permissions))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, mapUser(user))
}
