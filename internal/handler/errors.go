package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lumiere-beauty/storefront-api/internal/client"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

// httpError maps service-layer failures onto HTTP statuses. Stock conflicts
// and unavailable products get distinct codes so the storefront can tell
// "adjust your cart" apart from "try again".
func httpError(err error) error {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return echo.NewHTTPError(http.StatusConflict, stockErr.Error())
	case errors.Is(err, service.ErrUnavailableProduct):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOrderNotLinked):
		return echo.NewHTTPError(http.StatusBadRequest, "Order not linked")
	case errors.Is(err, client.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Session not found")
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	default:
		return err
	}
}
