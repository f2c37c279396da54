package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/middleware"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	paymentService  service.PaymentService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, paymentService service.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		paymentService:  paymentService,
	}
}

// PlaceCashOrder handles POST /api/orders (cash-on-delivery checkout).
func (h *CheckoutHandler) PlaceCashOrder(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "items are required")
	}

	orderID, err := h.checkoutService.PlaceCashOrder(ctx, user, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, &dto.CashOrderResponse{OrderID: orderID})
}

// CreateCheckoutSession handles POST /api/payments/create-checkout-session.
func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "items are required")
	}

	resp, err := h.checkoutService.OpenCardOrder(ctx, user, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// VerifyPayment handles GET /api/payments/verify?session_id=...
func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	resp, err := h.paymentService.Verify(ctx, user, sessionID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListMyOrders handles GET /api/orders/mine.
func (h *CheckoutHandler) ListMyOrders(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	orders, err := h.checkoutService.ListOrders(ctx, user.ID)
	if err != nil {
		return httpError(err)
	}

	summaries := make([]*dto.OrderSummary, len(orders))
	for i, order := range orders {
		summaries[i] = &dto.OrderSummary{
			ID:            order.ID,
			Subtotal:      order.Subtotal,
			Total:         order.Total,
			Currency:      order.Currency,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			PaymentStatus: order.PaymentStatus,
			CreatedAt:     order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return c.JSON(http.StatusOK, summaries)
}
