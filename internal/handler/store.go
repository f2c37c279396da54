package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

// StoreHandler serves the public catalog and the permission-gated catalog
// administration endpoints.
type StoreHandler struct {
	storeService service.StoreService
}

func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// -------- products --------

func (h *StoreHandler) ListProducts(c echo.Context) error {
	products, err := h.storeService.ListProducts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StoreHandler) GetProduct(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	product, err := h.storeService.GetProduct(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *StoreHandler) CreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Category == "" || req.Price == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, category and price are required")
	}
	product, err := h.storeService.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *StoreHandler) UpdateProduct(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	product, err := h.storeService.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *StoreHandler) DeleteProduct(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.storeService.DeleteProduct(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}

// -------- services --------

func (h *StoreHandler) ListServices(c echo.Context) error {
	services, err := h.storeService.ListServices(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, services)
}

func (h *StoreHandler) GetService(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	svc, err := h.storeService.GetService(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *StoreHandler) CreateService(c echo.Context) error {
	var req dto.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Category == "" || req.Duration == 0 || req.Price == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, category, duration and price are required")
	}
	svc, err := h.storeService.CreateService(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, svc)
}

func (h *StoreHandler) UpdateService(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	svc, err := h.storeService.UpdateService(c.Request().Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *StoreHandler) DeleteService(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.storeService.DeleteService(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}

// -------- staff --------

func (h *StoreHandler) ListStaff(c echo.Context) error {
	staff, err := h.storeService.ListStaff(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *StoreHandler) CreateStaff(c echo.Context) error {
	var req dto.StaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and role are required")
	}
	staff, err := h.storeService.CreateStaff(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, staff)
}

func (h *StoreHandler) UpdateStaff(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.StaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	staff, err := h.storeService.UpdateStaff(c.Request().Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *StoreHandler) DeleteStaff(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.storeService.DeleteStaff(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}

// -------- clients (PII, permission-gated) --------

func (h *StoreHandler) ListClients(c echo.Context) error {
	clients, err := h.storeService.ListClients(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *StoreHandler) CreateClient(c echo.Context) error {
	var req dto.ClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}
	client, err := h.storeService.CreateClient(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *StoreHandler) UpdateClient(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	client, err := h.storeService.UpdateClient(c.Request().Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, client)
}

func (h *StoreHandler) DeleteClient(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.storeService.DeleteClient(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}
