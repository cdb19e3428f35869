package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/errors"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services"
)

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	supplierService services.SupplierServiceInterface
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService services.SupplierServiceInterface) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// ListSuppliers returns the user's suppliers ordered by total spend
// @Summary List suppliers
// @Tags Suppliers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SupplierListResponse "Supplier list"
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	suppliers, err := h.supplierService.ListSuppliers(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SupplierListResponse{Suppliers: suppliers})
}

// CreateSupplier registers a supplier
// @Summary Create supplier
// @Tags Suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse "Created supplier"
// @Failure 409 {object} errors.ErrorResponse "SUPPLIER_002 - Supplier name already in use"
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	supplier, err := h.supplierService.CreateSupplier(userID, &req)
	if err != nil {
		return h.mapSupplierError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SupplierResponse{Supplier: supplier})
}

// UpdateSupplier updates a supplier's contact details and default category
// @Summary Update supplier
// @Tags Suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param request body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse "Updated supplier"
// @Failure 404 {object} errors.ErrorResponse "SUPPLIER_001 - Supplier not found"
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SupplierInvalidID)
	}

	var req dto.UpdateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	supplier, err := h.supplierService.UpdateSupplier(userID, supplierID, &req)
	if err != nil {
		return h.mapSupplierError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SupplierResponse{Supplier: supplier})
}

func (h *SupplierHandler) mapSupplierError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrSupplierNotFound),
		stderrors.Is(err, services.ErrSupplierNotOwned):
		return SendError(c, errors.SupplierNotFound)
	case stderrors.Is(err, repositories.ErrSupplierExists):
		return SendError(c, errors.SupplierAlreadyExists)
	case stderrors.Is(err, repositories.ErrCategoryNotFound),
		stderrors.Is(err, services.ErrCategoryNotOwned):
		return SendError(c, errors.CategoryNotFound)
	default:
		return SendSystemError(c, err)
	}
}
