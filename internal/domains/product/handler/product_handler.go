package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/product/model"
	"craftmarket-backend/internal/domains/product/service"
	"craftmarket-backend/internal/shared/response"
)

// =====================================================
// PRODUCT HANDLER
// =====================================================

type ProductHandler struct {
	productService service.ServiceInterface
}

func NewProductHandler(productService service.ServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// ListProducts browses the marketplace
// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req model.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, products, &response.Meta{Total: len(products)})
}

// GetProduct gets a single product
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, product)
}

// ListCategories lists the supported product categories
// GET /api/v1/products/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, model.Categories)
}

// CreateProduct creates a listing
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// UpdateProduct updates a listing
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), userID, c.GetString("userRole"), productID, req)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, product)
}

// DeleteProduct deletes a listing
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), userID, c.GetString("userRole"), productID); err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// mapProductError maps a product error to HTTP status and error code
func mapProductError(err error) (int, string) {
	var productErr *model.ProductError
	if errors.As(err, &productErr) {
		switch productErr.Code {
		case model.ErrCodeProductNotFound:
			return http.StatusNotFound, productErr.Code
		case model.ErrCodeNotOwner:
			return http.StatusForbidden, productErr.Code
		case model.ErrCodeInvalidCategory:
			return http.StatusBadRequest, productErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}

	var validationErrs validation.Errors
	var validationErr validation.Error
	if errors.As(err, &validationErrs) || errors.As(err, &validationErr) {
		return http.StatusBadRequest, "VALIDATION_ERROR"
	}

	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
