package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/seller/model"
	"craftmarket-backend/internal/domains/seller/service"
	"craftmarket-backend/internal/shared/response"
)

// =====================================================
// SELLER HANDLER
// =====================================================

type SellerHandler struct {
	sellerService service.ServiceInterface
}

func NewSellerHandler(sellerService service.ServiceInterface) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
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

// CreateProfile opens a shop for the calling user
// POST /api/v1/sellers
func (h *SellerHandler) CreateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	userName := c.GetString("userName")

	var req model.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	seller, err := h.sellerService.CreateProfile(c.Request.Context(), userID, userName, req)
	if err != nil {
		statusCode, errCode := mapSellerError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, seller)
}

// GetProfile returns a public seller profile
// GET /api/v1/sellers/:id
func (h *SellerHandler) GetProfile(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid seller ID")
		return
	}

	seller, err := h.sellerService.GetProfile(c.Request.Context(), sellerID)
	if err != nil {
		statusCode, errCode := mapSellerError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, seller)
}

// GetMyProfile returns the calling user's seller profile
// GET /api/v1/sellers/me
func (h *SellerHandler) GetMyProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	seller, err := h.sellerService.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		statusCode, errCode := mapSellerError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, seller)
}

// UpdateProfile updates the calling user's seller profile
// PUT /api/v1/sellers/me
func (h *SellerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	seller, err := h.sellerService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		statusCode, errCode := mapSellerError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, seller)
}

// GetStats summarizes the calling user's listings
// GET /api/v1/sellers/me/stats
func (h *SellerHandler) GetStats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	stats, err := h.sellerService.GetStats(c.Request.Context(), userID)
	if err != nil {
		statusCode, errCode := mapSellerError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// mapSellerError maps a seller error to HTTP status and error code
func mapSellerError(err error) (int, string) {
	var sellerErr *model.SellerError
	if errors.As(err, &sellerErr) {
		switch sellerErr.Code {
		case model.ErrCodeSellerNotFound:
			return http.StatusNotFound, sellerErr.Code
		case model.ErrCodeAlreadySeller:
			return http.StatusConflict, sellerErr.Code
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
