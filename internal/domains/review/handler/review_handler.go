package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/review/model"
	"craftmarket-backend/internal/domains/review/service"
	"craftmarket-backend/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// ListReviews lists a product's reviews
// GET /api/v1/products/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	var req model.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), productID, req)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// CreateReview creates a review for a product
// POST /api/v1/products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	userName := c.GetString("userName")

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), productID, userID, userName, req)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// GetReview gets a single review
// GET /api/v1/products/:id/reviews/:reviewId
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, review)
}

// UpdateReview updates a review
// PUT /api/v1/products/:id/reviews/:reviewId
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
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

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	// Only the author may edit their review
	existing, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	if existing.UserID != userID {
		response.Forbidden(c, "You can only edit your own reviews")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), productID, reviewID, req)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, review)
}

// DeleteReview deletes a review
// DELETE /api/v1/products/:id/reviews/:reviewId
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
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

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	existing, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	if existing.UserID != userID && c.GetString("userRole") != "admin" {
		response.Forbidden(c, "You can only delete your own reviews")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), productID, reviewID); err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// MarkHelpful records a helpful vote on a review
// POST /api/v1/reviews/:reviewId/helpful
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.reviewService.MarkHelpful(c.Request.Context(), reviewID, userID); err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Marked as helpful"})
}

// mapReviewError maps a review error to HTTP status and error code
func mapReviewError(err error) (int, string) {
	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		switch reviewErr.Code {
		case model.ErrCodeReviewNotFound:
			return http.StatusNotFound, reviewErr.Code
		case model.ErrCodeAlreadyReviewed:
			return http.StatusConflict, reviewErr.Code
		case model.ErrCodeInvalidRating, model.ErrCodeValidation:
			return http.StatusBadRequest, reviewErr.Code
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
