package handler

import (
	"errors"
	"net/http"
	"reflect"

	"bazaar-be/internal/admin"
	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/order"
	"bazaar-be/internal/payment"
	"bazaar-be/internal/seller"
	"bazaar-be/internal/session"
	"bazaar-be/internal/task"
	"bazaar-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	errBadRequest      = errors.New("malformed request")
	errUnauthenticated = errors.New("login required")
	errForbidden       = errors.New("not allowed for this role")
)

type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

type APIError struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details,omitempty"`
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func requestID(c *gin.Context) string {
	return logger.RequestIDFrom(c.Request.Context())
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data, RequestID: requestID(c)})
}

func respondError(c *gin.Context, err error) {
	status, code := classify(err)

	apiErr := &APIError{Code: code, Message: err.Error()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		apiErr.Message = "Request validation failed"
		for _, fe := range verrs {
			apiErr.Details = append(apiErr.Details, ValidationDetail{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	}

	if status >= http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		apiErr.Message = "internal server error"
	}

	c.AbortWithStatusJSON(status, Response{Success: false, Error: apiErr, RequestID: requestID(c)})
}

func classify(err error) (int, string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, errBadRequest),
		errors.Is(err, payment.ErrUnknownMethod),
		errors.Is(err, cart.ErrMissingProductID),
		errors.Is(err, seller.ErrEmptyProductName):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, errUnauthenticated),
		errors.Is(err, session.ErrSessionNotFound):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, errForbidden),
		errors.Is(err, seller.ErrNotOwner),
		errors.Is(err, seller.ErrMissingSeller):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, admin.ErrSellerNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, task.ErrInFlight):
		return http.StatusConflict, "IN_FLIGHT"
	case errors.Is(err, admin.ErrSellerNotPending):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, order.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "EMPTY_CART"
	case errors.Is(err, user.ErrMissingSession),
		errors.Is(err, cart.ErrMissingSession),
		errors.Is(err, order.ErrMissingSession):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "city":
		return "We do not deliver to this city yet"
	case "mobile":
		return "Must be an 11 digit mobile account, e.g. 03001234567"
	default:
		return "Invalid value"
	}
}
