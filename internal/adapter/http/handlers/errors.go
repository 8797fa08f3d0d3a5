package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"registro_inpi/internal/adapter/http/middleware"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase"
	"registro_inpi/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidLimit    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

// mapUseCaseError maps by error kind. Validation messages are safe to show;
// store and gateway causes stay in the logs.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuthorization):
		return pkg.NewDomainError("FORBIDDEN", "You are not allowed to perform this action", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrProcessNotFound):
		return pkg.NewDomainError("PROCESS_NOT_FOUND", "Registration process not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingNotFound):
		return pkg.NewDomainError("BILLING_NOT_FOUND", "Billing record not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainError("PROFILE_NOT_FOUND", "Profile not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainError("BILLING_ALREADY_PAID", "Billing record is not pending", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentTransition):
		return pkg.NewDomainError("PROCESS_STATUS_CONFLICT", "Process status changed concurrently, reload and retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrProfileAlreadyExists):
		return pkg.NewDomainError("PROFILE_EXISTS", "Profile already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Conflicting update", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStore):
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment declined by provider", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", "An upstream service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationMessage drops the "validation error: " prefix of the kind.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), usecase.ErrValidation.Error()+": ")
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeUseCaseError(c *gin.Context, area string, err error) {
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] request failed path=%s code=%s err=%v", area, c.FullPath(), appErr.Code, err)
	}
	writeError(c, appErr)
}

// caller returns the authenticated identity or writes 401.
func caller(c *gin.Context) (entities.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		writeError(c, errUnauthenticated)
		return entities.Identity{}, false
	}
	return identity, true
}

// queryLimit parses ?limit=; 0 means the use case default.
func queryLimit(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(c, errInvalidLimit)
		return 0, false
	}
	return n, true
}
