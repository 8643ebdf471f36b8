package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/services"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

type Handler struct {
	warehouseSrv *services.WarehouseService
	productSrv   *services.ProductService
	authSrv      *services.AuthService
	tokens       *auth.TokenIssuer
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(warehouseSrv *services.WarehouseService, productSrv *services.ProductService, authSrv *services.AuthService, tokens *auth.TokenIssuer) *Handler {
	return &Handler{
		warehouseSrv: warehouseSrv,
		productSrv:   productSrv,
		authSrv:      authSrv,
		tokens:       tokens,
	}
}

// statusFor maps error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		return http.StatusNotFound
	case srvErrors.IsConstraintViolationError(err):
		return http.StatusConflict
	case srvErrors.IsFormatError(err), srvErrors.IsValidationError(err):
		return http.StatusBadRequest
	case srvErrors.IsForbiddenError(err):
		return http.StatusForbidden
	case srvErrors.IsInvalidCredentialsError(err):
		return http.StatusUnauthorized
	case srvErrors.IsConnectionError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs server-side failures and answers with the error text for
// the kinds a client can act on.
func writeError(c *gin.Context, logger, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		zap.S().Named(logger).Errorw(msg, "error", err)
		c.JSON(status, v1.Error{Error: msg})
		return
	}
	c.JSON(status, v1.Error{Error: err.Error()})
}
