package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/response"
	"go.uber.org/zap"
)

// base carries what every handler needs to answer with an error.
type base struct {
	logger     *zap.Logger
	production bool
}

// fail maps err onto a status code and the {error} body.
func (b base) fail(c *gin.Context, err error) {
	var (
		verr *apperrors.ValidationError
		nerr *apperrors.NotFoundError
		aerr *apperrors.AuthError
		ferr *apperrors.ForbiddenError
		cerr *apperrors.ConstraintError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Error: verr.Issues})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: nerr.Error()})
	case errors.As(err, &aerr):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: aerr.Reason})
	case errors.As(err, &ferr):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: ferr.Reason})
	case errors.Is(err, application.ErrUploadsDisabled):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
	case errors.As(err, &cerr) && cerr.Kind == apperrors.ConstraintUnique:
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: conflictMessage(cerr)})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "referenced record does not exist"})
	default:
		_ = c.Error(err)
		b.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		msg := "Internal server error"
		if !b.production {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: msg})
	}
}

// conflictMessage names email clashes, whether raised by the sign-up check
// or by the idx_*_email unique indexes.
func conflictMessage(cerr *apperrors.ConstraintError) string {
	if cerr.Constraint == "email" || strings.HasSuffix(cerr.Constraint, "_email") {
		return "email already registered"
	}
	return cerr.Error()
}

// bind decodes a JSON body into dst. Decoding problems become validation
// errors naming the offending field; field rules are checked by the services.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.Is(err, io.EOF):
			return apperrors.Invalid("body", "required", "request body is required")
		case errors.As(err, &typeErr):
			return apperrors.Invalid(typeErr.Field, "type", typeErr.Field+" must be a "+typeErr.Type.String())
		case errors.As(err, &syntaxErr):
			return apperrors.Invalid("body", "json", "request body is not valid JSON")
		default:
			return apperrors.Invalid("body", "json", err.Error())
		}
	}
	return nil
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Invalid("id", "numeric", "id must be a positive integer")
	}
	return uint(id), nil
}

// queryUint returns nil when key is absent or not a number.
func queryUint(c *gin.Context, key string) *uint {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

func queryBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryString(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}
