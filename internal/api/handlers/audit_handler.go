package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
)

const defaultAuditLimit = 100

type AuditHandler struct {
	base
	svc *application.AuditService
}

func NewAuditHandler(b base, svc *application.AuditService) *AuditHandler {
	return &AuditHandler{base: b, svc: svc}
}

func parseAuditQuery(c *gin.Context) (repository.AuditQueryParams, error) {
	params := repository.AuditQueryParams{
		UserID:       queryUint(c, "user_id"),
		ResourceType: queryString(c, "resource_type"),
		Action:       queryString(c, "action"),
		Limit:        defaultAuditLimit,
	}
	for key, dst := range map[string]**time.Time{"start_time": &params.StartTime, "end_time": &params.EndTime} {
		raw := queryString(c, key)
		if raw == nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			return params, apperrors.Invalid(key, "rfc3339", key+" must be an RFC3339 timestamp")
		}
		*dst = &t
	}
	if raw := queryString(c, "limit"); raw != nil {
		n, err := strconv.Atoi(*raw)
		if err != nil || n <= 0 {
			return params, apperrors.Invalid("limit", "gt", "limit must be greater than 0")
		}
		params.Limit = n
	}
	if raw := queryString(c, "offset"); raw != nil {
		n, err := strconv.Atoi(*raw)
		if err != nil || n < 0 {
			return params, apperrors.Invalid("offset", "gte", "offset must be greater than or equal to 0")
		}
		params.Offset = n
	}
	return params, nil
}

// GetAuditLogs godoc
// @Summary Query audit logs
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Actor user ID"
// @Param resource_type query string false "Resource type"
// @Param action query string false "Action"
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} audit.AuditLog
// @Failure 403 {object} response.ErrorResponse
// @Router /api/admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params, err := parseAuditQuery(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), middleware.SessionFrom(c), params)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
