package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/pkg/response"
)

const healthTimeout = 3 * time.Second

// Pinger is any dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	base
	deps map[string]Pinger
}

// NewHealthHandler takes the dependencies to probe keyed by name. Nil
// entries are skipped.
func NewHealthHandler(b base, deps map[string]Pinger) *HealthHandler {
	live := make(map[string]Pinger, len(deps))
	for name, p := range deps {
		if p != nil {
			live[name] = p
		}
	}
	return &HealthHandler{base: b, deps: live}
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// Test godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.StatusResponse
// @Router /api/test [get]
func (h *HealthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Status: "ok"})
}

// Health godoc
// @Summary Readiness probe with dependency checks
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	res := HealthResponse{Status: "ok", Dependencies: make(map[string]string, len(h.deps))}
	code := http.StatusOK
	for name, p := range h.deps {
		if err := p.Ping(ctx); err != nil {
			res.Dependencies[name] = "down: " + err.Error()
			res.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		res.Dependencies[name] = "up"
	}
	c.JSON(code, res)
}
