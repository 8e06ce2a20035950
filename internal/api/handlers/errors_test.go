package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/testutils"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func failRouter(b base, err error) *gin.Engine {
	r := testutils.SetupRouter()
	r.GET("/", func(c *gin.Context) { b.fail(c, err) })
	return r
}

func TestFailMapsErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", apperrors.NotFound("Property", 9), http.StatusNotFound, `{"error":"Property not found"}`},
		{"auth", &apperrors.AuthError{Reason: "invalid email or password"}, http.StatusUnauthorized, `{"error":"invalid email or password"}`},
		{"forbidden", apperrors.Forbidden("nope"), http.StatusForbidden, `{"error":"nope"}`},
		{"unique", &apperrors.ConstraintError{Kind: apperrors.ConstraintUnique, Constraint: "email"}, http.StatusConflict, `{"error":"email already registered"}`},
		{"unique email index", &apperrors.ConstraintError{Kind: apperrors.ConstraintUnique, Constraint: "idx_users_email"}, http.StatusConflict, `{"error":"email already registered"}`},
		{"unique other", &apperrors.ConstraintError{Kind: apperrors.ConstraintUnique, Constraint: "idx_users_auth_id"}, http.StatusConflict, `{"error":"unique constraint \"idx_users_auth_id\" violated"}`},
		{"foreign key", &apperrors.ConstraintError{Kind: apperrors.ConstraintForeignKey}, http.StatusBadRequest, `{"error":"referenced record does not exist"}`},
		{"uploads disabled", application.ErrUploadsDisabled, http.StatusServiceUnavailable, `{"error":"object storage is not configured"}`},
		{"validation", apperrors.Invalid("title", "required", "title is required"), http.StatusBadRequest,
			`{"error":[{"field":"title","tag":"required","message":"title is required"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutils.Do(t, failRouter(base{logger: zap.NewNop()}, tt.err), testutils.Request{Method: http.MethodGet, Path: "/"})
			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestFailHidesInternalErrorsInProduction(t *testing.T) {
	err := &apperrors.StorageError{Op: "get property", Err: errors.New("connection refused")}

	w := testutils.Do(t, failRouter(base{logger: zap.NewNop(), production: true}, err), testutils.Request{Method: http.MethodGet, Path: "/"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	w = testutils.Do(t, failRouter(base{logger: zap.NewNop()}, err), testutils.Request{Method: http.MethodGet, Path: "/"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"get property: connection refused"}`, w.Body.String())
}

func TestBindReportsTypeErrors(t *testing.T) {
	r := testutils.SetupRouter()
	r.POST("/", func(c *gin.Context) {
		var in property.CreatePropertyInput
		if err := bind(c, &in); err != nil {
			base{logger: zap.NewNop()}.fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/", Body: `{"bedrooms":"two"}`})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := testutils.DecodeJSON[response.ValidationErrorResponse](t, w)
	require.Len(t, body.Error, 1)
	assert.Equal(t, "bedrooms", body.Error[0].Field)

	assert.Equal(t, "type", body.Error[0].Tag)

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/", Body: `{not json`})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = testutils.DecodeJSON[response.ValidationErrorResponse](t, w)
	assert.Equal(t, "json", body.Error[0].Tag)

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = testutils.DecodeJSON[response.ValidationErrorResponse](t, w)
	assert.Equal(t, "required", body.Error[0].Tag)
}

func TestQueryHelpers(t *testing.T) {
	r := testutils.SetupRouter()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":     queryUint(c, "userId"),
			"featured": queryBool(c, "featured"),
			"city":     queryString(c, "city"),
		})
	})

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/?userId=abc&featured=true&city="})
	assert.JSONEq(t, `{"user":null,"featured":true,"city":null}`, w.Body.String())

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/?userId=7"})
	assert.JSONEq(t, `{"user":7,"featured":null,"city":null}`, w.Body.String())
}

func TestParseID(t *testing.T) {
	r := testutils.SetupRouter()
	r.GET("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			base{logger: zap.NewNop()}.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/42"})
	assert.JSONEq(t, `{"id":42}`, w.Body.String())

	for _, bad := range []string{"/abc", "/0", "/-1"} {
		w = testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: bad})
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}
