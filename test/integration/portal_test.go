//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/linskybing/property-portal/internal/domain/blog"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListing(name, city string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": "Bright and close to transport",
		"address":     "10 High Street",
		"city":        city,
		"postcode":    "M1 1AA",
		"bedrooms":    2,
		"bathrooms":   1,
		"size":        65,
		"rent":        1200,
	}
}

func TestPortal_Integration(t *testing.T) {
	tc := setupTestContext(t)
	landlord := NewHTTPClient(tc.Router, tc.LandlordToken)
	agent := NewHTTPClient(tc.Router, tc.AgentToken)
	admin := NewHTTPClient(tc.Router, tc.AdminToken)
	public := NewHTTPClient(tc.Router, "")

	var propertyID uint

	t.Run("CreateProperty - Postgres enums take defaults", func(t *testing.T) {
		resp, err := landlord.POST("/api/properties", newListing("Canal Loft", "Manchester"))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

		var p property.Property
		require.NoError(t, resp.DecodeJSON(&p))
		assert.NotZero(t, p.ID)
		assert.Equal(t, property.StatusForRent, p.Status)
		assert.Equal(t, property.TypeApartment, p.Type)
		propertyID = p.ID
	})

	t.Run("ListProperties - city match ignores case", func(t *testing.T) {
		resp, err := public.GET("/api/properties?city=manchester")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var props []property.Property
		require.NoError(t, resp.DecodeJSON(&props))
		require.Len(t, props, 1)
		assert.Equal(t, propertyID, props[0].ID)
	})

	t.Run("ListProperties - owner filter", func(t *testing.T) {
		resp, err := public.GET(fmt.Sprintf("/api/properties?userId=%d&role=landlord", tc.Landlord.ID))
		require.NoError(t, err)
		var props []property.Property
		require.NoError(t, resp.DecodeJSON(&props))
		assert.Len(t, props, 1)

		resp, err = public.GET(fmt.Sprintf("/api/properties?userId=%d&role=agent", tc.Landlord.ID))
		require.NoError(t, err)
		require.NoError(t, resp.DecodeJSON(&props))
		assert.Empty(t, props)
	})

	t.Run("UpdateProperty - sold listing needs a price", func(t *testing.T) {
		resp, err := landlord.PATCH(fmt.Sprintf("/api/properties/%d", propertyID), map[string]interface{}{"status": "Sold"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, err = landlord.PATCH(fmt.Sprintf("/api/properties/%d", propertyID), map[string]interface{}{"status": "Sold", "price": 250000})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		var p property.Property
		require.NoError(t, resp.DecodeJSON(&p))
		assert.Equal(t, property.StatusSold, p.Status)
		assert.Equal(t, "Canal Loft", p.Name)
	})

	t.Run("UpdateProperty - concurrent writers, last write wins", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = landlord.PATCH(fmt.Sprintf("/api/properties/%d", propertyID), map[string]interface{}{"bedrooms": i + 1})
			}(i)
		}
		wg.Wait()

		resp, err := public.GET(fmt.Sprintf("/api/properties/%d", propertyID))
		require.NoError(t, err)
		var p property.Property
		require.NoError(t, resp.DecodeJSON(&p))
		assert.GreaterOrEqual(t, p.Bedrooms, 1)
		assert.LessOrEqual(t, p.Bedrooms, 5)
	})

	t.Run("UpdateProperty - missing id", func(t *testing.T) {
		resp, err := admin.PATCH("/api/properties/9999", map[string]interface{}{"name": "x"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Property not found"}`, string(resp.Body))
	})

	t.Run("Blogs - newest first with author", func(t *testing.T) {
		for _, title := range []string{"First", "Second"} {
			resp, err := agent.POST("/api/blogs", map[string]interface{}{"title": title, "content": "Content of " + title, "published": true})
			require.NoError(t, err)
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
		}

		resp, err := public.GET("/api/blogs")
		require.NoError(t, err)
		var blogs []blog.Blog
		require.NoError(t, resp.DecodeJSON(&blogs))
		require.Len(t, blogs, 2)
		assert.Equal(t, "Second", blogs[0].Title)
		require.NotNil(t, blogs[0].Author)
		assert.Equal(t, tc.Agent.ID, blogs[0].Author.ID)
	})

	t.Run("Tickets - status and comments", func(t *testing.T) {
		tenant := NewHTTPClient(tc.Router, tc.TenantToken)
		resp, err := tenant.POST("/api/tickets", map[string]interface{}{"subject": "Boiler", "message": "No hot water", "priority": "high"})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
		var tk ticket.Ticket
		require.NoError(t, resp.DecodeJSON(&tk))

		resp, err = agent.PATCH(fmt.Sprintf("/api/tickets/%d/status", tk.ID), map[string]interface{}{"status": "in_progress"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = agent.POST(fmt.Sprintf("/api/tickets/%d/comments", tk.ID), map[string]interface{}{"comment": "Engineer on the way"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = tenant.GET(fmt.Sprintf("/api/tickets/%d", tk.ID))
		require.NoError(t, err)
		require.NoError(t, resp.DecodeJSON(&tk))
		assert.Equal(t, ticket.StatusInProgress, tk.Status)
		assert.Len(t, tk.Comments, 1)
	})

	t.Run("DeleteProperty - admin only", func(t *testing.T) {
		resp, err := landlord.DELETE(fmt.Sprintf("/api/properties/%d", propertyID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, err = admin.DELETE(fmt.Sprintf("/api/properties/%d", propertyID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, err = public.GET(fmt.Sprintf("/api/properties/%d", propertyID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("AuditLogs - writes were recorded", func(t *testing.T) {
		resp, err := admin.GET("/api/admin/audit-logs?resource_type=property")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var logs []map[string]interface{}
		require.NoError(t, resp.DecodeJSON(&logs))
		assert.NotEmpty(t, logs)
	})

	t.Run("Uploads - disabled without object store", func(t *testing.T) {
		resp, err := agent.POSTFile("/api/uploads", "file", "a.png", []byte("\x89PNG\r\n\x1a\n"), map[string]string{"folder": "properties"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Users - unique violation keeps the constraint name", func(t *testing.T) {
		dup := &user.User{AuthID: "it-dup", Name: "Dup", Email: tc.Tenant.Email, Role: user.RoleTenant}
		err := tc.Repos.User.CreateUser(context.Background(), dup)

		var cerr *apperrors.ConstraintError
		require.True(t, errors.As(err, &cerr), "got %v", err)
		assert.Equal(t, apperrors.ConstraintUnique, cerr.Kind)
		assert.Equal(t, "idx_users_email", cerr.Constraint)
	})

	t.Run("Register - profile email clash answers 409", func(t *testing.T) {
		// The seeded tenant has a profile but no identity, so only the
		// users index can reject this sign-up.
		resp, err := public.POST("/api/auth/register", map[string]interface{}{
			"name": "Late", "email": tc.Tenant.Email, "password": "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.JSONEq(t, `{"error":"email already registered"}`, string(resp.Body))
	})
}
