//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/handlers"
	"github.com/linskybing/property-portal/internal/api/routes"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/internal/testutils"
	"github.com/linskybing/property-portal/pkg/auth"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestContext holds the router and the accounts shared by one suite run.
type TestContext struct {
	Router        *gin.Engine
	DB            *gorm.DB
	Repos         *repository.Repos
	AdminToken    string
	AgentToken    string
	LandlordToken string
	TenantToken   string
	Admin         *user.User
	Agent         *user.User
	Landlord      *user.User
	Tenant        *user.User
}

func setupTestContext(t *testing.T) *TestContext {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(gdb)
	tokens := auth.NewTokenManager("integration-secret", "property-portal", time.Hour)
	svc := application.New(repos, application.Deps{
		Tokens:     tokens,
		Identities: application.NewLocalIdentityProvider(bcrypt.MinCost),
	})
	router := routes.NewRouter(routes.Options{
		Handlers: handlers.New(svc, handlers.Options{
			Probes: map[string]handlers.Pinger{"database": handlers.PingFunc(repos.Ping)},
		}),
		Verifier: svc.Auth,
	})

	tc := &TestContext{Router: router, DB: gdb, Repos: repos}

	ctx := context.Background()
	accounts := []struct {
		dst   **user.User
		token *string
		u     user.User
	}{
		{&tc.Admin, &tc.AdminToken, user.User{AuthID: "it-admin", Name: "Admin", Email: "admin@it.test", Role: user.RoleAdmin}},
		{&tc.Agent, &tc.AgentToken, user.User{AuthID: "it-agent", Name: "Agent", Email: "agent@it.test", Role: user.RoleAgent}},
		{&tc.Landlord, &tc.LandlordToken, user.User{AuthID: "it-landlord", Name: "Landlord", Email: "landlord@it.test", Role: user.RoleLandlord}},
		{&tc.Tenant, &tc.TenantToken, user.User{AuthID: "it-tenant", Name: "Tenant", Email: "tenant@it.test", Role: user.RoleTenant}},
	}
	for _, a := range accounts {
		u := a.u
		require.NoError(t, repos.User.CreateUser(ctx, &u))
		token, _, err := tokens.Issue(&u)
		require.NoError(t, err)
		*a.dst = &u
		*a.token = token
	}
	return tc
}
