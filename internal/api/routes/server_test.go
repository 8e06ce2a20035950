package routes_test

import (
	"context"
	"net/http"
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
	"github.com/linskybing/property-portal/pkg/ratelimit"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router   *gin.Engine
	repos    *repository.Repos
	services *application.Services
	tokens   *auth.TokenManager
}

type serverOption func(*routes.Options)

func withLimiter(l ratelimit.Limiter) serverOption {
	return func(o *routes.Options) { o.Limiter = l }
}

func withTrustedProxies(proxies ...string) serverOption {
	return func(o *routes.Options) { o.TrustedProxies = proxies }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, _ := testutils.NewRepos(t)
	tokens := auth.NewTokenManager("test-secret", "property-portal-test", time.Hour)
	svc := application.New(repos, application.Deps{
		Tokens:     tokens,
		Identities: application.NewLocalIdentityProvider(bcrypt.MinCost),
	})
	h := handlers.New(svc, handlers.Options{
		Probes: map[string]handlers.Pinger{"database": handlers.PingFunc(repos.Ping)},
	})

	o := routes.Options{Handlers: h, Verifier: svc.Auth}
	for _, opt := range opts {
		opt(&o)
	}
	return &testServer{router: routes.NewRouter(o), repos: repos, services: svc, tokens: tokens}
}

// register signs up through the API and returns the new user and token.
func (s *testServer) register(t *testing.T, email string, role user.Role) (*user.User, string) {
	t.Helper()
	w := testutils.Do(t, s.router, testutils.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/register",
		Body:   map[string]any{"name": "Test " + string(role), "email": email, "password": "secret123", "role": role},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := testutils.DecodeJSON[handlers.AuthResponse](t, w)
	require.NotEmpty(t, res.Token)
	return res.User, res.Token
}

// seed inserts a profile directly and issues its token. Staff roles cannot
// self-register, so agents and admins are created this way.
func (s *testServer) seed(t *testing.T, email string, role user.Role) (*user.User, string) {
	t.Helper()
	u := &user.User{AuthID: "seed-" + email, Name: "Test " + string(role), Email: email, Role: role}
	require.NoError(t, s.repos.User.CreateUser(context.Background(), u))
	token, _, err := s.tokens.Issue(u)
	require.NoError(t, err)
	return u, token
}

func (s *testServer) admin(t *testing.T) (*user.User, string) {
	t.Helper()
	return s.seed(t, "admin@example.com", user.RoleAdmin)
}

func (s *testServer) agent(t *testing.T) (*user.User, string) {
	t.Helper()
	return s.seed(t, "agent@example.com", user.RoleAgent)
}
