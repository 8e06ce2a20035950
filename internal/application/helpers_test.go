package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/realtime"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/internal/repository/mock"
	"github.com/linskybing/property-portal/internal/testutils"
	"github.com/linskybing/property-portal/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T { return &v }

func session(id uint, role user.Role) *auth.Session {
	return &auth.Session{UserID: id, Role: role, TokenID: "tok", ExpiresAt: time.Now().Add(time.Hour)}
}

type serviceMocks struct {
	user     *mock.MockUserRepo
	property *mock.MockPropertyRepo
	blog     *mock.MockBlogRepo
	ticket   *mock.MockTicketRepo
	audit    *mock.MockAuditRepo
}

// setupMockRepos wires every mocked repository and tolerates any number of
// audit writes.
func setupMockRepos(t *testing.T) (*repository.Repos, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := serviceMocks{
		user:     mock.NewMockUserRepo(ctrl),
		property: mock.NewMockPropertyRepo(ctrl),
		blog:     mock.NewMockBlogRepo(ctrl),
		ticket:   mock.NewMockTicketRepo(ctrl),
		audit:    mock.NewMockAuditRepo(ctrl),
	}
	m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repos := &repository.Repos{
		User:     m.user,
		Property: m.property,
		Blog:     m.blog,
		Ticket:   m.ticket,
		Audit:    m.audit,
	}
	return repos, m
}

// setupSQLiteServices builds the full service set over an in-memory database.
func setupSQLiteServices(t *testing.T) (*Services, *repository.Repos) {
	repos, _ := testutils.NewRepos(t)
	svc := New(repos, Deps{
		Tokens:         auth.NewTokenManager("test-secret", "test", time.Hour),
		Revoker:        auth.NewMemoryRevoker(),
		Identities:     NewLocalIdentityProvider(bcrypt.MinCost),
		Hub:            realtime.NewHub(),
		UploadMaxBytes: 1 << 20,
		Logger:         zap.NewNop(),
	})
	return svc, repos
}
