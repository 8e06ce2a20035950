package application

import (
	"github.com/linskybing/property-portal/internal/realtime"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/auth"
	"github.com/linskybing/property-portal/pkg/objectstore"
	"go.uber.org/zap"
)

// Deps are the collaborators that do not live in the database.
type Deps struct {
	Tokens         *auth.TokenManager
	Revoker        auth.Revoker
	Identities     IdentityProvider
	Store          objectstore.Store
	Hub            *realtime.Hub
	UploadMaxBytes int64
	Logger         *zap.Logger
}

type Services struct {
	Audit    *AuditService
	Auth     *AuthService
	User     *UserService
	Property *PropertyService
	Blog     *BlogService
	Ticket   *TicketService
	Contact  *ContactService
	Upload   *UploadService
}

func New(repos *repository.Repos, deps Deps) *Services {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Revoker == nil {
		deps.Revoker = auth.NewMemoryRevoker()
	}
	if deps.Identities == nil {
		deps.Identities = NewLocalIdentityProvider(0)
	}
	if deps.Hub == nil {
		deps.Hub = realtime.NewHub()
	}

	auditSvc := NewAuditService(repos, deps.Logger)
	return &Services{
		Audit:    auditSvc,
		Auth:     NewAuthService(repos, deps.Identities, deps.Tokens, deps.Revoker, auditSvc),
		User:     NewUserService(repos, auditSvc),
		Property: NewPropertyService(repos, auditSvc),
		Blog:     NewBlogService(repos, auditSvc),
		Ticket:   NewTicketService(repos, deps.Hub, auditSvc),
		Contact:  NewContactService(repos),
		Upload:   NewUploadService(deps.Store, deps.UploadMaxBytes, auditSvc),
	}
}
