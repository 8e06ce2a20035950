package handlers

import (
	"github.com/linskybing/property-portal/internal/application"
	"go.uber.org/zap"
)

type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Blog     *BlogHandler
	Ticket   *TicketHandler
	Contact  *ContactHandler
	Upload   *UploadHandler
	Audit    *AuditHandler
}

type Options struct {
	Logger     *zap.Logger
	Production bool
	// Probes are reported by /api/health; nil entries are skipped.
	Probes map[string]Pinger
}

func New(svc *application.Services, opts Options) *Handlers {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	b := base{logger: opts.Logger, production: opts.Production}
	return &Handlers{
		Health:   NewHealthHandler(b, opts.Probes),
		Auth:     NewAuthHandler(b, svc.Auth),
		User:     NewUserHandler(b, svc.User),
		Property: NewPropertyHandler(b, svc.Property),
		Blog:     NewBlogHandler(b, svc.Blog),
		Ticket:   NewTicketHandler(b, svc.Ticket),
		Contact:  NewContactHandler(b, svc.Contact),
		Upload:   NewUploadHandler(b, svc.Upload),
		Audit:    NewAuditHandler(b, svc.Audit),
	}
}
