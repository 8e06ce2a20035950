package application

import (
	"context"
	"encoding/json"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
	"go.uber.org/zap"
)

type AuditService struct {
	Repos  *repository.Repos
	logger *zap.Logger
}

func NewAuditService(repos *repository.Repos, logger *zap.Logger) *AuditService {
	return &AuditService{
		Repos:  repos,
		logger: logger,
	}
}

// Record stores one audit entry. Failures are logged and swallowed so the
// primary write is never reported as failed.
func (s *AuditService) Record(ctx context.Context, action, resourceType, resourceID string, before, after any, description string) {
	actor := audit.ActorFrom(ctx)
	entry := &audit.AuditLog{
		UserID:       actor.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      s.snapshot(before),
		NewData:      s.snapshot(after),
		IPAddress:    actor.IPAddress,
		UserAgent:    actor.UserAgent,
		Description:  description,
	}

	if err := s.Repos.Audit.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Error("failed to record audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err))
	}
}

func (s *AuditService) snapshot(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("audit snapshot marshal failed", zap.Error(err))
		return nil
	}
	return data
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, sess *auth.Session, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if !sess.IsAdmin() {
		return nil, apperrors.Forbidden("only admins may read audit logs")
	}
	return s.Repos.Audit.GetAuditLogs(ctx, params)
}

func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(ctx, days)
}
