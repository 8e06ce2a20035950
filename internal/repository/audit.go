package repository

import (
	"context"
	"time"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	UserID       *uint
	ResourceType *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(ctx context.Context, params AuditQueryParams) ([]audit.AuditLog, error)
	CreateAuditLog(ctx context.Context, log *audit.AuditLog) error
	DeleteOldAuditLogs(ctx context.Context, retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) DeleteOldAuditLogs(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	if res.Error != nil {
		return 0, translate("delete old audit logs", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *DBAuditRepo) GetAuditLogs(ctx context.Context, params AuditQueryParams) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.db.WithContext(ctx).Model(&audit.AuditLog{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.ResourceType != nil {
		query = query.Where("resource_type = ?", *params.ResourceType)
	}
	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("created_at <= ?", *params.EndTime)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	if err := query.Find(&logs).Error; err != nil {
		return nil, translate("list audit logs", err)
	}
	return logs, nil
}

func (r *DBAuditRepo) CreateAuditLog(ctx context.Context, log *audit.AuditLog) error {
	return translate("create audit log", r.db.WithContext(ctx).Create(log).Error)
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
