package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/blog"
	"github.com/linskybing/property-portal/internal/domain/contact"
	"github.com/linskybing/property-portal/internal/domain/identity"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/linskybing/property-portal/internal/domain/user"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table managed by Migrate, in dependency order.
var Models = []any{
	&identity.Identity{},
	&user.User{},
	&property.Property{},
	&blog.Blog{},
	&ticket.Ticket{},
	&ticket.Comment{},
	&contact.Message{},
	&audit.AuditLog{},
}

// Open connects to Postgres and sizes the pool. Driver errors are left
// untranslated so the repository layer sees constraint names.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("database connected")
	return gdb, nil
}

func enumDDL(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return fmt.Sprintf(`DO $$ BEGIN
	CREATE TYPE %s AS ENUM (%s);
EXCEPTION
	WHEN duplicate_object THEN null;
END $$;`, name, strings.Join(quoted, ", "))
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Migrate creates the enum types (Postgres only) and migrates every table.
func Migrate(gdb *gorm.DB) error {
	if gdb.Dialector.Name() == "postgres" {
		enums := []string{
			enumDDL("user_role", stringsOf(user.Roles)),
			enumDDL("property_status", stringsOf(property.Statuses)),
			enumDDL("property_type", stringsOf(property.Types)),
			enumDDL("ticket_status", stringsOf(ticket.Statuses)),
			enumDDL("ticket_priority", stringsOf(ticket.Priorities)),
		}
		for _, ddl := range enums {
			if err := gdb.Exec(ddl).Error; err != nil {
				return fmt.Errorf("create enum: %w", err)
			}
		}
	}

	if err := gdb.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
