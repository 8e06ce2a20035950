package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity holds the credentials behind a user profile. Its ID is the
// profile's auth_id.
type Identity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:idx_auth_identities_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Identity) TableName() string {
	return "auth_identities"
}

func (i *Identity) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
