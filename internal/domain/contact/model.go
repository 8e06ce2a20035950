package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     *string   `gorm:"size:40" json:"phone"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Message) TableName() string {
	return "contact_messages"
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type CreateMessageInput struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=40"`
	Subject string  `json:"subject" validate:"required,max=255"`
	Message string  `json:"message" validate:"required"`
}

func (in CreateMessageInput) Normalize() *Message {
	return &Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   in.Phone,
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
}
