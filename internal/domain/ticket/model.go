package ticket

import (
	"time"

	"github.com/linskybing/property-portal/internal/domain/user"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

const DefaultCategory = "general"

type Ticket struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	Subject   string     `gorm:"size:255;not null" json:"subject"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Category  string     `gorm:"size:64;not null;default:'general'" json:"category"`
	Priority  Priority   `gorm:"type:ticket_priority;not null;default:'medium'" json:"priority"`
	Status    Status     `gorm:"type:ticket_status;not null;default:'open';index" json:"status"`
	Comments  []Comment  `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	User      *user.User `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ticket) TableName() string {
	return "support_tickets"
}

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID  uint      `gorm:"column:ticket_id;not null;index" json:"ticket_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *user.User `gorm:"foreignKey:UserID" json:"-"`
}

func (Comment) TableName() string {
	return "support_ticket_comments"
}
