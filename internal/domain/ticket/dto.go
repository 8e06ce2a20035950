package ticket

import "strings"

type CreateTicketInput struct {
	Subject  string    `json:"subject" validate:"required,max=255"`
	Message  string    `json:"message" validate:"required"`
	Category *string   `json:"category" validate:"omitempty,max=64"`
	Priority *Priority `json:"priority" validate:"omitempty,ticket_priority"`
}

type UpdateStatusInput struct {
	Status Status `json:"status" validate:"required,ticket_status"`
}

type CreateCommentInput struct {
	Comment string `json:"comment" validate:"required"`
}

func (in CreateTicketInput) Normalize(userID uint) *Ticket {
	t := &Ticket{
		UserID:   userID,
		Subject:  strings.TrimSpace(in.Subject),
		Message:  in.Message,
		Category: DefaultCategory,
		Priority: PriorityMedium,
		Status:   StatusOpen,
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) != "" {
		t.Category = strings.TrimSpace(*in.Category)
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	return t
}

// EventType names what happened on a ticket stream.
type EventType string

const (
	EventComment EventType = "comment"
	EventStatus  EventType = "status"
)

// Event is pushed to every subscriber of a ticket.
type Event struct {
	Type     EventType `json:"type"`
	TicketID uint      `json:"ticket_id"`
	Status   Status    `json:"status,omitempty"`
	Comment  *Comment  `json:"comment,omitempty"`
}
