package application

import (
	"context"
	"errors"
	"testing"

	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, svc *Services, email string, role user.Role) *user.User {
	t.Helper()
	u, _, err := svc.Auth.Register(context.Background(), user.RegisterInput{Name: email, Email: email, Password: "secret1"})
	require.NoError(t, err)
	if role != user.RoleTenant {
		u, err = svc.User.UpdateUser(context.Background(), session(0, user.RoleAdmin), u.ID, user.UpdateUserInput{Role: ptr(role)})
		require.NoError(t, err)
	}
	return u
}

func TestTicketFlow(t *testing.T) {
	svc, _ := setupSQLiteServices(t)
	ctx := context.Background()
	tenant := registerUser(t, svc, "tenant@example.com", user.RoleTenant)
	agent := registerUser(t, svc, "agent@example.com", user.RoleAgent)
	stranger := registerUser(t, svc, "stranger@example.com", user.RoleTenant)

	tenantSess := session(tenant.ID, user.RoleTenant)
	agentSess := session(agent.ID, user.RoleAgent)

	tk, err := svc.Ticket.CreateTicket(ctx, tenantSess, ticket.CreateTicketInput{Subject: "Boiler", Message: "No hot water", Priority: ptr(ticket.PriorityUrgent)})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusOpen, tk.Status)
	assert.Equal(t, ticket.PriorityUrgent, tk.Priority)

	_, err = svc.Ticket.GetTicket(ctx, session(stranger.ID, user.RoleTenant), tk.ID)
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))

	sub, err := svc.Ticket.Subscribe(ctx, tenantSess, tk.ID)
	require.NoError(t, err)
	defer svc.Ticket.Unsubscribe(sub)

	c, err := svc.Ticket.AddComment(ctx, agentSess, tk.ID, ticket.CreateCommentInput{Comment: "On my way"})
	require.NoError(t, err)
	assert.Equal(t, agent.ID, c.UserID)

	ev := <-sub.C
	assert.Equal(t, ticket.EventComment, ev.Type)
	assert.Equal(t, "On my way", ev.Comment.Comment)

	// Any status may follow any other.
	for _, st := range []ticket.Status{ticket.StatusClosed, ticket.StatusOpen, ticket.StatusInProgress} {
		updated, err := svc.Ticket.UpdateStatus(ctx, agentSess, tk.ID, ticket.UpdateStatusInput{Status: st})
		require.NoError(t, err)
		assert.Equal(t, st, updated.Status)
		ev := <-sub.C
		assert.Equal(t, ticket.EventStatus, ev.Type)
		assert.Equal(t, st, ev.Status)
	}

	_, err = svc.Ticket.UpdateStatus(ctx, agentSess, tk.ID, ticket.UpdateStatusInput{Status: "escalated"})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "status", verr.Issues[0].Field)

	got, err := svc.Ticket.GetTicket(ctx, tenantSess, tk.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)

	mine, err := svc.Ticket.ListTickets(ctx, session(stranger.ID, user.RoleTenant))
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := svc.Ticket.ListTickets(ctx, agentSess)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.Ticket.GetTicket(ctx, agentSess, 999)
	assert.True(t, apperrors.IsNotFound(err))
}
