package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupUserServiceMocks(t *testing.T) (*UserService, serviceMocks) {
	repos, m := setupMockRepos(t)
	return NewUserService(repos, NewAuditService(repos, zap.NewNop())), m
}

func TestGetUser_NotFound(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	m.user.EXPECT().GetUser(gomock.Any(), uint(5)).Return(nil, nil)

	_, err := svc.GetUser(context.Background(), 5)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestGetUser_StorageErrorPassesThrough(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	storeErr := &apperrors.StorageError{Op: "get user", Err: errors.New("conn refused")}
	m.user.EXPECT().GetUser(gomock.Any(), uint(5)).Return(nil, storeErr)

	_, err := svc.GetUser(context.Background(), 5)
	assert.Equal(t, storeErr, err)
}

func TestUpdateUser_Self(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	current := &user.User{ID: 3, Name: "Old", Email: "a@example.com", Role: user.RoleTenant}

	m.user.EXPECT().GetUser(gomock.Any(), uint(3)).Return(current, nil)
	m.user.EXPECT().UpdateUser(gomock.Any(), uint(3), map[string]any{"name": "New"}).
		Return(&user.User{ID: 3, Name: "New", Email: "a@example.com", Role: user.RoleTenant}, nil)

	got, err := svc.UpdateUser(context.Background(), session(3, user.RoleTenant), 3, user.UpdateUserInput{Name: ptr("New")})
	assert.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}

func TestUpdateUser_OtherUserForbidden(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateUser(context.Background(), session(3, user.RoleLandlord), 4, user.UpdateUserInput{Name: ptr("x")})
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))
}

func TestUpdateUser_RoleChangeNeedsAdmin(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateUser(context.Background(), session(3, user.RoleTenant), 3, user.UpdateUserInput{Role: ptr(user.RoleAdmin)})
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))
}

func TestUpdateUser_AdminChangesRole(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	m.user.EXPECT().GetUser(gomock.Any(), uint(9)).Return(&user.User{ID: 9, Role: user.RoleTenant}, nil)
	m.user.EXPECT().UpdateUser(gomock.Any(), uint(9), map[string]any{"role": user.RoleAgent}).
		Return(&user.User{ID: 9, Role: user.RoleAgent}, nil)

	got, err := svc.UpdateUser(context.Background(), session(1, user.RoleAdmin), 9, user.UpdateUserInput{Role: ptr(user.RoleAgent)})
	assert.NoError(t, err)
	assert.Equal(t, user.RoleAgent, got.Role)
}

func TestUpdateUser_InvalidAvatar(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateUser(context.Background(), session(3, user.RoleTenant), 3, user.UpdateUserInput{AvatarURL: ptr("not a url")})
	var verr *apperrors.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "avatar_url", verr.Issues[0].Field)
}

func TestListUsers_AdminOnly(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	_, err := svc.ListUsers(context.Background(), session(2, user.RoleAgent), nil)
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))

	m.user.EXPECT().ListUsers(gomock.Any(), ptr(user.RoleAgent)).Return([]user.User{{ID: 2}}, nil)
	users, err := svc.ListUsers(context.Background(), session(1, user.RoleAdmin), ptr(user.RoleAgent))
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}
