package user

import "strings"

// RegisterInput is the public sign-up payload. Only landlord and tenant
// accounts can be self-registered; staff roles are granted by an admin.
type RegisterInput struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Phone    *string `json:"phone" validate:"omitempty,max=40"`
	Role     *Role   `json:"role" validate:"omitempty,oneof=landlord tenant"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone     *string `json:"phone" validate:"omitempty,max=40"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	Role      *Role   `json:"role" validate:"omitempty,user_role"`
}

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Profile builds the row inserted for a freshly created identity.
func (in RegisterInput) Profile(authID string) *User {
	role := RoleTenant
	if in.Role != nil {
		role = *in.Role
	}
	return &User{
		AuthID: authID,
		Name:   strings.TrimSpace(in.Name),
		Email:  NormalizeEmail(in.Email),
		Phone:  in.Phone,
		Role:   role,
	}
}

// Changes maps the set fields to column updates.
func (in UpdateUserInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		changes["phone"] = *in.Phone
	}
	if in.AvatarURL != nil {
		changes["avatar_url"] = *in.AvatarURL
	}
	if in.Role != nil {
		changes["role"] = *in.Role
	}
	return changes
}
