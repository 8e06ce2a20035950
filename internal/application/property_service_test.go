package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPropertyServiceMocks(t *testing.T) (*PropertyService, serviceMocks) {
	repos, m := setupMockRepos(t)
	return NewPropertyService(repos, NewAuditService(repos, zap.NewNop())), m
}

func validCreateInput() property.CreatePropertyInput {
	return property.CreatePropertyInput{
		Name:        "Flat A",
		Description: "Two bed flat",
		Address:     "1 High St",
		City:        "London",
		Postcode:    "E1 1AA",
		Bedrooms:    ptr(2),
		Bathrooms:   ptr(1),
		Size:        ptr(70),
	}
}

func TestCreateProperty_DefaultsAndLandlordOwnership(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)

	m.property.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *property.Property) error {
			p.ID = 11
			return nil
		})

	p, err := svc.CreateProperty(context.Background(), session(4, user.RoleLandlord), validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, uint(11), p.ID)
	assert.Equal(t, property.StatusForRent, p.Status)
	assert.Equal(t, property.TypeApartment, p.Type)
	assert.Equal(t, property.DefaultCountry, p.Country)
	require.NotNil(t, p.LandlordID)
	assert.Equal(t, uint(4), *p.LandlordID)
	assert.Nil(t, p.AgentID)
}

func TestCreateProperty_AgentDefaultsToManager(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	m.property.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).Return(nil)

	p, err := svc.CreateProperty(context.Background(), session(6, user.RoleAgent), validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, p.AgentID)
	assert.Equal(t, uint(6), *p.AgentID)
}

func TestCreateProperty_TenantForbidden(t *testing.T) {
	svc, _ := setupPropertyServiceMocks(t)

	_, err := svc.CreateProperty(context.Background(), session(2, user.RoleTenant), validCreateInput())
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))
}

func TestCreateProperty_MissingFieldsListed(t *testing.T) {
	svc, _ := setupPropertyServiceMocks(t)

	_, err := svc.CreateProperty(context.Background(), session(1, user.RoleAdmin), property.CreatePropertyInput{Name: "x"})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]bool{}
	for _, is := range verr.Issues {
		fields[is.Field] = true
	}
	for _, f := range []string{"description", "address", "city", "postcode", "bedrooms", "bathrooms", "size"} {
		assert.True(t, fields[f], "expected issue for %s", f)
	}
}

func TestCreateProperty_PricingRule(t *testing.T) {
	tests := []struct {
		name    string
		status  *property.Status
		rent    *float64
		price   *float64
		field   string
		wantErr bool
	}{
		{name: "for sale without price", status: ptr(property.StatusForSale), field: "price", wantErr: true},
		{name: "for sale with price", status: ptr(property.StatusForSale), price: ptr(250000.0)},
		{name: "explicit for rent without rent", status: ptr(property.StatusForRent), field: "rent", wantErr: true},
		{name: "default status with price only", price: ptr(100000.0), field: "rent", wantErr: true},
		{name: "default status with rent", rent: ptr(1200.0)},
		{name: "sold needs price", status: ptr(property.StatusSold), rent: ptr(900.0), field: "price", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupPropertyServiceMocks(t)
			if !tt.wantErr {
				m.property.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).Return(nil)
			}

			in := validCreateInput()
			in.Status, in.Rent, in.Price = tt.status, tt.rent, tt.price
			_, err := svc.CreateProperty(context.Background(), session(1, user.RoleAdmin), in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Issues[0].Field)
		})
	}
}

func TestUpdateProperty_NotFoundBeforeAnyWrite(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	m.property.EXPECT().GetProperty(gomock.Any(), uint(9999)).Return(nil, nil)

	_, err := svc.UpdateProperty(context.Background(), session(1, user.RoleAdmin), 9999, property.UpdatePropertyInput{Name: ptr("x")})
	require.Error(t, err)
	assert.Equal(t, "Property not found", err.Error())
}

func TestUpdateProperty_MergedPricingRule(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	landlord := uint(4)
	existing := &property.Property{ID: 3, Status: property.StatusForRent, Rent: ptr(900.0), LandlordID: &landlord}
	m.property.EXPECT().GetProperty(gomock.Any(), uint(3)).Return(existing, nil)

	_, err := svc.UpdateProperty(context.Background(), session(4, user.RoleLandlord), 3,
		property.UpdatePropertyInput{Status: ptr(property.StatusForSale)})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "price", verr.Issues[0].Field)
}

func TestUpdateProperty_OwnerUpdates(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	landlord := uint(4)
	existing := &property.Property{ID: 3, Name: "Old", Status: property.StatusForRent, Rent: ptr(900.0), LandlordID: &landlord}
	m.property.EXPECT().GetProperty(gomock.Any(), uint(3)).Return(existing, nil)
	m.property.EXPECT().UpdateProperty(gomock.Any(), uint(3), map[string]any{"status": property.StatusForSale, "price": 300000.0}).
		Return(&property.Property{ID: 3, Name: "Old", Status: property.StatusForSale, Price: ptr(300000.0), Rent: ptr(900.0), LandlordID: &landlord}, nil)

	got, err := svc.UpdateProperty(context.Background(), session(4, user.RoleLandlord), 3,
		property.UpdatePropertyInput{Status: ptr(property.StatusForSale), Price: ptr(300000.0)})
	require.NoError(t, err)
	assert.Equal(t, property.StatusForSale, got.Status)
	assert.Equal(t, "Old", got.Name)
}

func TestUpdateProperty_NonOwnerForbidden(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	other := uint(8)
	m.property.EXPECT().GetProperty(gomock.Any(), uint(3)).Return(&property.Property{ID: 3, LandlordID: &other}, nil)

	_, err := svc.UpdateProperty(context.Background(), session(4, user.RoleLandlord), 3, property.UpdatePropertyInput{Name: ptr("x")})
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))
}

func TestUpdateProperty_EmptyPatchReturnsCurrent(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	existing := &property.Property{ID: 3, Name: "Same"}
	m.property.EXPECT().GetProperty(gomock.Any(), uint(3)).Return(existing, nil)

	got, err := svc.UpdateProperty(context.Background(), session(1, user.RoleAdmin), 3, property.UpdatePropertyInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestDeleteProperty(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)

	err := svc.DeleteProperty(context.Background(), session(4, user.RoleLandlord), 3)
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))

	m.property.EXPECT().GetProperty(gomock.Any(), uint(3)).Return(&property.Property{ID: 3}, nil)
	m.property.EXPECT().DeleteProperty(gomock.Any(), uint(3)).Return(nil)
	assert.NoError(t, svc.DeleteProperty(context.Background(), session(1, user.RoleAdmin), 3))

	m.property.EXPECT().GetProperty(gomock.Any(), uint(4)).Return(nil, nil)
	assert.True(t, apperrors.IsNotFound(svc.DeleteProperty(context.Background(), session(1, user.RoleAdmin), 4)))
}

func TestFetchProperties_PassesFilter(t *testing.T) {
	svc, m := setupPropertyServiceMocks(t)
	filter := repository.PropertyFilter{OwnerID: ptr(uint(4)), Role: ptr(user.RoleLandlord)}
	m.property.EXPECT().GetProperties(gomock.Any(), filter).Return([]property.Property{{ID: 1}}, nil)

	props, err := svc.FetchProperties(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, props, 1)
}
