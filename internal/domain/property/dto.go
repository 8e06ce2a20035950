package property

import (
	"fmt"

	"github.com/linskybing/property-portal/pkg/apperrors"
)

type CreatePropertyInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Address     string   `json:"address" validate:"required,max=255"`
	City        string   `json:"city" validate:"required,max=120"`
	Postcode    string   `json:"postcode" validate:"required,max=20"`
	Country     *string  `json:"country" validate:"omitempty,max=120"`
	Bedrooms    *int     `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"required,gte=0"`
	Size        *int     `json:"size" validate:"required,gt=0"`
	Rent        *float64 `json:"rent" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Status      *Status  `json:"status" validate:"omitempty,property_status"`
	Type        *Type    `json:"type" validate:"omitempty,property_type"`
	Featured    *bool    `json:"featured"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	LandlordID  *uint    `json:"landlord_id" validate:"omitempty,gt=0"`
	AgentID     *uint    `json:"agent_id" validate:"omitempty,gt=0"`
}

// UpdatePropertyInput is a partial update; nil fields are left untouched.
type UpdatePropertyInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Address     *string  `json:"address" validate:"omitempty,min=1,max=255"`
	City        *string  `json:"city" validate:"omitempty,min=1,max=120"`
	Postcode    *string  `json:"postcode" validate:"omitempty,min=1,max=20"`
	Country     *string  `json:"country" validate:"omitempty,min=1,max=120"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Size        *int     `json:"size" validate:"omitempty,gt=0"`
	Rent        *float64 `json:"rent" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Status      *Status  `json:"status" validate:"omitempty,property_status"`
	Type        *Type    `json:"type" validate:"omitempty,property_type"`
	Featured    *bool    `json:"featured"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	LandlordID  *uint    `json:"landlord_id" validate:"omitempty,gt=0"`
	AgentID     *uint    `json:"agent_id" validate:"omitempty,gt=0"`
}

// Normalize fills defaults and returns the row to insert.
func (in CreatePropertyInput) Normalize() *Property {
	p := &Property{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		Postcode:    in.Postcode,
		Country:     DefaultCountry,
		Rent:        in.Rent,
		Price:       in.Price,
		Status:      StatusForRent,
		Type:        TypeApartment,
		ImageURL:    in.ImageURL,
		LandlordID:  in.LandlordID,
		AgentID:     in.AgentID,
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.Bedrooms != nil {
		p.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = *in.Bathrooms
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p
}

// TouchesPricing reports whether the pricing rule has to be rechecked.
func (in CreatePropertyInput) TouchesPricing() bool {
	return in.Status != nil || in.Rent != nil || in.Price != nil
}

func (in UpdatePropertyInput) TouchesPricing() bool {
	return in.Status != nil || in.Rent != nil || in.Price != nil
}

// Apply returns a copy of p with the patch merged in.
func (in UpdatePropertyInput) Apply(p Property) Property {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Postcode != nil {
		p.Postcode = *in.Postcode
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.Bedrooms != nil {
		p.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = *in.Bathrooms
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Rent != nil {
		p.Rent = in.Rent
	}
	if in.Price != nil {
		p.Price = in.Price
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.LandlordID != nil {
		p.LandlordID = in.LandlordID
	}
	if in.AgentID != nil {
		p.AgentID = in.AgentID
	}
	return p
}

// Changes maps the set fields to column updates.
func (in UpdatePropertyInput) Changes() map[string]any {
	changes := map[string]any{}
	set := func(col string, ok bool, v any) {
		if ok {
			changes[col] = v
		}
	}
	set("name", in.Name != nil, deref(in.Name))
	set("description", in.Description != nil, deref(in.Description))
	set("address", in.Address != nil, deref(in.Address))
	set("city", in.City != nil, deref(in.City))
	set("postcode", in.Postcode != nil, deref(in.Postcode))
	set("country", in.Country != nil, deref(in.Country))
	set("bedrooms", in.Bedrooms != nil, deref(in.Bedrooms))
	set("bathrooms", in.Bathrooms != nil, deref(in.Bathrooms))
	set("size", in.Size != nil, deref(in.Size))
	set("rent", in.Rent != nil, deref(in.Rent))
	set("price", in.Price != nil, deref(in.Price))
	set("status", in.Status != nil, deref(in.Status))
	set("type", in.Type != nil, deref(in.Type))
	set("featured", in.Featured != nil, deref(in.Featured))
	set("image_url", in.ImageURL != nil, deref(in.ImageURL))
	set("landlord_id", in.LandlordID != nil, deref(in.LandlordID))
	set("agent_id", in.AgentID != nil, deref(in.AgentID))
	return changes
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// CheckPricing enforces that rent-based listings carry a rent and sale-based
// listings carry a price.
func CheckPricing(status Status, rent, price *float64) error {
	if status.RentBased() {
		if rent == nil || *rent <= 0 {
			return apperrors.Invalid("rent", "required_for_status",
				fmt.Sprintf("rent is required when status is %q", status))
		}
		return nil
	}
	if price == nil || *price <= 0 {
		return apperrors.Invalid("price", "required_for_status",
			fmt.Sprintf("price is required when status is %q", status))
	}
	return nil
}
