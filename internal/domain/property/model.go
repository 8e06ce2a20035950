package property

import (
	"time"

	"github.com/linskybing/property-portal/internal/domain/user"
)

type Status string

const (
	StatusForRent Status = "For Rent"
	StatusForSale Status = "For Sale"
	StatusSold    Status = "Sold"
	StatusRented  Status = "Rented"
)

var Statuses = []Status{StatusForRent, StatusForSale, StatusSold, StatusRented}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// RentBased reports whether the listing is priced by monthly rent rather
// than by sale price.
func (s Status) RentBased() bool {
	return s == StatusForRent || s == StatusRented
}

type Type string

const (
	TypeApartment  Type = "Apartment"
	TypeHouse      Type = "House"
	TypeVilla      Type = "Villa"
	TypeStudio     Type = "Studio"
	TypePenthouse  Type = "Penthouse"
	TypeTownhouse  Type = "Townhouse"
	TypeCottage    Type = "Cottage"
	TypeBungalow   Type = "Bungalow"
	TypeCommercial Type = "Commercial"
)

var Types = []Type{
	TypeApartment, TypeHouse, TypeVilla, TypeStudio, TypePenthouse,
	TypeTownhouse, TypeCottage, TypeBungalow, TypeCommercial,
}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

const DefaultCountry = "United Kingdom"

type Property struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	City        string    `gorm:"size:120;not null;index" json:"city"`
	Postcode    string    `gorm:"size:20;not null" json:"postcode"`
	Country     string    `gorm:"size:120;not null;default:'United Kingdom'" json:"country"`
	Bedrooms    int       `gorm:"not null" json:"bedrooms"`
	Bathrooms   int       `gorm:"not null" json:"bathrooms"`
	Size        int       `gorm:"not null" json:"size"`
	Rent        *float64  `gorm:"type:numeric(12,2)" json:"rent"`
	Price       *float64  `gorm:"type:numeric(14,2)" json:"price"`
	Status      Status    `gorm:"type:property_status;not null;default:'For Rent'" json:"status"`
	Type        Type      `gorm:"type:property_type;not null;default:'Apartment'" json:"type"`
	Featured    bool      `gorm:"not null;default:false" json:"featured"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
	LandlordID  *uint     `gorm:"column:landlord_id;index" json:"landlord_id"`
	AgentID     *uint     `gorm:"column:agent_id;index" json:"agent_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Landlord *user.User `gorm:"foreignKey:LandlordID;constraint:OnDelete:SET NULL" json:"-"`
	Agent    *user.User `gorm:"foreignKey:AgentID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}
