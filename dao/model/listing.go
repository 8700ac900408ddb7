package model

import (
	"time"

	"gorm.io/datatypes"
)

type ListingType string

const (
	ListingTypeSale ListingType = "vendita"
	ListingTypeRent ListingType = "affitto"
)

func (t ListingType) Valid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// Listing is a real-estate record (sale or rental). Bullets and Images are
// ordered sequences persisted as JSON text columns.
type Listing struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	ListingType ListingType                 `gorm:"type:text;not null;index" json:"listingType"`
	Place       string                      `gorm:"type:text;not null" json:"place"`
	Title       string                      `gorm:"type:text;not null" json:"title"`
	Rooms       string                      `gorm:"type:text;not null" json:"rooms"`
	Floor       string                      `gorm:"type:text;not null" json:"floor"`
	PriceCHF    int                         `gorm:"not null" json:"priceChf"`
	PriceLabel  string                      `gorm:"type:text;default:''" json:"priceLabel"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Bullets     datatypes.JSONSlice[string] `gorm:"type:text" json:"bullets"`
	Images      datatypes.JSONSlice[string] `gorm:"type:text" json:"images"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

func (Listing) TableName() string {
	return "real_estate"
}
