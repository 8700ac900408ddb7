package dao

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fcurti/falegnameria-backend/dao/model"
)

// normalizeListing turns absent serialized sequences into empty ones so
// callers never see nil bullets or images.
func normalizeListing(listing *model.Listing) {
	if listing.Bullets == nil {
		listing.Bullets = datatypes.JSONSlice[string]{}
	}
	if listing.Images == nil {
		listing.Images = datatypes.JSONSlice[string]{}
	}
}

// ListListings returns all listings grouped by type (rentals and sales
// together), most recent first within each type.
func ListListings(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	err := GetDB().WithContext(ctx).Order("listing_type, created_at DESC, id DESC").Find(&listings).Error
	for i := range listings {
		normalizeListing(&listings[i])
	}
	return listings, err
}

// GetListing returns nil without an error when no row matches.
func GetListing(ctx context.Context, id uint) (*model.Listing, error) {
	var listing model.Listing
	err := GetDB().WithContext(ctx).First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	normalizeListing(&listing)
	return &listing, nil
}

// CreateListing inserts the listing and returns the assigned id.
func CreateListing(ctx context.Context, listing *model.Listing) (uint, error) {
	err := GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(listing).Error
	})
	if err != nil {
		return 0, err
	}
	return listing.ID, nil
}

// UpdateListing overwrites every editable field of the row with the given id.
func UpdateListing(ctx context.Context, listing *model.Listing) error {
	return GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Listing{ID: listing.ID}).
			Select("listing_type", "place", "title", "rooms", "floor",
				"price_chf", "price_label", "description", "bullets", "images").
			Updates(listing).Error
	})
}

// DeleteListing removes the row by id. Deleting a missing id is a no-op.
func DeleteListing(ctx context.Context, id uint) error {
	return GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.Listing{}, id).Error
	})
}
