package models

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyType classifies a property listing.
type PropertyType string

const (
	PropertyTypeSwap PropertyType = "swap"
	PropertyTypeRent PropertyType = "rent"
)

// Property is a housing listing (rental or house swap) posted by a member.
// Price is nil for swaps.
type Property struct {
	ID              string       `gorm:"primaryKey;size:36" json:"id"`
	UserID          string       `gorm:"size:36;not null;index" json:"user_id"`
	Title           string       `gorm:"size:255;not null" json:"title"`
	Type            PropertyType `gorm:"size:20;not null" json:"type"`
	Location        string       `gorm:"size:255" json:"location"`
	Description     string       `gorm:"type:text" json:"description"`
	Bedrooms        int          `gorm:"not null;default:1" json:"bedrooms"`
	Bathrooms       int          `gorm:"not null;default:1" json:"bathrooms"`
	Price           *int         `json:"price,omitempty"`
	AvailableFrom   time.Time    `json:"available_from"`
	AvailableTo     time.Time    `json:"available_to"`
	ImageURLs       datatypes.JSONSlice[string] `json:"image_urls"`
	Amenities       datatypes.JSONSlice[string] `json:"amenities"`
	SwapPreferences string       `gorm:"type:text" json:"swap_preferences,omitempty"`
	IsActive        bool         `gorm:"not null;default:true" json:"is_active"`
	ViewsCount      int          `gorm:"not null;default:0" json:"views_count"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Available reports whether the listing is active and its window covers t.
func (p *Property) Available(t time.Time) bool {
	return p.IsActive && !t.Before(p.AvailableFrom) && t.Before(p.AvailableTo)
}
