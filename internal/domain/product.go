package domain

import (
	"fmt"
	"strings"
)

// Vehicle categories. Values match the persisted records, so they are part of
// the storage format and must not change.
const (
	CategoryTwoWheeler   = "2-Wheeler"
	CategoryThreeWheeler = "3-Wheeler"
)

// Catalog store keys. One JSON value per key; readers fall back to an
// empty/default value when a key is absent or unreadable.
const (
	KeyHeroVideo            = "heroVideoUrl"
	KeyTwoWheelerUrls       = "twoWheelerUrls"
	KeyThreeWheelerUrls     = "threeWheelerUrls"
	KeyTwoWheelerProducts   = "twoWheelerProducts"
	KeyThreeWheelerProducts = "threeWheelerProducts"
	KeyAdminAuth            = "adminAuth"
)

// MediaRef points at a remote asset. PublicId is the deletion handle and is
// non-empty only while the remote asset exists.
type MediaRef struct {
	Url      string `json:"url"`
	PublicId string `json:"publicId"`
}

func (m MediaRef) IsZero() bool {
	return m.Url == "" && m.PublicId == ""
}

// VehicleProduct is one vehicle's full specification sheet plus its attached
// image. All specification fields are free text. Id is assigned once at
// creation and never reused; Category is immutable after creation.
type VehicleProduct struct {
	Id              int64    `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Tagline         string   `json:"tagline"`
	Range           string   `json:"range"`
	TopSpeed        string   `json:"topSpeed,omitempty"`
	Payload         string   `json:"payload,omitempty"`
	Price           string   `json:"price"`
	BatteryCapacity string   `json:"batteryCapacity"`
	BatteryType     string   `json:"batteryType"`
	ChargingTime    string   `json:"chargingTime"`
	ChargingType    string   `json:"chargingType"`
	MotorPower      string   `json:"motorPower"`
	Torque          string   `json:"torque"`
	Acceleration    string   `json:"acceleration,omitempty"`
	DriveType       string   `json:"driveType"`
	BatteryWarranty string   `json:"batteryWarranty"`
	MotorWarranty   string   `json:"motorWarranty"`
	ChargerWarranty string   `json:"chargerWarranty"`
	Colors          string   `json:"colors"`
	Features        []string `json:"features"`
	Image           MediaRef `json:"image"`
}

// ValidCategory reports whether category is one of the two fixed values.
func ValidCategory(category string) bool {
	return category == CategoryTwoWheeler || category == CategoryThreeWheeler
}

// CategoryFromSlug resolves the short request forms ("2w", "3wheeler", ...)
// to a category value.
func CategoryFromSlug(s string) (string, bool) {
	switch strings.ToLower(s) {
	case "2w", "2wheeler", strings.ToLower(CategoryTwoWheeler):
		return CategoryTwoWheeler, true
	case "3w", "3wheeler", strings.ToLower(CategoryThreeWheeler):
		return CategoryThreeWheeler, true
	}
	return "", false
}

// ProductsKey returns the store key holding the product list for a category.
func ProductsKey(category string) string {
	if category == CategoryThreeWheeler {
		return KeyThreeWheelerProducts
	}
	return KeyTwoWheelerProducts
}

// GalleryKey returns the store key holding the gallery image list for a category.
func GalleryKey(category string) string {
	if category == CategoryThreeWheeler {
		return KeyThreeWheelerUrls
	}
	return KeyTwoWheelerUrls
}

// FolderSlug returns the remote asset folder segment for a category,
// e.g. "2wheeler".
func FolderSlug(category string) string {
	if category == CategoryThreeWheeler {
		return "3wheeler"
	}
	return "2wheeler"
}

// NewVehicleProduct builds a fresh record with category-appropriate placeholder
// values. seq is the current list length, used for the running count in the
// placeholder name.
func NewVehicleProduct(id int64, category string, seq int) VehicleProduct {
	p := VehicleProduct{
		Id:       id,
		Name:     fmt.Sprintf("%s Model %d", category, seq+1),
		Category: category,
		Features: []string{},
		Image:    MediaRef{},
	}
	switch category {
	case CategoryThreeWheeler:
		p.Tagline = "Built for Business"
		p.Range = "Upto-150 km"
		p.Payload = "500 kg"
	default:
		p.Tagline = "Urban Mobility Redefined"
		p.Range = "50-150 km"
		p.TopSpeed = "45 km/h"
	}
	return p
}
