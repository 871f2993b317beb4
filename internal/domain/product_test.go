package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromSlug(t *testing.T) {
	for _, s := range []string{"2w", "2W", "2wheeler", "2-Wheeler", "2-wheeler"} {
		got, ok := CategoryFromSlug(s)
		assert.True(t, ok, s)
		assert.Equal(t, CategoryTwoWheeler, got)
	}
	for _, s := range []string{"3w", "3wheeler", "3-Wheeler"} {
		got, ok := CategoryFromSlug(s)
		assert.True(t, ok, s)
		assert.Equal(t, CategoryThreeWheeler, got)
	}
	_, ok := CategoryFromSlug("")
	assert.False(t, ok)
	_, ok = CategoryFromSlug("4w")
	assert.False(t, ok)
}

func TestStoreKeysPerCategory(t *testing.T) {
	assert.Equal(t, KeyTwoWheelerProducts, ProductsKey(CategoryTwoWheeler))
	assert.Equal(t, KeyThreeWheelerProducts, ProductsKey(CategoryThreeWheeler))
	assert.Equal(t, KeyTwoWheelerUrls, GalleryKey(CategoryTwoWheeler))
	assert.Equal(t, KeyThreeWheelerUrls, GalleryKey(CategoryThreeWheeler))
	assert.Equal(t, "2wheeler", FolderSlug(CategoryTwoWheeler))
	assert.Equal(t, "3wheeler", FolderSlug(CategoryThreeWheeler))
}

func TestNewVehicleProductDefaults(t *testing.T) {
	two := NewVehicleProduct(1, CategoryTwoWheeler, 0)
	assert.Equal(t, "2-Wheeler Model 1", two.Name)
	assert.Equal(t, "Urban Mobility Redefined", two.Tagline)
	assert.Equal(t, "50-150 km", two.Range)
	assert.Equal(t, "45 km/h", two.TopSpeed)
	assert.Empty(t, two.Payload)
	assert.NotNil(t, two.Features)

	three := NewVehicleProduct(2, CategoryThreeWheeler, 4)
	assert.Equal(t, "3-Wheeler Model 5", three.Name)
	assert.Equal(t, "Built for Business", three.Tagline)
	assert.Equal(t, "Upto-150 km", three.Range)
	assert.Equal(t, "500 kg", three.Payload)
	assert.Empty(t, three.TopSpeed)
}

func TestMediaRefIsZero(t *testing.T) {
	assert.True(t, MediaRef{}.IsZero())
	assert.False(t, MediaRef{Url: "https://cdn.example/a.jpg"}.IsZero())
	assert.False(t, MediaRef{PublicId: "a"}.IsZero())
}
