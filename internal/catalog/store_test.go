package catalog

import (
	"path/filepath"
	"testing"

	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreProductsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	products := []domain.VehicleProduct{
		{
			Id:       101,
			Name:     "City Rider",
			Category: domain.CategoryTwoWheeler,
			Range:    "80 km",
			Price:    "Rs 85,000",
			Features: []string{"Disc brakes", "LED headlamp"},
			Image:    domain.MediaRef{Url: "https://cdn.example/a.jpg", PublicId: "nextgen-ev/2wheeler/a"},
		},
		{
			Id:       102,
			Name:     "City Rider Pro",
			Category: domain.CategoryTwoWheeler,
			Features: []string{},
		},
	}
	require.NoError(t, store.SaveProducts(domain.CategoryTwoWheeler, products))

	got := store.Products(domain.CategoryTwoWheeler)
	assert.Equal(t, products, got)

	// the other category is untouched
	assert.Empty(t, store.Products(domain.CategoryThreeWheeler))
}

func TestStoreMissingKeysYieldEmptyLists(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.Products(domain.CategoryTwoWheeler))
	assert.Empty(t, store.Gallery(domain.CategoryThreeWheeler))

	_, ok := store.HeroVideo()
	assert.False(t, ok)
}

func TestStoreMalformedEntryTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(domain.KeyTwoWheelerProducts, []byte("{not json")))
	assert.Empty(t, store.Products(domain.CategoryTwoWheeler))

	require.NoError(t, store.Set(domain.KeyHeroVideo, []byte("{not json")))
	_, ok := store.HeroVideo()
	assert.False(t, ok)
}

func TestStoreGalleryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	refs := []domain.MediaRef{
		{Url: "https://cdn.example/1.jpg", PublicId: "g/1"},
		{Url: "https://cdn.example/2.jpg", PublicId: "g/2"},
	}
	require.NoError(t, store.SaveGallery(domain.CategoryThreeWheeler, refs))
	assert.Equal(t, refs, store.Gallery(domain.CategoryThreeWheeler))
}

func TestStoreHeroVideoObjectForm(t *testing.T) {
	store := newTestStore(t)

	ref := domain.MediaRef{Url: "https://cdn.example/hero.mp4", PublicId: "nextgen-ev/hero/v1"}
	require.NoError(t, store.SaveHeroVideo(ref))

	got, ok := store.HeroVideo()
	assert.True(t, ok)
	assert.Equal(t, ref, got)

	require.NoError(t, store.DeleteHeroVideo())
	_, ok = store.HeroVideo()
	assert.False(t, ok)
}

func TestStoreHeroVideoLegacyStringForm(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(domain.KeyHeroVideo, []byte(`"https://cdn.example/legacy.mp4"`)))

	got, ok := store.HeroVideo()
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/legacy.mp4", got.Url)
	assert.Empty(t, got.PublicId)
}

func TestStoreAdminAuthSentinel(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.AdminAuth())

	require.NoError(t, store.SetAdminAuth(true))
	assert.True(t, store.AdminAuth())

	require.NoError(t, store.SetAdminAuth(false))
	assert.False(t, store.AdminAuth())
}

func TestStoreSnapshot(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveHeroVideo(domain.MediaRef{Url: "https://cdn.example/hero.mp4", PublicId: "h"}))

	path := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, store.Snapshot(path))

	copied, err := OpenStore(path)
	require.NoError(t, err)
	defer copied.Close()

	got, ok := copied.HeroVideo()
	assert.True(t, ok)
	assert.Equal(t, "h", got.PublicId)
}
