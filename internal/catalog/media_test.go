package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadBatch(n int) []assetrelay.UploadInput {
	files := make([]assetrelay.UploadInput, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, assetrelay.UploadInput{
			FileName:    fmt.Sprintf("img-%d.jpg", i),
			ContentType: "image/jpeg",
			Data:        []byte("jpeg-bytes"),
		})
	}
	return files
}

func TestUploadManyAppendsInRequestOrder(t *testing.T) {
	store, _, _, _, media := newTestManagers(t)

	refs, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(4))
	require.NoError(t, err)
	require.Len(t, refs, 4)
	for i, ref := range refs {
		assert.Contains(t, ref.PublicId, fmt.Sprintf("img-%d.jpg", i))
	}

	assert.Equal(t, refs, store.Gallery(domain.CategoryTwoWheeler))
}

func TestUploadManyIsAllOrNothing(t *testing.T) {
	store, relay, notifier, _, media := newTestManagers(t)
	relay.failUploads["img-2.jpg"] = true
	count := countNotifications(t, notifier)

	_, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(4))
	assert.Error(t, err)
	assert.Empty(t, store.Gallery(domain.CategoryTwoWheeler))
	assert.Zero(t, *count)
}

func TestUploadManySecondBatchAppends(t *testing.T) {
	store, _, _, _, media := newTestManagers(t)

	_, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(2))
	require.NoError(t, err)
	_, err = media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(2))
	require.NoError(t, err)

	assert.Len(t, store.Gallery(domain.CategoryTwoWheeler), 4)
}

func TestUploadManyRejectsEmptyBatch(t *testing.T) {
	_, _, _, _, media := newTestManagers(t)

	_, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, nil)
	assert.Error(t, err)
}

func TestRemoveAtDeletesPositionally(t *testing.T) {
	store, relay, _, _, media := newTestManagers(t)

	refs, err := media.UploadMany(context.Background(), domain.CategoryThreeWheeler, uploadBatch(3))
	require.NoError(t, err)

	require.NoError(t, media.RemoveAt(context.Background(), domain.CategoryThreeWheeler, 1))

	got := store.Gallery(domain.CategoryThreeWheeler)
	require.Len(t, got, 2)
	assert.Equal(t, refs[0], got[0])
	assert.Equal(t, refs[2], got[1])
	assert.Contains(t, relay.destroyed(), refs[1].PublicId+"|image")
}

func TestRemoveAtRejectsOutOfRange(t *testing.T) {
	_, _, _, _, media := newTestManagers(t)

	_, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(2))
	require.NoError(t, err)

	assert.Error(t, media.RemoveAt(context.Background(), domain.CategoryTwoWheeler, -1))
	assert.Error(t, media.RemoveAt(context.Background(), domain.CategoryTwoWheeler, 2))
}

func TestRemoveAtProceedsWhenRemoteDestroyFails(t *testing.T) {
	store, relay, _, _, media := newTestManagers(t)

	_, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(1))
	require.NoError(t, err)

	relay.failDestroy = true
	require.NoError(t, media.RemoveAt(context.Background(), domain.CategoryTwoWheeler, 0))
	assert.Empty(t, store.Gallery(domain.CategoryTwoWheeler))
}

func TestSetHeroVideoRetiresPreviousAsset(t *testing.T) {
	store, relay, _, _, media := newTestManagers(t)

	first, err := media.SetHeroVideo(context.Background(), assetrelay.UploadInput{
		FileName: "hero-a.mp4", ContentType: "video/mp4", Data: []byte("mp4-a"),
	})
	require.NoError(t, err)
	assert.Empty(t, relay.destroyed())

	second, err := media.SetHeroVideo(context.Background(), assetrelay.UploadInput{
		FileName: "hero-b.mp4", ContentType: "video/mp4", Data: []byte("mp4-b"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{first.PublicId + "|video"}, relay.destroyed())

	got, ok := store.HeroVideo()
	assert.True(t, ok)
	assert.Equal(t, second, got)
}

func TestClearHeroVideoDestroysAndEmptiesSlot(t *testing.T) {
	store, relay, _, _, media := newTestManagers(t)

	ref, err := media.SetHeroVideo(context.Background(), assetrelay.UploadInput{
		FileName: "hero.mp4", ContentType: "video/mp4", Data: []byte("mp4"),
	})
	require.NoError(t, err)

	require.NoError(t, media.ClearHeroVideo(context.Background()))

	assert.Contains(t, relay.destroyed(), ref.PublicId+"|video")
	_, ok := store.HeroVideo()
	assert.False(t, ok)
}

func TestClearHeroVideoOnEmptySlot(t *testing.T) {
	_, relay, _, _, media := newTestManagers(t)

	require.NoError(t, media.ClearHeroVideo(context.Background()))
	assert.Empty(t, relay.destroyed())
}

func TestMediaMutationsNotify(t *testing.T) {
	_, _, notifier, _, media := newTestManagers(t)
	count := countNotifications(t, notifier)

	_, err := media.UploadMany(context.Background(), domain.CategoryTwoWheeler, uploadBatch(2))
	require.NoError(t, err)
	require.NoError(t, media.RemoveAt(context.Background(), domain.CategoryTwoWheeler, 0))
	_, err = media.SetHeroVideo(context.Background(), assetrelay.UploadInput{
		FileName: "hero.mp4", ContentType: "video/mp4", Data: []byte("mp4"),
	})
	require.NoError(t, err)
	require.NoError(t, media.ClearHeroVideo(context.Background()))

	assert.Equal(t, 4, *count)
}
