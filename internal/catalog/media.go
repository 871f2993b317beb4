package catalog

import (
	"context"

	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MediaManager owns the gallery lists and the single hero video slot.
type MediaManager struct {
	store      *Store
	relay      Relay
	notifier   *Notifier
	baseFolder string
}

func NewMediaManager(store *Store, relay Relay, notifier *Notifier, baseFolder string) *MediaManager {
	return &MediaManager{store: store, relay: relay, notifier: notifier, baseFolder: baseFolder}
}

// UploadMany uploads a batch of gallery images concurrently and reports a
// single pass/fail outcome for the whole batch: if any upload rejects, nothing
// is appended and the first error is returned. Assets stored by sibling
// uploads before the failure are not rolled back and become orphans on the
// remote host.
func (m *MediaManager) UploadMany(ctx context.Context, category string, files []assetrelay.UploadInput) ([]domain.MediaRef, error) {
	if !domain.ValidCategory(category) {
		return nil, errors.Errorf("invalid category %q", category)
	}
	if len(files) == 0 {
		return nil, errors.New("no files provided")
	}

	folder := m.baseFolder + "/" + domain.FolderSlug(category)
	refs := make([]domain.MediaRef, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i := range files {
		i := i
		g.Go(func() error {
			res, err := m.relay.Upload(gctx, files[i], folder, assetrelay.ResourceImage)
			if err != nil {
				return err
			}
			refs[i] = domain.MediaRef{Url: res.Url, PublicId: res.PublicId}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	existing := m.store.Gallery(category)
	existing = append(existing, refs...)
	if err := m.store.SaveGallery(category, existing); err != nil {
		return nil, err
	}
	m.notifier.Notify()
	return refs, nil
}

// RemoveAt deletes the gallery entry at index: best-effort remote destroy,
// then positional removal from the persisted list. Positional addressing is
// fine under the single-admin assumption.
func (m *MediaManager) RemoveAt(ctx context.Context, category string, index int) error {
	if !domain.ValidCategory(category) {
		return errors.Errorf("invalid category %q", category)
	}
	refs := m.store.Gallery(category)
	if index < 0 || index >= len(refs) {
		return errors.Errorf("gallery index %d out of range", index)
	}

	if pid := refs[index].PublicId; pid != "" {
		if _, err := m.relay.Destroy(ctx, pid, assetrelay.ResourceImage); err != nil {
			zap.L().Warn("remote asset delete failed, continuing",
				zap.String("public_id", pid), zap.Error(err))
		}
	}

	refs = append(refs[:index], refs[index+1:]...)
	if err := m.store.SaveGallery(category, refs); err != nil {
		return err
	}
	m.notifier.Notify()
	return nil
}

// SetHeroVideo uploads a new hero video and replaces the slot. The previous
// slot's remote asset is retired best-effort before the new reference is
// persisted.
func (m *MediaManager) SetHeroVideo(ctx context.Context, in assetrelay.UploadInput) (domain.MediaRef, error) {
	res, err := m.relay.Upload(ctx, in, m.baseFolder+"/hero", assetrelay.ResourceVideo)
	if err != nil {
		return domain.MediaRef{}, err
	}

	if prev, ok := m.store.HeroVideo(); ok && prev.PublicId != "" && prev.PublicId != res.PublicId {
		if _, err := m.relay.Destroy(ctx, prev.PublicId, assetrelay.ResourceVideo); err != nil {
			zap.L().Warn("previous hero video delete failed, continuing",
				zap.String("public_id", prev.PublicId), zap.Error(err))
		}
	}

	ref := domain.MediaRef{Url: res.Url, PublicId: res.PublicId}
	if err := m.store.SaveHeroVideo(ref); err != nil {
		return domain.MediaRef{}, err
	}
	m.notifier.Notify()
	return ref, nil
}

// ClearHeroVideo empties the slot, destroying the remote asset best-effort.
func (m *MediaManager) ClearHeroVideo(ctx context.Context) error {
	if ref, ok := m.store.HeroVideo(); ok && ref.PublicId != "" {
		if _, err := m.relay.Destroy(ctx, ref.PublicId, assetrelay.ResourceVideo); err != nil {
			zap.L().Warn("hero video delete failed, continuing",
				zap.String("public_id", ref.PublicId), zap.Error(err))
		}
	}
	if err := m.store.DeleteHeroVideo(); err != nil {
		return err
	}
	m.notifier.Notify()
	return nil
}
