package catalog

import (
	"context"

	"github.com/nextgeneev/nextgen-ev/internal/assetrelay"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/nextgeneev/nextgen-ev/pkg/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Relay is the remote asset host as seen by the catalog managers.
type Relay interface {
	Upload(ctx context.Context, in assetrelay.UploadInput, folder, resourceType string) (*assetrelay.UploadResult, error)
	Destroy(ctx context.Context, publicID, resourceType string) (*assetrelay.DestroyResult, error)
}

// ProductManager owns the product record lifecycle for both categories. It
// assumes a single admin actor; concurrent edits are last-write-wins.
type ProductManager struct {
	store      *Store
	relay      Relay
	notifier   *Notifier
	baseFolder string
}

func NewProductManager(store *Store, relay Relay, notifier *Notifier, baseFolder string) *ProductManager {
	return &ProductManager{store: store, relay: relay, notifier: notifier, baseFolder: baseFolder}
}

// Create appends a new record with category-appropriate placeholder values and
// a fresh time-ordered id, persists the list and notifies.
func (m *ProductManager) Create(category string) (*domain.VehicleProduct, error) {
	if !domain.ValidCategory(category) {
		return nil, errors.Errorf("invalid category %q", category)
	}
	products := m.store.Products(category)
	p := domain.NewVehicleProduct(common.UUIDint64(), category, len(products))
	products = append(products, p)
	if err := m.store.SaveProducts(category, products); err != nil {
		return nil, err
	}
	m.notifier.Notify()
	return &p, nil
}

// Update merges partial fields into the record matching id. An unknown id is a
// silent no-op; the dashboard only ever edits records it just loaded. The id
// and category fields are never merged — both are immutable after creation.
// When the merge replaces a previously attached image, the old remote asset is
// retired best-effort.
func (m *ProductManager) Update(ctx context.Context, category string, id int64, partial map[string]interface{}) error {
	if !domain.ValidCategory(category) {
		return errors.Errorf("invalid category %q", category)
	}
	products := m.store.Products(category)
	idx := -1
	for i := range products {
		if products[i].Id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	merged, err := mergeProduct(products[idx], partial)
	if err != nil {
		return err
	}

	oldImage := products[idx].Image
	if oldImage.PublicId != "" && merged.Image.PublicId != oldImage.PublicId {
		m.destroyBestEffort(ctx, oldImage.PublicId, assetrelay.ResourceImage)
	}

	products[idx] = merged
	if err := m.store.SaveProducts(category, products); err != nil {
		return err
	}
	m.notifier.Notify()
	return nil
}

// Delete removes the record matching id. A record with an attached image gets
// its remote asset destroyed first; a failed remote delete is logged and the
// local removal proceeds regardless — an orphaned remote asset is acceptable,
// a record pointing at a verified-gone asset is not.
func (m *ProductManager) Delete(ctx context.Context, category string, id int64) error {
	if !domain.ValidCategory(category) {
		return errors.Errorf("invalid category %q", category)
	}
	products := m.store.Products(category)
	idx := -1
	for i := range products {
		if products[i].Id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	if pid := products[idx].Image.PublicId; pid != "" {
		m.destroyBestEffort(ctx, pid, assetrelay.ResourceImage)
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := m.store.SaveProducts(category, products); err != nil {
		return err
	}
	m.notifier.Notify()
	return nil
}

// AttachImage uploads a product image under the category folder and returns
// the reference for the caller's edit buffer. Nothing is persisted here; the
// replacement is committed by a later Update.
func (m *ProductManager) AttachImage(ctx context.Context, category string, in assetrelay.UploadInput) (domain.MediaRef, error) {
	if !domain.ValidCategory(category) {
		return domain.MediaRef{}, errors.Errorf("invalid category %q", category)
	}
	folder := m.baseFolder + "/" + domain.FolderSlug(category)
	res, err := m.relay.Upload(ctx, in, folder, assetrelay.ResourceImage)
	if err != nil {
		return domain.MediaRef{}, err
	}
	return domain.MediaRef{Url: res.Url, PublicId: res.PublicId}, nil
}

func (m *ProductManager) destroyBestEffort(ctx context.Context, publicID, resourceType string) {
	if _, err := m.relay.Destroy(ctx, publicID, resourceType); err != nil {
		zap.L().Warn("remote asset delete failed, continuing",
			zap.String("public_id", publicID), zap.Error(err))
	}
}

// mergeProduct overlays partial onto p through the JSON codec so that field
// names match the wire format. id and category are immutable and dropped from
// the merge set.
func mergeProduct(p domain.VehicleProduct, partial map[string]interface{}) (domain.VehicleProduct, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return p, errors.Wrap(err, "merge product")
	}
	base := map[string]interface{}{}
	if err := json.Unmarshal(raw, &base); err != nil {
		return p, errors.Wrap(err, "merge product")
	}
	for k, v := range partial {
		if k == "id" || k == "category" {
			continue
		}
		base[k] = v
	}
	raw, err = json.Marshal(base)
	if err != nil {
		return p, errors.Wrap(err, "merge product")
	}
	var merged domain.VehicleProduct
	if err := json.Unmarshal(raw, &merged); err != nil {
		return p, errors.Wrap(err, "merge product")
	}
	merged.Id = p.Id
	merged.Category = p.Category
	return merged, nil
}
