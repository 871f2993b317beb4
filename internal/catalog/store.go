// Package catalog holds the local source of truth for the product and media
// state: a small key-value store plus the managers that mutate it and the
// change-notification bus that read views subscribe to.
package catalog

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var storeBucket = []byte("catalog")

// Store is the catalog persistence boundary: fixed string keys mapped to
// JSON-serialized values in a single bbolt file. Readers treat absent or
// malformed entries as empty/default values; nothing in here is fatal.
type Store struct {
	db *bolt.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open catalog store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(storeBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init catalog bucket")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw stored value for key, or nil when absent.
func (s *Store) Get(key string) []byte {
	var out []byte
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(storeBucket).Get([]byte(key)); v != nil {
			out = append(out, v...)
		}
		return nil
	})
	return out
}

func (s *Store) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Put([]byte(key), value)
	})
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Delete([]byte(key))
	})
}

// GetJSON decodes the value at key into out. It returns false — leaving out
// untouched — when the key is absent or holds malformed JSON; a malformed
// entry is logged and treated as absence.
func (s *Store) GetJSON(key string, out interface{}) bool {
	raw := s.Get(key)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.L().Warn("malformed catalog entry, using default",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) SetJSON(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return s.Set(key, raw)
}

// Products loads the product list for a category, falling back to an empty
// list.
func (s *Store) Products(category string) []domain.VehicleProduct {
	products := []domain.VehicleProduct{}
	s.GetJSON(domain.ProductsKey(category), &products)
	return products
}

func (s *Store) SaveProducts(category string, products []domain.VehicleProduct) error {
	return s.SetJSON(domain.ProductsKey(category), products)
}

// Gallery loads the gallery image list for a category, falling back to an
// empty list.
func (s *Store) Gallery(category string) []domain.MediaRef {
	refs := []domain.MediaRef{}
	s.GetJSON(domain.GalleryKey(category), &refs)
	return refs
}

func (s *Store) SaveGallery(category string, refs []domain.MediaRef) error {
	return s.SetJSON(domain.GalleryKey(category), refs)
}

// HeroVideo loads the hero video slot. Legacy entries hold a bare URL string
// instead of a {url, publicId} object; both forms are accepted.
func (s *Store) HeroVideo() (domain.MediaRef, bool) {
	raw := s.Get(domain.KeyHeroVideo)
	if raw == nil {
		return domain.MediaRef{}, false
	}
	var ref domain.MediaRef
	if err := json.Unmarshal(raw, &ref); err == nil {
		return ref, !ref.IsZero()
	}
	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil && legacy != "" {
		return domain.MediaRef{Url: legacy}, true
	}
	zap.L().Warn("malformed hero video entry, using default")
	return domain.MediaRef{}, false
}

func (s *Store) SaveHeroVideo(ref domain.MediaRef) error {
	return s.SetJSON(domain.KeyHeroVideo, ref)
}

func (s *Store) DeleteHeroVideo() error {
	return s.Delete(domain.KeyHeroVideo)
}

// AdminAuth reports whether the admin session sentinel is set.
func (s *Store) AdminAuth() bool {
	return string(s.Get(domain.KeyAdminAuth)) == "true"
}

func (s *Store) SetAdminAuth(on bool) error {
	if !on {
		return s.Delete(domain.KeyAdminAuth)
	}
	return s.Set(domain.KeyAdminAuth, []byte("true"))
}

// Snapshot writes a consistent copy of the store to path.
func (s *Store) Snapshot(path string) error {
	return s.db.View(func(tx *bolt.Tx) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = tx.WriteTo(f)
		return err
	})
}
