//go:build !sqlite

package store

import (
	"encoding/json"
	"errors"
	"time"

	"go.etcd.io/bbolt"

	"github.com/inovacc/fuelr/internal/model"
)

const stateFileName = "fuelr.bolt"

const (
	boltBucketConfig    = "config"    // key: "config" -> Config JSON
	boltBucketRefreshes = "refreshes" // key: started_at/uid -> RefreshRecord JSON
)

// Bolt is the default Store backend.
type Bolt struct {
	db *bbolt.DB
}

func initStore(path string) (Store, error) {
	return NewBolt(path)
}

// NewBolt opens, creating if needed, a bolt-backed store at path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketRefreshes)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))
		v := bucket.Get([]byte("config"))

		if v == nil {
			// Return default config if not found
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte("config"), data)
	})
}

func (b *Bolt) SaveRefresh(rec *model.RefreshRecord) error {
	if rec == nil {
		return errors.New("record is required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketRefreshes))

		if err := bucket.Put([]byte(refreshKey(rec)), data); err != nil {
			return err
		}

		return pruneRefreshes(bucket)
	})
}

// pruneRefreshes drops the oldest records beyond historyLimit. Keys order
// chronologically, so a forward cursor walks oldest first.
func pruneRefreshes(bucket *bbolt.Bucket) error {
	count := 0

	c := bucket.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		count++
	}

	excess := count - historyLimit
	if excess <= 0 {
		return nil
	}

	c = bucket.Cursor()
	for k, _ := c.First(); k != nil && excess > 0; k, _ = c.Next() {
		if err := c.Delete(); err != nil {
			return err
		}

		excess--
	}

	return nil
}

func (b *Bolt) LastRefresh() (*model.RefreshRecord, error) {
	var rec *model.RefreshRecord

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketRefreshes))

		_, v := bucket.Cursor().Last()
		if v == nil {
			return nil
		}

		var r model.RefreshRecord
		if err := json.Unmarshal(v, &r); err != nil {
			return err
		}

		rec = &r

		return nil
	})

	return rec, err
}

func (b *Bolt) ListRefreshes(limit int) ([]model.RefreshRecord, error) {
	var out []model.RefreshRecord

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketRefreshes))

		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) == limit {
				break
			}

			var r model.RefreshRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			out = append(out, r)
		}

		return nil
	})

	return out, err
}
