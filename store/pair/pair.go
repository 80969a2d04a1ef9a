package pair

import (
	"context"

	"fraxlend/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type pairStore struct {
	db *db.DB
}

// New new pair snapshot store
func New(db *db.DB) core.PairStore {
	return &pairStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.PairSnapshot{})
		if err := tx.AutoMigrate(core.PairSnapshot{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Save upsert the snapshot, an older sequence never overwrites a newer one
func (s *pairStore) Save(ctx context.Context, snapshot *core.PairSnapshot) error {
	return s.db.Tx(func(tx *db.DB) error {
		var current core.PairSnapshot
		err := tx.Update().Where("address = ?", snapshot.Address).First(&current).Error
		if store.IsErrNotFound(err) {
			snapshot.Version = 0
			return tx.Update().Create(snapshot).Error
		} else if err != nil {
			return err
		}

		if current.Sequence > snapshot.Sequence {
			*snapshot = current
			return nil
		}

		update := tx.Update().Model(core.PairSnapshot{}).
			Where("id = ? AND version = ?", current.ID, current.Version).
			Updates(map[string]interface{}{
				"name":                snapshot.Name,
				"sequence":            snapshot.Sequence,
				"total_asset_amount":  snapshot.TotalAssetAmount,
				"total_asset_shares":  snapshot.TotalAssetShares,
				"total_borrow_amount": snapshot.TotalBorrowAmount,
				"total_borrow_shares": snapshot.TotalBorrowShares,
				"total_collateral":    snapshot.TotalCollateral,
				"rate_per_sec":        snapshot.RatePerSec,
				"exchange_rate":       snapshot.ExchangeRate,
				"last_timestamp":      snapshot.LastTimestamp,
				"approved_borrowers":  snapshot.ApprovedBorrowers,
				"approved_lenders":    snapshot.ApprovedLenders,
				"state":               snapshot.State,
				"version":             current.Version + 1,
			})
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			return db.ErrOptimisticLock
		}

		snapshot.ID = current.ID
		snapshot.Version = current.Version + 1
		snapshot.CreatedAt = current.CreatedAt
		return nil
	})
}

func (s *pairStore) Find(ctx context.Context, address string) (*core.PairSnapshot, error) {
	var snapshot core.PairSnapshot
	if err := s.db.View().Where("address = ?", address).First(&snapshot).Error; err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (s *pairStore) All(ctx context.Context) ([]*core.PairSnapshot, error) {
	var snapshots []*core.PairSnapshot
	if err := s.db.View().Order("id").Find(&snapshots).Error; err != nil {
		return nil, err
	}

	return snapshots, nil
}
