package pair

import (
	"context"
	"time"

	"fraxlend/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache cache snapshots found by address
func Cache(store core.PairStore, exp time.Duration) core.PairStore {
	return &cachePairStore{
		PairStore: store,
		cache:     gcache.New(64).LRU().Expiration(exp).Build(),
		sf:        &singleflight.Group{},
	}
}

type cachePairStore struct {
	core.PairStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cachePairStore) Save(ctx context.Context, snapshot *core.PairSnapshot) error {
	if err := s.PairStore.Save(ctx, snapshot); err != nil {
		return err
	}

	_ = s.cache.Set(snapshot.Address, snapshot)
	return nil
}

func (s *cachePairStore) Find(ctx context.Context, address string) (*core.PairSnapshot, error) {
	if v, err := s.cache.Get(address); err == nil {
		if snapshot, ok := v.(*core.PairSnapshot); ok {
			return snapshot, nil
		}
	}

	v, err, _ := s.sf.Do(address, func() (interface{}, error) {
		snapshot, err := s.PairStore.Find(ctx, address)
		if err != nil {
			return nil, err
		}

		_ = s.cache.Set(address, snapshot)
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.PairSnapshot), nil
}
