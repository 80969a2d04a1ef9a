package keeper

import (
	"context"

	"github.com/fox-one/pkg/property"
)

// Checkpoints sequence of the last persisted event by key
type Checkpoints interface {
	Get(ctx context.Context, key string) (uint64, error)
	Save(ctx context.Context, key string, sequence uint64) error
}

// PropertyCheckpoints checkpoints kept in a property store
func PropertyCheckpoints(store property.Store) Checkpoints {
	return &propertyCheckpoints{store: store}
}

type propertyCheckpoints struct {
	store property.Store
}

func (c *propertyCheckpoints) Get(ctx context.Context, key string) (uint64, error) {
	v, err := c.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}

	if seq := v.Int64(); seq > 0 {
		return uint64(seq), nil
	}

	return 0, nil
}

func (c *propertyCheckpoints) Save(ctx context.Context, key string, sequence uint64) error {
	return c.store.Save(ctx, key, int64(sequence))
}
