package event

import (
	"context"

	"fraxlend/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type eventStore struct {
	db *db.DB
}

// New new event store
func New(db *db.DB) core.EventStore {
	return &eventStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Event{})
		if err := tx.AutoMigrate(core.Event{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Create insert events, already persisted sequences are skipped
func (s *eventStore) Create(ctx context.Context, events ...*core.Event) error {
	if len(events) == 0 {
		return nil
	}

	return s.db.Tx(func(tx *db.DB) error {
		for _, event := range events {
			if err := tx.Update().
				Where("pair = ? AND sequence = ?", event.Pair, event.Sequence).
				FirstOrCreate(event).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *eventStore) LastSequence(ctx context.Context, pair string) (uint64, error) {
	var event core.Event
	err := s.db.View().Where("pair = ?", pair).Order("sequence DESC").Limit(1).Find(&event).Error
	if err != nil && !store.IsErrNotFound(err) {
		return 0, err
	}

	return event.Sequence, nil
}

func (s *eventStore) List(ctx context.Context, pair string, fromSequence uint64, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if err := s.db.View().
		Where("pair = ? AND sequence > ?", pair, fromSequence).
		Order("sequence").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}
