package core

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PairSnapshot persisted state of a pair
type PairSnapshot struct {
	ID                uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Address           string          `sql:"size:42;unique_index:idx_pair_snapshots_address" json:"address"`
	Name              string          `sql:"size:64" json:"name"`
	Sequence          uint64          `json:"sequence"`
	TotalAssetAmount  decimal.Decimal `sql:"type:decimal(78,0)" json:"total_asset_amount"`
	TotalAssetShares  decimal.Decimal `sql:"type:decimal(78,0)" json:"total_asset_shares"`
	TotalBorrowAmount decimal.Decimal `sql:"type:decimal(78,0)" json:"total_borrow_amount"`
	TotalBorrowShares decimal.Decimal `sql:"type:decimal(78,0)" json:"total_borrow_shares"`
	TotalCollateral   decimal.Decimal `sql:"type:decimal(78,0)" json:"total_collateral"`
	RatePerSec        decimal.Decimal `sql:"type:decimal(78,0)" json:"rate_per_sec"`
	ExchangeRate      decimal.Decimal `sql:"type:decimal(78,0)" json:"exchange_rate"`
	LastTimestamp     int64           `json:"last_timestamp"`
	ApprovedBorrowers pq.StringArray  `sql:"type:varchar(42)[]" json:"approved_borrowers"`
	ApprovedLenders   pq.StringArray  `sql:"type:varchar(42)[]" json:"approved_lenders"`
	State             types.JSONText  `sql:"type:TEXT" json:"state"`
	Version           int64           `sql:"default:0" json:"version"`
	CreatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// NewPairSnapshot snapshot of the pair state
func NewPairSnapshot(params *PairParams, state *PairState) (*PairSnapshot, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	return &PairSnapshot{
		Address:           params.Address.Hex(),
		Name:              params.Name,
		Sequence:          state.Sequence,
		TotalAssetAmount:  state.TotalAsset.Amount,
		TotalAssetShares:  state.TotalAsset.Shares,
		TotalBorrowAmount: state.TotalBorrow.Amount,
		TotalBorrowShares: state.TotalBorrow.Shares,
		TotalCollateral:   state.TotalCollateral,
		RatePerSec:        state.RateInfo.RatePerSec,
		ExchangeRate:      state.ExchangeRate.ExchangeRate,
		LastTimestamp:     state.RateInfo.LastTimestamp,
		ApprovedBorrowers: hexes(state.Access.ApprovedBorrowers),
		ApprovedLenders:   hexes(state.Access.ApprovedLenders),
		State:             data,
	}, nil
}

// Restore decode the persisted state
func (s *PairSnapshot) Restore() (*PairState, error) {
	state := NewPairState()
	if err := s.State.Unmarshal(state); err != nil {
		return nil, err
	}

	// nil maps after decoding an older snapshot
	restored := state.Clone()
	return restored, nil
}

func hexes(flags map[common.Address]bool) pq.StringArray {
	addrs := Addresses(flags)
	arr := make(pq.StringArray, 0, len(addrs))
	for _, addr := range addrs {
		arr = append(arr, addr.Hex())
	}

	sort.Strings(arr)
	return arr
}

// PairStore pair snapshot store interface
type PairStore interface {
	Save(ctx context.Context, snapshot *PairSnapshot) error
	Find(ctx context.Context, address string) (*PairSnapshot, error)
	All(ctx context.Context) ([]*PairSnapshot, error)
}
