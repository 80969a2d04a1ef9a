package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// EventType event type
type EventType string

const (
	EventAddInterest              EventType = "AddInterest"
	EventUpdateRate               EventType = "UpdateRate"
	EventUpdateExchangeRate       EventType = "UpdateExchangeRate"
	EventDeposit                  EventType = "Deposit"
	EventWithdraw                 EventType = "Withdraw"
	EventTransfer                 EventType = "Transfer"
	EventApproval                 EventType = "Approval"
	EventWithdrawFees             EventType = "WithdrawFees"
	EventBorrowAsset              EventType = "BorrowAsset"
	EventRepayAsset               EventType = "RepayAsset"
	EventAddCollateral            EventType = "AddCollateral"
	EventRemoveCollateral         EventType = "RemoveCollateral"
	EventLiquidate                EventType = "Liquidate"
	EventLeveragedPosition        EventType = "LeveragedPosition"
	EventRepayAssetWithCollateral EventType = "RepayAssetWithCollateral"
	EventChangeFee                EventType = "ChangeFee"
	EventSetApprovedBorrower      EventType = "SetApprovedBorrower"
	EventSetApprovedLender        EventType = "SetApprovedLender"
	EventSetSwapper               EventType = "SetSwapper"
	EventSetTimeLock              EventType = "SetTimeLock"
	EventPaused                   EventType = "Paused"
	EventUnpaused                 EventType = "Unpaused"
	EventOwnershipTransferred     EventType = "OwnershipTransferred"
)

const (
	EventKeyCaller        = "caller"
	EventKeyOwner         = "owner"
	EventKeyReceiver      = "receiver"
	EventKeyBorrower      = "borrower"
	EventKeySender        = "sender"
	EventKeyFrom          = "from"
	EventKeyTo            = "to"
	EventKeySpender       = "spender"
	EventKeyAmount        = "amount"
	EventKeyAssets        = "assets"
	EventKeyShares        = "shares"
	EventKeyValue         = "value"
	EventKeyInterest      = "interest_earned"
	EventKeyRate          = "rate"
	EventKeyOldRate       = "old_rate"
	EventKeyNewRate       = "new_rate"
	EventKeyDeltaTime     = "delta_time"
	EventKeyUtilization   = "utilization"
	EventKeyFeesAmount    = "fees_amount"
	EventKeyFeesShare     = "fees_share"
	EventKeyExchangeRate  = "exchange_rate"
	EventKeyCollateral    = "collateral"
	EventKeySwapper       = "swapper"
	EventKeyApproval      = "approval"
	EventKeyRecipient     = "recipient"
	EventKeyNewFee        = "new_fee"
	EventKeyOldFee        = "old_fee"
	EventKeyPrevious      = "previous"
	EventKeyNext          = "next"
	EventKeyRepay         = "amount_to_repay"
	EventKeySharesAdjust  = "shares_to_adjust"
	EventKeyAmountAdjust  = "amount_to_adjust"
	EventKeyInitial       = "initial_collateral"
	EventKeyBorrowAmount  = "borrow_amount"
	EventKeyCollateralOut = "collateral_out"
	EventKeyAssetOut      = "asset_out"
)

// EventData event payload
type EventData map[string]interface{}

// NewEventData new event payload
func NewEventData() EventData {
	return make(EventData)
}

// Put put data
func (d EventData) Put(key string, value interface{}) EventData {
	d[key] = value
	return d
}

// Format format as []byte by default
func (d EventData) Format() []byte {
	bs, e := json.Marshal(d)
	if e != nil {
		return []byte("{}")
	}

	return bs
}

// Event pair event, ordered by Sequence within a pair
type Event struct {
	ID        int64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Pair      string         `sql:"size:42;unique_index:idx_events_pair_sequence" json:"pair,omitempty"`
	Sequence  uint64         `sql:"unique_index:idx_events_pair_sequence" json:"sequence,omitempty"`
	TraceID   string         `sql:"size:36;index:idx_events_trace_id" json:"trace_id,omitempty"`
	Type      EventType      `sql:"size:32;index:idx_events_type" json:"type,omitempty"`
	Timestamp int64          `json:"timestamp,omitempty"`
	Data      types.JSONText `sql:"type:TEXT" json:"data,omitempty"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

// Decode decode the payload into v
func (e *Event) Decode(v interface{}) error {
	return e.Data.Unmarshal(v)
}

// EventStore event store interface
type EventStore interface {
	Create(ctx context.Context, events ...*Event) error
	LastSequence(ctx context.Context, pair string) (uint64, error)
	List(ctx context.Context, pair string, fromSequence uint64, limit int) ([]*Event, error)
}
