package core

import (
	"github.com/shopspring/decimal"
)

// VaultAccount amount & shares pair of a pool
//
// Amount is the total underlying token owed to (or by) share holders,
// Shares is the total supply of claims on it.
type VaultAccount struct {
	Amount decimal.Decimal `json:"amount"`
	Shares decimal.Decimal `json:"shares"`
}

// NewVaultAccount zero vault account
func NewVaultAccount() VaultAccount {
	return VaultAccount{
		Amount: decimal.Zero,
		Shares: decimal.Zero,
	}
}

// IsEmpty no shares issued
func (v VaultAccount) IsEmpty() bool {
	return v.Shares.IsZero()
}
