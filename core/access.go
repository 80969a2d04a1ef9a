package core

import (
	"github.com/ethereum/go-ethereum/common"
)

// AccessPolicy ownership, pause flag & whitelists of a pair
type AccessPolicy struct {
	Owner    common.Address `json:"owner"`
	TimeLock common.Address `json:"time_lock"`
	Paused   bool           `json:"paused"`

	BorrowerWhitelistActive bool                    `json:"borrower_whitelist_active"`
	LenderWhitelistActive   bool                    `json:"lender_whitelist_active"`
	ApprovedBorrowers       map[common.Address]bool `json:"approved_borrowers"`
	ApprovedLenders         map[common.Address]bool `json:"approved_lenders"`
	Swappers                map[common.Address]bool `json:"swappers"`
}

// NewAccessPolicy empty policy
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{
		ApprovedBorrowers: make(map[common.Address]bool),
		ApprovedLenders:   make(map[common.Address]bool),
		Swappers:          make(map[common.Address]bool),
	}
}

// Clone deep copy
func (a AccessPolicy) Clone() AccessPolicy {
	c := a
	c.ApprovedBorrowers = cloneFlags(a.ApprovedBorrowers)
	c.ApprovedLenders = cloneFlags(a.ApprovedLenders)
	c.Swappers = cloneFlags(a.Swappers)
	return c
}

// Addresses addresses flagged true, unordered
func Addresses(flags map[common.Address]bool) []common.Address {
	addrs := make([]common.Address, 0, len(flags))
	for addr, ok := range flags {
		if ok {
			addrs = append(addrs, addr)
		}
	}

	return addrs
}

func cloneFlags(m map[common.Address]bool) map[common.Address]bool {
	c := make(map[common.Address]bool, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}
