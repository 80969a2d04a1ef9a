package access

import (
	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
)

// Gate guard checks over an access policy
type Gate struct {
	policy *core.AccessPolicy
}

// New new gate on the policy
func New(policy *core.AccessPolicy) Gate {
	return Gate{policy: policy}
}

// RequireNotPaused ErrPaused when paused
func (g Gate) RequireNotPaused() error {
	return fraxlend.Require(!g.policy.Paused, core.ErrPaused, "")
}

// RequireApprovedBorrower only enforced with an active borrower whitelist
func (g Gate) RequireApprovedBorrower(addr common.Address) error {
	ok := !g.policy.BorrowerWhitelistActive || g.policy.ApprovedBorrowers[addr]
	return fraxlend.Require(ok, core.ErrOnlyApprovedBorrowers, addr.Hex())
}

// RequireApprovedLender only enforced with an active lender whitelist
func (g Gate) RequireApprovedLender(addr common.Address) error {
	ok := !g.policy.LenderWhitelistActive || g.policy.ApprovedLenders[addr]
	return fraxlend.Require(ok, core.ErrOnlyApprovedLenders, addr.Hex())
}

// RequireOwner caller is the owner
func (g Gate) RequireOwner(caller common.Address) error {
	return fraxlend.Require(g.IsOwner(caller), core.ErrNotOwner, caller.Hex())
}

// RequireOwnerOrTimelock caller is the owner or the timelock
func (g Gate) RequireOwnerOrTimelock(caller common.Address) error {
	ok := g.IsOwner(caller) || (g.policy.TimeLock != common.Address{} && caller == g.policy.TimeLock)
	return fraxlend.Require(ok, core.ErrProtocolOrOwnerOnly, caller.Hex())
}

// RequireSwapper swapper is approved
func (g Gate) RequireSwapper(swapper common.Address) error {
	return fraxlend.Require(g.policy.Swappers[swapper], core.ErrBadSwapper, swapper.Hex())
}

// IsOwner renounced ownership matches nobody
func (g Gate) IsOwner(caller common.Address) bool {
	return g.policy.Owner != common.Address{} && caller == g.policy.Owner
}

// SetApprovedBorrowers toggle borrower approvals
func (g Gate) SetApprovedBorrowers(approval bool, borrowers ...common.Address) {
	setFlags(g.policy.ApprovedBorrowers, approval, borrowers)
}

// SetApprovedLenders toggle lender approvals
func (g Gate) SetApprovedLenders(approval bool, lenders ...common.Address) {
	setFlags(g.policy.ApprovedLenders, approval, lenders)
}

// SetSwapper toggle a swapper approval
func (g Gate) SetSwapper(swapper common.Address, approval bool) {
	setFlags(g.policy.Swappers, approval, []common.Address{swapper})
}

func setFlags(flags map[common.Address]bool, approval bool, addrs []common.Address) {
	for _, addr := range addrs {
		if approval {
			flags[addr] = true
		} else {
			delete(flags, addr)
		}
	}
}
