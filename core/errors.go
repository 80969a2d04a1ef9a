package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// input validation

	// ErrZeroAmount amount or resulting shares is zero
	ErrZeroAmount ErrorCode = 100101
	// ErrInvalidPath swap path does not start/end with the expected token
	ErrInvalidPath ErrorCode = 100102
	// ErrSlippageTooHigh swap output below the requested minimum
	ErrSlippageTooHigh ErrorCode = 100103
	// ErrInsufficientBalance share balance lower than requested
	ErrInsufficientBalance ErrorCode = 100104
	// ErrInsufficientAllowance share allowance lower than requested
	ErrInsufficientAllowance ErrorCode = 100105
	// ErrInsufficientBorrowShares repaying more shares than the borrower owes
	ErrInsufficientBorrowShares ErrorCode = 100106
	// ErrInsufficientCollateral removing more collateral than deposited
	ErrInsufficientCollateral ErrorCode = 100107
	// ErrInvalidConfig invalid pair configuration
	ErrInvalidConfig ErrorCode = 100108
	// ErrInvalidCaller the pair itself named as caller of a public operation
	ErrInvalidCaller ErrorCode = 100109
	// ErrInvalidAmount amount or shares is not a whole number of base units
	ErrInvalidAmount ErrorCode = 100110

	// authorization

	// ErrPaused pair paused
	ErrPaused ErrorCode = 100201
	// ErrOnlyApprovedBorrowers borrower not on the whitelist
	ErrOnlyApprovedBorrowers ErrorCode = 100202
	// ErrOnlyApprovedLenders lender not on the whitelist
	ErrOnlyApprovedLenders ErrorCode = 100203
	// ErrNotOwner caller is not the owner
	ErrNotOwner ErrorCode = 100204
	// ErrProtocolOrOwnerOnly caller is neither owner nor timelock
	ErrProtocolOrOwnerOnly ErrorCode = 100205
	// ErrBadSwapper swapper not approved
	ErrBadSwapper ErrorCode = 100206
	// ErrBadProtocolFee protocol fee over the max
	ErrBadProtocolFee ErrorCode = 100207
	// ErrBorrowerWhitelistRequired maturity pairs need the borrower whitelist
	ErrBorrowerWhitelistRequired ErrorCode = 100208

	// solvency

	// ErrInsolvent position breaches max LTV
	ErrInsolvent ErrorCode = 100301
	// ErrBorrowerSolvent liquidation of a solvent borrower
	ErrBorrowerSolvent ErrorCode = 100302
	// ErrLiquidationInsufficient liquidation would leave the position insolvent
	ErrLiquidationInsufficient ErrorCode = 100303

	// liquidity

	// ErrInsufficientAssetsInContract not enough idle asset in the pair
	ErrInsufficientAssetsInContract ErrorCode = 100401

	// temporal

	// ErrPastDeadline deadline elapsed
	ErrPastDeadline ErrorCode = 100501
	// ErrPastMaturity maturity date elapsed
	ErrPastMaturity ErrorCode = 100502

	// ErrOracleInvalid price feed answered a non-positive or oversized value
	ErrOracleInvalid ErrorCode = 100601

	// ErrReentrant pair entered again from one of its own external calls
	ErrReentrant ErrorCode = 100701
)

var errorNames = map[ErrorCode]string{
	ErrUnknown:                      "Unknown",
	ErrZeroAmount:                   "ZeroAmount",
	ErrInvalidPath:                  "InvalidPath",
	ErrSlippageTooHigh:              "SlippageTooHigh",
	ErrInsufficientBalance:          "InsufficientBalance",
	ErrInsufficientAllowance:        "InsufficientAllowance",
	ErrInsufficientBorrowShares:     "InsufficientBorrowShares",
	ErrInsufficientCollateral:       "InsufficientCollateral",
	ErrInvalidConfig:                "InvalidConfig",
	ErrInvalidCaller:                "InvalidCaller",
	ErrInvalidAmount:                "InvalidAmount",
	ErrPaused:                       "Paused",
	ErrOnlyApprovedBorrowers:        "OnlyApprovedBorrowers",
	ErrOnlyApprovedLenders:          "OnlyApprovedLenders",
	ErrNotOwner:                     "NotOwner",
	ErrProtocolOrOwnerOnly:          "ProtocolOrOwnerOnly",
	ErrBadSwapper:                   "BadSwapper",
	ErrBadProtocolFee:               "BadProtocolFee",
	ErrBorrowerWhitelistRequired:    "BorrowerWhitelistRequired",
	ErrInsolvent:                    "Insolvent",
	ErrBorrowerSolvent:              "BorrowerSolvent",
	ErrLiquidationInsufficient:      "LiquidationInsufficient",
	ErrInsufficientAssetsInContract: "InsufficientAssetsInContract",
	ErrPastDeadline:                 "PastDeadline",
	ErrPastMaturity:                 "PastMaturity",
	ErrOracleInvalid:                "OracleInvalid",
	ErrReentrant:                    "Reentrant",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

// Name readable name of the error code
func (e ErrorCode) Name() string {
	if name, ok := errorNames[e]; ok {
		return name
	}

	return errorNames[ErrUnknown]
}

func (e ErrorCode) Error() string {
	return e.Name()
}

// Class error class, the hundreds group of the code
func (e ErrorCode) Class() int {
	return int(e) / 100 % 1000
}

const (
	// ErrorClassInput input validation
	ErrorClassInput = 1
	// ErrorClassAuthorization authorization
	ErrorClassAuthorization = 2
	// ErrorClassSolvency solvency
	ErrorClassSolvency = 3
	// ErrorClassLiquidity liquidity
	ErrorClassLiquidity = 4
	// ErrorClassTemporal deadline & maturity
	ErrorClassTemporal = 5
	// ErrorClassOracle oracle
	ErrorClassOracle = 6
	// ErrorClassReentrancy reentrancy
	ErrorClassReentrancy = 7
)
