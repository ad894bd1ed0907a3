package core

import (
	"errors"
	"strconv"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrConfigMismatch collateral kinds and price feeds differ in length
	ErrConfigMismatch ErrorCode = 100001
	// ErrInvalidAmount zero or otherwise disallowed amount
	ErrInvalidAmount ErrorCode = 100100
	// ErrUnsupportedCollateral collateral kind not registered
	ErrUnsupportedCollateral ErrorCode = 100101
	// ErrExternalTransferFailed token collaborator reported a failed transfer
	ErrExternalTransferFailed ErrorCode = 100102
	// ErrBrokenHealthFactor health factor below minimum after the operation
	ErrBrokenHealthFactor ErrorCode = 100103
	// ErrMintFailed stable token refused to mint
	ErrMintFailed ErrorCode = 100104
	// ErrTargetHealthy liquidation attempted on a healthy account
	ErrTargetHealthy ErrorCode = 100105
	// ErrLiquidationNotImproved liquidation did not raise the health factor
	ErrLiquidationNotImproved ErrorCode = 100106
	// ErrInsufficientBalance ledger position would go negative
	ErrInsufficientBalance ErrorCode = 100107
	// ErrArithmetic 256 bit overflow
	ErrArithmetic ErrorCode = 100108
	// ErrStalePrice price feed round is stale
	ErrStalePrice ErrorCode = 100200
	// ErrInvalidPrice price feed answer is not positive
	ErrInvalidPrice ErrorCode = 100201
	// ErrReentrant operation entered while another one is running
	ErrReentrant ErrorCode = 100300
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:                "unknown error",
	ErrConfigMismatch:         "collateral kinds and price feeds must have the same length",
	ErrInvalidAmount:          "amount must be more than zero",
	ErrUnsupportedCollateral:  "collateral not allowed",
	ErrExternalTransferFailed: "transfer failed",
	ErrBrokenHealthFactor:     "health factor is broken",
	ErrMintFailed:             "mint failed",
	ErrTargetHealthy:          "health factor ok",
	ErrLiquidationNotImproved: "health factor not improved",
	ErrInsufficientBalance:    "insufficient balance",
	ErrArithmetic:             "arithmetic overflow",
	ErrStalePrice:             "stale price",
	ErrInvalidPrice:           "invalid price",
	ErrReentrant:              "reentrant call",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

// Message human readable description of the code
func (e ErrorCode) Message() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return errorMessages[ErrUnknown]
}

func (e ErrorCode) Error() string {
	return e.Message()
}

// CodeOf the error code wrapped in err
func CodeOf(err error) (ErrorCode, bool) {
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}

	return 0, false
}
