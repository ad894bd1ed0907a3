package codes

import (
	"strconv"

	"dsc/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}

// Custom custom code attached by With, 0 if none
func Custom(err twirp.Error) int {
	code, _ := strconv.Atoi(err.Meta(CustomCodeKey))
	return code
}

// FromEngine twirp error of an engine error, keeping the engine code
func FromEngine(err error) error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	code, ok := core.CodeOf(err)
	if !ok {
		return twirp.InternalErrorWith(err)
	}

	var twcode twirp.ErrorCode
	switch code {
	case core.ErrInvalidAmount, core.ErrUnsupportedCollateral, core.ErrConfigMismatch:
		twcode = twirp.InvalidArgument
	case core.ErrBrokenHealthFactor, core.ErrTargetHealthy, core.ErrLiquidationNotImproved,
		core.ErrInsufficientBalance, core.ErrExternalTransferFailed, core.ErrMintFailed:
		twcode = twirp.FailedPrecondition
	case core.ErrStalePrice, core.ErrInvalidPrice:
		twcode = twirp.Unavailable
	case core.ErrReentrant:
		twcode = twirp.Aborted
	case core.ErrArithmetic:
		twcode = twirp.OutOfRange
	default:
		twcode = twirp.Internal
	}

	return With(twirp.NewError(twcode, err.Error()), int(code))
}
