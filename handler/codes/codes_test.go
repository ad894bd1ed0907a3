package codes

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dsc/core"

	"github.com/stretchr/testify/assert"
	"github.com/twitchtv/twirp"
)

func TestFromEngine(t *testing.T) {
	cases := []struct {
		err    error
		code   twirp.ErrorCode
		custom int
	}{
		{core.ErrInvalidAmount, twirp.InvalidArgument, int(core.ErrInvalidAmount)},
		{fmt.Errorf("%w: 0.9", core.ErrBrokenHealthFactor), twirp.FailedPrecondition, int(core.ErrBrokenHealthFactor)},
		{fmt.Errorf("read feed: %w", core.ErrStalePrice), twirp.Unavailable, int(core.ErrStalePrice)},
		{core.ErrReentrant, twirp.Aborted, int(core.ErrReentrant)},
		{errors.New("boom"), twirp.Internal, 0},
	}

	for _, c := range cases {
		twerr, ok := FromEngine(c.err).(twirp.Error)
		if assert.True(t, ok) {
			assert.Equal(t, c.code, twerr.Code(), c.err.Error())
			assert.Equal(t, c.custom, Custom(twerr), c.err.Error())
		}
	}
}

func TestGet(t *testing.T) {
	assert.Equal(t, InvalidArguments, Get(twirp.InvalidArgument))
	assert.Equal(t, http.StatusNotFound, Get(twirp.NotFound))
}
