package number

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestToWei(t *testing.T) {
	data := map[string]string{
		"1":                     "1000000000000000000",
		"15":                    "15000000000000000000",
		"0.05":                  "50000000000000000",
		"0.0000000000000000019": "1",
		"30000":                 "30000000000000000000000",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			wei, err := ParseWei(k)
			assert.Equal(t, nil, err)
			assert.Equal(t, v, wei.Dec())
		})
	}

	_, err := ParseWei("-1")
	assert.NotEqual(t, nil, err)

	_, err = ParseWei("abc")
	assert.NotEqual(t, nil, err)
}

func TestFromWei(t *testing.T) {
	v := uint256.MustFromDecimal("1500000000000000000")
	assert.Equal(t, "1.5", FromWei(v).String())

	price, err := ToInt(decimal.NewFromInt(2000), 8)
	assert.Equal(t, nil, err)
	assert.Equal(t, "200000000000", price.Dec())
	assert.Equal(t, "2000", FromInt(price, 8).String())
}
