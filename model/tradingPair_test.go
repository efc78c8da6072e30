package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradingPair(t *testing.T) {
	p := MakeTradingPair(BTC, EUR)
	assert.Equal(t, "BTCEUR", p.String())

	parsed, e := TradingPairFromString("BTCEUR", BTC)
	require.NoError(t, e)
	assert.Equal(t, p, parsed)

	_, e = TradingPairFromString("ETHEUR", BTC)
	assert.Error(t, e)
}
