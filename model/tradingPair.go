package model

import (
	"fmt"
)

// TradingPair lists an ordered pair that is understood by the exchange API.
// BTC/EUR = 50000; BTC is base, EUR is Quote. The exchange writes it as "BTCEUR".
type TradingPair struct {
	// Base represents the asset that has a unit of 1 (implicit)
	Base Asset
	// Quote (or Counter) represents the asset that has its unit specified relative to the base asset
	Quote Asset
}

// MakeTradingPair is a factory method
func MakeTradingPair(base Asset, quote Asset) *TradingPair {
	return &TradingPair{
		Base:  base,
		Quote: quote,
	}
}

// String is the stringer function, it is also the form used in request paths
func (p TradingPair) String() string {
	return string(p.Base) + string(p.Quote)
}

// TradingPairFromString splits an exchange pair symbol using the length of the known base asset
func TradingPairFromString(pair string, base Asset) (*TradingPair, error) {
	if len(pair) <= len(base) || Asset(pair[:len(base)]) != base {
		return nil, fmt.Errorf("pair '%s' does not start with base asset '%s'", pair, base)
	}
	return MakeTradingPair(base, Asset(pair[len(base):])), nil
}
