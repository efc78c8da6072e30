package model

import (
	"strings"
)

// Asset is a currency code as the exchange spells it, e.g. "BTC" or "EUR"
type Asset string

// assets whose withdrawal destination formats are documented by the exchange
const (
	EUR Asset = "EUR"
	BTC Asset = "BTC"
	ETH Asset = "ETH"
	LTC Asset = "LTC"
	BCH Asset = "BCH"
	XRP Asset = "XRP"
	XLM Asset = "XLM"
)

// taggedAssets live on ledgers that need a destination tag next to the address
var taggedAssets = map[Asset]bool{
	XRP: true,
	XLM: true,
}

// fiatAssets are withdrawn over a bank rail
var fiatAssets = map[Asset]bool{
	EUR: true,
}

// MakeAsset normalizes a currency code
func MakeAsset(code string) Asset {
	return Asset(strings.ToUpper(strings.TrimSpace(code)))
}

// IsTagged returns true for assets whose withdrawal destination carries a destination tag
func (a Asset) IsTagged() bool {
	return taggedAssets[a]
}

// IsFiat returns true for assets withdrawn to a bank account
func (a Asset) IsFiat() bool {
	return fiatAssets[a]
}

// String is the stringer function
func (a Asset) String() string {
	return string(a)
}
