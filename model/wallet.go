package model

import (
	"fmt"
	"strings"
)

// WithdrawalDestination is the "wallet" field of a withdrawal, its format depends on the currency:
//   - EUR: {IBAN}:{BIC}
//   - BTC, ETH, LTC, BCH and most other crypto assets: {cryptoAddress}
//   - XRP, XLM: {cryptoAddress}:{destinationTag}
type WithdrawalDestination string

// MakeCryptoDestination is a factory method for assets that only need an address
func MakeCryptoDestination(address string) WithdrawalDestination {
	return WithdrawalDestination(address)
}

// MakeTaggedDestination is a factory method for assets that need a destination tag
func MakeTaggedDestination(address string, tag string) WithdrawalDestination {
	return WithdrawalDestination(address + ":" + tag)
}

// MakeBankDestination is a factory method for fiat withdrawals, example FR9130066929721543148898291:CMCIFRPPXXX
func MakeBankDestination(iban string, bic string) WithdrawalDestination {
	return WithdrawalDestination(strings.ReplaceAll(iban, " ", "") + ":" + bic)
}

// MakeDestination picks the format for the asset, asset codes are normalized first so "xrp" is treated as XRP
func MakeDestination(asset Asset, address string, tagOrBIC string) (WithdrawalDestination, error) {
	asset = MakeAsset(asset.String())
	if address == "" {
		return "", fmt.Errorf("address is required for a %s withdrawal", asset)
	}

	if asset.IsFiat() {
		if tagOrBIC == "" {
			return "", fmt.Errorf("a BIC is required for a %s withdrawal", asset)
		}
		return MakeBankDestination(address, tagOrBIC), nil
	} else if asset.IsTagged() {
		if tagOrBIC == "" {
			return "", fmt.Errorf("a destination tag is required for a %s withdrawal", asset)
		}
		return MakeTaggedDestination(address, tagOrBIC), nil
	}
	return MakeCryptoDestination(address), nil
}

// String is the stringer function
func (w WithdrawalDestination) String() string {
	return string(w)
}
