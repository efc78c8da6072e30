package model

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// LatestPrice is one entry of the latestPrices list
type LatestPrice struct {
	Pair      string          `mapstructure:"pair"`
	Price     decimal.Decimal `mapstructure:"price"`
	Ask       decimal.Decimal `mapstructure:"ask"`
	Bid       decimal.Decimal `mapstructure:"bid"`
	Delta     decimal.Decimal `mapstructure:"delta"`
	Timestamp Timestamp       `mapstructure:"timestamp"`
}

// Market is one tradable pair as listed by the markets endpoint
type Market struct {
	Pair          string `mapstructure:"pair"`
	BaseCurrency  Asset  `mapstructure:"baseCurrency"`
	QuoteCurrency Asset  `mapstructure:"quoteCurrency"`
	Precision     int    `mapstructure:"precision"`
	Margin        bool   `mapstructure:"margin"`
}

// TradingPair returns the market's pair split into its two assets
func (m Market) TradingPair() *TradingPair {
	return MakeTradingPair(m.BaseCurrency, m.QuoteCurrency)
}

// AssetInfo is one asset as listed by the assets endpoint
type AssetInfo struct {
	Symbol     Asset  `mapstructure:"symbol"`
	Name       string `mapstructure:"name"`
	Type       string `mapstructure:"type"`
	Digits     int    `mapstructure:"digits"`
	CanDeposit bool   `mapstructure:"canDeposit"`
	CanTrade   bool   `mapstructure:"canTrade"`
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook lets mapstructure fill decimal.Decimal fields from JSON numbers and numeric strings
func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		if v == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(v)
	case nil:
		return decimal.Zero, nil
	}
	return data, nil
}

// DecodeRecords decodes a list-shaped result into a pointer to a slice of typed values, unknown fields are ignored
func DecodeRecords(result interface{}, output interface{}) error {
	decoder, e := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decimalHook,
		Result:     output,
	})
	if e != nil {
		return fmt.Errorf("could not make decoder: %s", e)
	}

	e = decoder.Decode(ToRecords(result))
	if e != nil {
		return fmt.Errorf("could not decode records into %s: %s", reflect.TypeOf(output), e)
	}
	return nil
}
