package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderType represents a type of an order, example market, limit, etc.
type OrderType string

// These are the order types the exchange documents
const (
	OrderTypeMarket    OrderType = "market"
	OrderTypeLimit     OrderType = "limit"
	OrderTypeStopLimit OrderType = "stoplimit"
)

// IsMarket returns true for market orders
func (o OrderType) IsMarket() bool {
	return o == OrderTypeMarket
}

// IsLimit returns true for limit orders, including stop-limit orders
func (o OrderType) IsLimit() bool {
	return o == OrderTypeLimit || o == OrderTypeStopLimit
}

// String is the stringer function
func (o OrderType) String() string {
	return string(o)
}

// TimeInForce controls how long an unfilled limit order stays on the book
type TimeInForce int8

// the exchange identifies these by number; TimeInForceUnset leaves the field out of the request
const (
	TimeInForceUnset             TimeInForce = 0
	TimeInForceGoodTillCancelled TimeInForce = 1
	TimeInForceImmediateOrCancel TimeInForce = 2
	TimeInForceGoodTillDate      TimeInForce = 3
	TimeInForceFillOrKill        TimeInForce = 4
)

// IsValid returns true for the unset value and the four values accepted by the exchange
func (t TimeInForce) IsValid() bool {
	return t >= TimeInForceUnset && t <= TimeInForceFillOrKill
}

// String is the stringer function
func (t TimeInForce) String() string {
	switch t {
	case TimeInForceUnset:
		return "unset"
	case TimeInForceGoodTillCancelled:
		return "GTC"
	case TimeInForceImmediateOrCancel:
		return "IOC"
	case TimeInForceGoodTillDate:
		return "GTD"
	case TimeInForceFillOrKill:
		return "FOK"
	}
	return fmt.Sprintf("error, unrecognized time in force (%d)", int8(t))
}

var timeInForceMap = map[string]TimeInForce{
	"GTC": TimeInForceGoodTillCancelled,
	"IOC": TimeInForceImmediateOrCancel,
	"GTD": TimeInForceGoodTillDate,
	"FOK": TimeInForceFillOrKill,
}

// TimeInForceFromString converts the common abbreviations (GTC, IOC, GTD, FOK) to a TimeInForce
func TimeInForceFromString(s string) (TimeInForce, error) {
	if t, ok := timeInForceMap[s]; ok {
		return t, nil
	}
	return TimeInForceUnset, fmt.Errorf("unrecognized time in force '%s'", s)
}

// validation errors returned by OrderRequest.Validate, inspect with errors.Cause
var (
	ErrMissingCurrency       = errors.New("both buyingCurrency and sellingCurrency are required")
	ErrMissingOrderType      = errors.New("orderType is required")
	ErrMarketOrderQuantity   = errors.New("market orders need exactly one of buyingQty or sellingQty")
	ErrLimitOrderQuantity    = errors.New("limit orders need both buyingQty and sellingQty")
	ErrMissingQuantity       = errors.New("at least one of buyingQty or sellingQty is required")
	ErrInvalidTimeInForce    = errors.New("invalid timeInForce")
	ErrMissingExpirationTime = errors.New("timeInForce GTD needs an expirationTime")
)

// OrderOptions are the optional qualifiers of an order, nil or zero values are left out of the request
type OrderOptions struct {
	TimeInForce    TimeInForce
	ExpirationTime *time.Time // mandatory when TimeInForce is GTD
	StopPrice      *decimal.Decimal
	Margin         *bool
	FillStyle      string // sent verbatim, controls whether one or both legs need to fill
}

// OrderRequest is everything needed to create an order on the exchange
type OrderRequest struct {
	OrderType       OrderType
	BuyingCurrency  string
	SellingCurrency string
	BuyingQty       *decimal.Decimal
	SellingQty      *decimal.Decimal
	Options         OrderOptions
}

// String is the stringer function
func (o OrderRequest) String() string {
	return fmt.Sprintf("OrderRequest[type=%s, buying=%s %s, selling=%s %s, timeInForce=%s]",
		o.OrderType,
		maybeDecimalString(o.BuyingQty),
		o.BuyingCurrency,
		maybeDecimalString(o.SellingQty),
		o.SellingCurrency,
		o.Options.TimeInForce,
	)
}

// Validate checks the shape of the request; amounts and currency codes are left for the exchange to validate
func (o OrderRequest) Validate() error {
	if o.OrderType == "" {
		return ErrMissingOrderType
	}
	if o.BuyingCurrency == "" || o.SellingCurrency == "" {
		return ErrMissingCurrency
	}

	hasBuying := o.BuyingQty != nil
	hasSelling := o.SellingQty != nil
	if o.OrderType.IsMarket() && hasBuying == hasSelling {
		return ErrMarketOrderQuantity
	} else if o.OrderType.IsLimit() && !(hasBuying && hasSelling) {
		return ErrLimitOrderQuantity
	} else if !hasBuying && !hasSelling {
		return ErrMissingQuantity
	}

	if !o.Options.TimeInForce.IsValid() {
		return errors.Wrapf(ErrInvalidTimeInForce, "value %d", int8(o.Options.TimeInForce))
	}
	if o.Options.TimeInForce == TimeInForceGoodTillDate && o.Options.ExpirationTime == nil {
		return ErrMissingExpirationTime
	}
	return nil
}

// OrderForm is the form-encoded body of a create order request
type OrderForm struct {
	OrderType       string `url:"orderType"`
	BuyingCurrency  string `url:"buyingCurrency"`
	SellingCurrency string `url:"sellingCurrency"`
	BuyingQty       string `url:"buyingQty,omitempty"`
	SellingQty      string `url:"sellingQty,omitempty"`
	TimeInForce     string `url:"timeInForce,omitempty"`
	ExpirationTime  string `url:"expirationTime,omitempty"`
	StopPrice       string `url:"stopPrice,omitempty"`
	Margin          string `url:"margin,omitempty"`
	FillStyle       string `url:"fillStyle,omitempty"`
}

// ToForm validates the request and converts it to the shape sent over the wire
func (o OrderRequest) ToForm() (*OrderForm, error) {
	e := o.Validate()
	if e != nil {
		return nil, e
	}

	form := &OrderForm{
		OrderType:       o.OrderType.String(),
		BuyingCurrency:  o.BuyingCurrency,
		SellingCurrency: o.SellingCurrency,
		BuyingQty:       maybeDecimalString(o.BuyingQty),
		SellingQty:      maybeDecimalString(o.SellingQty),
		StopPrice:       maybeDecimalString(o.Options.StopPrice),
		FillStyle:       o.Options.FillStyle,
	}
	if o.Options.TimeInForce != TimeInForceUnset {
		form.TimeInForce = strconv.Itoa(int(o.Options.TimeInForce))
	}
	if o.Options.ExpirationTime != nil {
		form.ExpirationTime = strconv.FormatInt(o.Options.ExpirationTime.UnixNano()/int64(time.Millisecond), 10)
	}
	if o.Options.Margin != nil {
		form.Margin = strconv.FormatBool(*o.Options.Margin)
	}
	return form, nil
}

func maybeDecimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
