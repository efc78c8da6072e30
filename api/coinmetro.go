package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinmetro-go/cmapi/model"
)

// MarketDataAPI is the set of endpoints that need no credential.
//
// Every method takes an optional filterBy. When it is nil the parsed response is returned as-is. When it is non-nil the
// endpoint's list of records is filtered with model.FilterRecords, which returns model.EmptyMatch() when nothing matches.
type MarketDataAPI interface {
	GetFullBook(ctx context.Context, pair string, filterBy model.FilterBy) (interface{}, error)

	GetBookUpdates(ctx context.Context, pair string, from model.Timestamp, filterBy model.FilterBy) (interface{}, error)

	GetLatestTrades(ctx context.Context, pair string, from model.Timestamp, filterBy model.FilterBy) (interface{}, error)

	GetLatestPrices(ctx context.Context, filterBy model.FilterBy) (interface{}, error)

	GetTradingMarkets(ctx context.Context, filterBy model.FilterBy) (interface{}, error)

	GetTradingAssets(ctx context.Context, filterBy model.FilterBy) (interface{}, error)

	GetHistoricalPrices(ctx context.Context, pair string, timeframe time.Duration, from *model.Timestamp, to *model.Timestamp, filterBy model.FilterBy) (interface{}, error)
}

// AccountAPI is the set of endpoints that need the bearer token handed out at login
type AccountAPI interface {
	Session() model.Session

	InitiatePayment(ctx context.Context, amount decimal.Decimal, currency string, paymentMethod string, cardID string) (interface{}, error)

	Withdraw(ctx context.Context, amount decimal.Decimal, currency string, destination model.WithdrawalDestination) (interface{}, error)

	EnsureWallet(ctx context.Context, currency string) (interface{}, error)

	DeleteSavedAddress(ctx context.Context, addressID string) error

	GetMarginInfo(ctx context.Context) (interface{}, error)

	GetSavedAddresses(ctx context.Context) (interface{}, error)

	GetSavedCards(ctx context.Context) (interface{}, error)

	GetWallets(ctx context.Context) (interface{}, error)

	GetWalletHistory(ctx context.Context, since model.Timestamp) (interface{}, error)

	GetBalances(ctx context.Context) (interface{}, error)

	GetProfile(ctx context.Context) (interface{}, error)

	GetOrderStatus(ctx context.Context, orderID string) (interface{}, error)

	GetOrderHistory(ctx context.Context, since model.Timestamp) (interface{}, error)

	GetOpenOrders(ctx context.Context) (interface{}, error)

	GetOrderFills(ctx context.Context, since model.Timestamp) (interface{}, error)

	OrderAPI
}

// OrderAPI is the part of AccountAPI that creates orders. Invalid orders are rejected before any request is made.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order model.OrderRequest) (interface{}, error)

	PlaceBuyOrder(ctx context.Context, orderType model.OrderType, buyingCurrency string, sellingCurrency string, buyingQty decimal.Decimal, opts model.OrderOptions) (interface{}, error)

	PlaceSellOrder(ctx context.Context, orderType model.OrderType, buyingCurrency string, sellingCurrency string, sellingQty decimal.Decimal, opts model.OrderOptions) (interface{}, error)

	PlaceLimitOrder(ctx context.Context, orderType model.OrderType, buyingCurrency string, sellingCurrency string, buyingQty decimal.Decimal, sellingQty decimal.Decimal, opts model.OrderOptions) (interface{}, error)
}
