package sdk

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/coinmetro-go/cmapi/api"
	"github.com/coinmetro-go/cmapi/model"
	"github.com/coinmetro-go/cmapi/support/utils"
)

// ensure that CoinmetroPublic conforms to the MarketDataAPI interface
var _ api.MarketDataAPI = &CoinmetroPublic{}

// the list each market data endpoint wraps its records in, empty when the body itself is the list
const (
	keyBook          = "book"
	keyTickHistory   = "tickHistory"
	keyLatestPrices  = "latestPrices"
	keyCandleHistory = "candleHistory"
	keyWholeBody     = ""
)

// publicResult builds the path from segments, none of which may be empty, and GETs it without credentials
func (c *CoinmetroPublic) publicResult(ctx context.Context, collectionKey string, filterBy model.FilterBy, segments ...string) (interface{}, error) {
	path, e := utils.MakePath(segments...)
	if e != nil {
		return nil, fmt.Errorf("invalid request path: %s", e)
	}
	return c.filteredResult(ctx, path, nil, collectionKey, filterBy)
}

// GetFullBook returns the order book snapshot of a pair
func (c *CoinmetroPublic) GetFullBook(ctx context.Context, pair string, filterBy model.FilterBy) (interface{}, error) {
	return c.publicResult(ctx, keyBook, filterBy, "exchange", "book", pair)
}

// GetBookUpdates returns the incremental order book updates of a pair since from
func (c *CoinmetroPublic) GetBookUpdates(ctx context.Context, pair string, from model.Timestamp, filterBy model.FilterBy) (interface{}, error) {
	return c.publicResult(ctx, keyWholeBody, filterBy, "exchange", "bookUpdates", pair, from.String())
}

// GetLatestTrades returns the trade ticks of a pair since from
func (c *CoinmetroPublic) GetLatestTrades(ctx context.Context, pair string, from model.Timestamp, filterBy model.FilterBy) (interface{}, error) {
	return c.publicResult(ctx, keyTickHistory, filterBy, "exchange", "ticks", pair, from.String())
}

// GetLatestPrices returns the latest prices across all pairs
func (c *CoinmetroPublic) GetLatestPrices(ctx context.Context, filterBy model.FilterBy) (interface{}, error) {
	return c.publicResult(ctx, keyLatestPrices, filterBy, "exchange", "prices")
}

// GetTradingMarkets returns the markets open for trading
func (c *CoinmetroPublic) GetTradingMarkets(ctx context.Context, filterBy model.FilterBy) (interface{}, error) {
	return c.publicResult(ctx, keyWholeBody, filterBy, "markets")
}

// GetTradingAssets returns the assets that can be traded
func (c *CoinmetroPublic) GetTradingAssets(ctx context.Context, filterBy model.FilterBy) (interface{}, error) {
	return c.publicResult(ctx, keyWholeBody, filterBy, "assets")
}

// GetHistoricalPrices returns the candles of a pair for a timeframe (e.g. time.Minute), optionally bounded by from and to.
// When only to is set the range starts at 0.
func (c *CoinmetroPublic) GetHistoricalPrices(
	ctx context.Context,
	pair string,
	timeframe time.Duration,
	from *model.Timestamp,
	to *model.Timestamp,
	filterBy model.FilterBy,
) (interface{}, error) {
	if timeframe < time.Millisecond {
		return nil, fmt.Errorf("timeframe needs to be at least a millisecond, was %s", timeframe)
	}

	timeframeMillis := strconv.FormatInt(int64(timeframe/time.Millisecond), 10)
	segments := []string{"open", "exchange", "candles", pair, timeframeMillis}
	if to != nil {
		fromSegment := "0"
		if from != nil {
			fromSegment = from.String()
		}
		segments = append(segments, fromSegment, to.String())
	} else if from != nil {
		segments = append(segments, from.String())
	}
	return c.publicResult(ctx, keyCandleHistory, filterBy, segments...)
}

// LatestPrices is GetLatestPrices decoded into typed values
func (c *CoinmetroPublic) LatestPrices(ctx context.Context) ([]model.LatestPrice, error) {
	result, e := c.GetLatestPrices(ctx, model.FilterBy{})
	if e != nil {
		return nil, e
	}

	prices := []model.LatestPrice{}
	e = model.DecodeRecords(result, &prices)
	if e != nil {
		return nil, fmt.Errorf("error decoding latest prices: %s", e)
	}
	return prices, nil
}

// TradingMarkets is GetTradingMarkets decoded into typed values
func (c *CoinmetroPublic) TradingMarkets(ctx context.Context) ([]model.Market, error) {
	result, e := c.GetTradingMarkets(ctx, model.FilterBy{})
	if e != nil {
		return nil, e
	}

	markets := []model.Market{}
	e = model.DecodeRecords(result, &markets)
	if e != nil {
		return nil, fmt.Errorf("error decoding markets: %s", e)
	}
	return markets, nil
}

// TradingAssets is GetTradingAssets decoded into typed values
func (c *CoinmetroPublic) TradingAssets(ctx context.Context) ([]model.AssetInfo, error) {
	result, e := c.GetTradingAssets(ctx, model.FilterBy{})
	if e != nil {
		return nil, e
	}

	assets := []model.AssetInfo{}
	e = model.DecodeRecords(result, &assets)
	if e != nil {
		return nil, fmt.Errorf("error decoding assets: %s", e)
	}
	return assets, nil
}
