package sdk

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/coinmetro-go/cmapi/model"
)

const pathCreateOrder = "/exchange/orders/create"

// CreateOrder validates order and submits it, an invalid order fails before anything is sent
func (c *Coinmetro) CreateOrder(ctx context.Context, order model.OrderRequest) (interface{}, error) {
	form, e := order.ToForm()
	if e != nil {
		return nil, errors.Wrapf(e, "invalid order %s", order)
	}

	return c.post(ctx, pathCreateOrder, form, nil)
}

// PlaceBuyOrder places an order that specifies how much of buyingCurrency to buy
func (c *Coinmetro) PlaceBuyOrder(
	ctx context.Context,
	orderType model.OrderType,
	buyingCurrency string,
	sellingCurrency string,
	buyingQty decimal.Decimal,
	opts model.OrderOptions,
) (interface{}, error) {
	return c.CreateOrder(ctx, model.OrderRequest{
		OrderType:       orderType,
		BuyingCurrency:  buyingCurrency,
		SellingCurrency: sellingCurrency,
		BuyingQty:       &buyingQty,
		Options:         opts,
	})
}

// PlaceSellOrder places an order that specifies how much of sellingCurrency to sell
func (c *Coinmetro) PlaceSellOrder(
	ctx context.Context,
	orderType model.OrderType,
	buyingCurrency string,
	sellingCurrency string,
	sellingQty decimal.Decimal,
	opts model.OrderOptions,
) (interface{}, error) {
	return c.CreateOrder(ctx, model.OrderRequest{
		OrderType:       orderType,
		BuyingCurrency:  buyingCurrency,
		SellingCurrency: sellingCurrency,
		SellingQty:      &sellingQty,
		Options:         opts,
	})
}

// PlaceLimitOrder places an order with both quantities set, the ratio between them is the limit price.
// orderType is usually model.OrderTypeLimit, or model.OrderTypeStopLimit together with opts.StopPrice.
// By default the order counts as filled once either quantity is filled, opts.FillStyle changes that.
func (c *Coinmetro) PlaceLimitOrder(
	ctx context.Context,
	orderType model.OrderType,
	buyingCurrency string,
	sellingCurrency string,
	buyingQty decimal.Decimal,
	sellingQty decimal.Decimal,
	opts model.OrderOptions,
) (interface{}, error) {
	return c.CreateOrder(ctx, model.OrderRequest{
		OrderType:       orderType,
		BuyingCurrency:  buyingCurrency,
		SellingCurrency: sellingCurrency,
		BuyingQty:       &buyingQty,
		SellingQty:      &sellingQty,
		Options:         opts,
	})
}
