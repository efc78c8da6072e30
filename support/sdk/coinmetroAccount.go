package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"

	"github.com/coinmetro-go/cmapi/api"
	"github.com/coinmetro-go/cmapi/model"
	"github.com/coinmetro-go/cmapi/support/utils"
)

// ensure that Coinmetro conforms to both the AccountAPI and the MarketDataAPI interfaces
var _ api.AccountAPI = &Coinmetro{}
var _ api.MarketDataAPI = &Coinmetro{}

// DefaultPaymentMethod is used by InitiatePayment when no payment method is given
const DefaultPaymentMethod = "everypay"

type paymentForm struct {
	Amount        string `url:"amount"`
	Currency      string `url:"currency"`
	PaymentMethod string `url:"paymentMethod"`
	CardID        string `url:"cardId,omitempty"`
}

type withdrawForm struct {
	Amount   string `url:"amount"`
	Currency string `url:"currency"`
	Wallet   string `url:"wallet"`
}

func (c *Coinmetro) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": c.session.AuthorizationHeader(),
	}
}

func (c *Coinmetro) get(ctx context.Context, segments ...string) (interface{}, error) {
	path, e := utils.MakePath(segments...)
	if e != nil {
		return nil, fmt.Errorf("invalid request path: %s", e)
	}
	return c.jsonResult(ctx, http.MethodGet, path, nil, c.authHeaders())
}

func (c *Coinmetro) post(ctx context.Context, path string, form interface{}, extraHeaders map[string]string) (interface{}, error) {
	values, e := query.Values(form)
	if e != nil {
		return nil, fmt.Errorf("could not encode form for POST %s: %s", path, e)
	}

	headers := c.authHeaders()
	for k, v := range extraHeaders {
		headers[k] = v
	}
	return c.jsonResult(ctx, http.MethodPost, path, values, headers)
}

// InitiatePayment starts a deposit through a payment provider, paymentMethod defaults to DefaultPaymentMethod and cardID
// (a saved card) is optional
func (c *Coinmetro) InitiatePayment(ctx context.Context, amount decimal.Decimal, currency string, paymentMethod string, cardID string) (interface{}, error) {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	return c.post(ctx, "/payments", paymentForm{
		Amount:        amount.String(),
		Currency:      currency,
		PaymentMethod: paymentMethod,
		CardID:        cardID,
	}, nil)
}

// Withdraw sends funds to destination, see model.WithdrawalDestination for the formats
func (c *Coinmetro) Withdraw(ctx context.Context, amount decimal.Decimal, currency string, destination model.WithdrawalDestination) (interface{}, error) {
	return c.post(ctx, "/withdraw", withdrawForm{
		Amount:   amount.String(),
		Currency: currency,
		Wallet:   destination.String(),
	}, map[string]string{"X-OTP": c.otp})
}

// EnsureWallet returns the wallet of currency, creating it if the account does not have one yet
func (c *Coinmetro) EnsureWallet(ctx context.Context, currency string) (interface{}, error) {
	return c.get(ctx, "users", "wallets", currency)
}

// DeleteSavedAddress removes a saved withdrawal address
func (c *Coinmetro) DeleteSavedAddress(ctx context.Context, addressID string) error {
	path, e := utils.MakePath("withdraw", "saved-addresses", addressID)
	if e != nil {
		return fmt.Errorf("invalid request path: %s", e)
	}

	_, e = c.call(ctx, http.MethodDelete, path, nil, c.authHeaders())
	if e != nil {
		return e
	}
	c.logger.Infof("deleted saved address %s", addressID)
	return nil
}

// GetMarginInfo impl
func (c *Coinmetro) GetMarginInfo(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "exchange", "margin")
}

// GetSavedAddresses impl
func (c *Coinmetro) GetSavedAddresses(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "withdraw", "saved-addresses")
}

// GetSavedCards impl
func (c *Coinmetro) GetSavedCards(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "payments", "saved-cards")
}

// GetWallets impl
func (c *Coinmetro) GetWallets(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "users", "wallets")
}

// GetWalletHistory returns wallet movements since the cursor
func (c *Coinmetro) GetWalletHistory(ctx context.Context, since model.Timestamp) (interface{}, error) {
	return c.get(ctx, "users", "wallets", "history", since.String())
}

// GetBalances impl
func (c *Coinmetro) GetBalances(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "users", "balances")
}

// GetProfile impl
func (c *Coinmetro) GetProfile(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "account", "profile")
}

// GetOrderStatus impl
func (c *Coinmetro) GetOrderStatus(ctx context.Context, orderID string) (interface{}, error) {
	return c.get(ctx, "exchange", "orders", "status", orderID)
}

// GetOrderHistory returns orders since the cursor
func (c *Coinmetro) GetOrderHistory(ctx context.Context, since model.Timestamp) (interface{}, error) {
	return c.get(ctx, "exchange", "orders", "history", since.String())
}

// GetOpenOrders impl
func (c *Coinmetro) GetOpenOrders(ctx context.Context) (interface{}, error) {
	return c.get(ctx, "exchange", "orders", "active")
}

// GetOrderFills returns fills since the cursor
func (c *Coinmetro) GetOrderFills(ctx context.Context, since model.Timestamp) (interface{}, error) {
	return c.get(ctx, "exchange", "fills", since.String())
}
