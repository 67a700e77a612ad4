package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/models"
)

type fakeShopAPI struct {
	profile    *models.UserProfile
	profileErr error
	createErr  error

	createCalls int
	lastToken   string
	lastOrder   models.OrderSubmission
}

func (f *fakeShopAPI) GetProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeShopAPI) CreateOrder(ctx context.Context, token string, order models.OrderSubmission) error {
	f.createCalls++
	f.lastToken = token
	f.lastOrder = order
	return f.createErr
}

func newTestCheckout(t *testing.T) (*CheckoutService, *CartService, *fakeShopAPI) {
	t.Helper()
	carts, _ := newTestCartService()
	api := &fakeShopAPI{
		profile: &models.UserProfile{
			FirstName: "Nadia",
			LastName:  "Putri",
			Email:     "Nadia.Putri@Example.com",
			Phone:     "0812000111",
		},
	}
	return NewCheckoutService(carts, api, nil, time.Millisecond), carts, api
}

func validRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		Name:          "Nadia Putri",
		Address:       "Jl. Sudirman 12",
		City:          "Jakarta",
		Province:      "DKI Jakarta",
		Zip:           "10220",
		Country:       "Indonesia",
		Phone:         "0812000111",
		PaymentMethod: models.PaymentCashOnDelivery,
	}
}

func seedCart(t *testing.T, carts *CartService, key string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, carts.AddToCart(ctx, key, testProduct("P1", 100), 2, sizePtr(9)))
	require.NoError(t, carts.AddToCart(ctx, key, testProduct("P2", 250), 1, sizePtr(10)))
}

func TestPlaceOrderRequiresAuthentication(t *testing.T) {
	svc, carts, api := newTestCheckout(t)
	api.profileErr = errors.New("401 from remote")
	seedCart(t, carts, "cart:s1")

	_, err := svc.PlaceOrder(context.Background(), "bad-token", "cart:s1", validRequest())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, api.createCalls)
}

func TestPlaceOrderBlocksEmptyCartBeforeFieldChecks(t *testing.T) {
	svc, _, api := newTestCheckout(t)

	// Every form field is blank too; the empty-cart message must still win.
	_, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", models.CheckoutRequest{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Your cart is empty.", verr.Message)
	assert.Zero(t, api.createCalls)
}

func TestPlaceOrderBlockedSubmissionsNeverReachTheAPI(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.CheckoutRequest)
		message string
	}{
		{"missing name", func(r *models.CheckoutRequest) { r.Name = "  " }, "Please enter your full name."},
		{"missing address", func(r *models.CheckoutRequest) { r.Address = "" }, "Address line 1 is required."},
		{"missing city", func(r *models.CheckoutRequest) { r.City = "" }, "City is required."},
		{"missing province", func(r *models.CheckoutRequest) { r.Province = "" }, "Select your province."},
		{"missing zip", func(r *models.CheckoutRequest) { r.Zip = "" }, "Postal code is required."},
		{"missing country", func(r *models.CheckoutRequest) { r.Country = "" }, "Country is required."},
		{"missing phone", func(r *models.CheckoutRequest) { r.Phone = "" }, "Phone number is required."},
		{"unknown payment method", func(r *models.CheckoutRequest) { r.PaymentMethod = "Barter" }, "Select a payment method."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, carts, api := newTestCheckout(t)
			seedCart(t, carts, "cart:s1")

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Message)
			assert.Zero(t, api.createCalls)

			// A blocked attempt leaves the cart intact.
			cart, cerr := carts.GetCart(context.Background(), "cart:s1")
			require.NoError(t, cerr)
			assert.Len(t, cart, 2)
		})
	}
}

func TestPlaceOrderCardValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.CheckoutRequest)
		message string
	}{
		{"short card number", func(r *models.CheckoutRequest) { r.CardNumber = "4111 1111" }, "Enter a valid 16-digit card number."},
		{"letters in card number", func(r *models.CheckoutRequest) { r.CardNumber = "4111 1111 1111 abcd" }, "Enter a valid 16-digit card number."},
		{"bad expiry format", func(r *models.CheckoutRequest) { r.Expiry = "1/2025" }, "Enter a valid expiry in MM/YY format."},
		{"expiry month thirteen", func(r *models.CheckoutRequest) { r.Expiry = "13/25" }, "Expiry month must be between 01 and 12."},
		{"expiry month zero", func(r *models.CheckoutRequest) { r.Expiry = "00/25" }, "Expiry month must be between 01 and 12."},
		{"short cvv", func(r *models.CheckoutRequest) { r.CVV = "12" }, "Enter a valid CVV."},
		{"missing holder name", func(r *models.CheckoutRequest) { r.CardHolderName = " " }, "Enter the card holder name."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, carts, api := newTestCheckout(t)
			seedCart(t, carts, "cart:s1")

			req := validRequest()
			req.PaymentMethod = models.PaymentCard
			req.CardNumber = "4111 1111 1111 1111"
			req.Expiry = "08/27"
			req.CVV = "123"
			req.CardHolderName = "Nadia Putri"
			tc.mutate(&req)

			_, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Message)
			assert.Zero(t, api.createCalls)
		})
	}
}

func TestPlaceOrderSuccessClearsCartAndNotifiesOnce(t *testing.T) {
	svc, carts, api := newTestCheckout(t)
	seedCart(t, carts, "cart:s1")

	notifications := 0
	unsubscribe := carts.Subscribe("cart:s1", func(int) { notifications++ })
	defer unsubscribe()

	req := validRequest()
	req.Notes = "  "

	order, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", req)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, "token", api.lastToken)
	assert.Equal(t, "nadia.putri@example.com", api.lastOrder.Email)
	assert.Equal(t, models.DefaultOrderNotes, api.lastOrder.Notes)
	require.Len(t, api.lastOrder.Items, 2)
	assert.Equal(t, "P1", api.lastOrder.Items[0].ProductID)
	assert.Equal(t, 2, api.lastOrder.Items[0].Qty)
	assert.True(t, api.lastOrder.Total.Equal(decimal.NewFromInt(2*100+1*250)), "got total %s", api.lastOrder.Total)

	cart, err := carts.GetCart(context.Background(), "cart:s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.Equal(t, 1, notifications)
}

func TestPlaceOrderCardPaymentStripsSpacesFromCardNumber(t *testing.T) {
	svc, carts, api := newTestCheckout(t)
	seedCart(t, carts, "cart:s1")

	req := validRequest()
	req.PaymentMethod = models.PaymentCard
	req.CardNumber = "4111 1111 1111 1111"
	req.Expiry = "08/27"
	req.CVV = "123"
	req.CardHolderName = "Nadia Putri"

	_, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", req)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", api.lastOrder.CardNumber)
}

func TestPlaceOrderCardPaymentHonorsContextCancellation(t *testing.T) {
	carts, _ := newTestCartService()
	api := &fakeShopAPI{profile: &models.UserProfile{Email: "a@b.c"}}
	svc := NewCheckoutService(carts, api, nil, time.Minute)
	seedCart(t, carts, "cart:s1")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	req := validRequest()
	req.PaymentMethod = models.PaymentCard
	req.CardNumber = "4111 1111 1111 1111"
	req.Expiry = "08/27"
	req.CVV = "123"
	req.CardHolderName = "Nadia Putri"

	_, err := svc.PlaceOrder(ctx, "token", "cart:s1", req)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, api.createCalls)
}

func TestPlaceOrderRemoteFailureLeavesCartIntact(t *testing.T) {
	svc, carts, api := newTestCheckout(t)
	api.createErr = errors.New("product out of stock")
	seedCart(t, carts, "cart:s1")

	notifications := 0
	unsubscribe := carts.Subscribe("cart:s1", func(int) { notifications++ })
	defer unsubscribe()

	_, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", validRequest())
	require.Error(t, err)
	assert.Equal(t, 1, api.createCalls)

	cart, cerr := carts.GetCart(context.Background(), "cart:s1")
	require.NoError(t, cerr)
	assert.Len(t, cart, 2)
	assert.Zero(t, notifications)
}

func TestPlaceOrderPrefersSubmittedItemsOverStoredCart(t *testing.T) {
	svc, carts, api := newTestCheckout(t)

	req := validRequest()
	req.Items = []models.CartLineItem{
		{
			ProductID: "P9",
			Name:      "Boardwalk Slide",
			Image:     "https://cdn.example.com/bs.jpg",
			Price:     decimal.NewFromInt(75),
			Quantity:  1,
		},
	}

	order, err := svc.PlaceOrder(context.Background(), "token", "cart:s1", req)
	require.NoError(t, err)

	assert.Equal(t, 1, api.createCalls)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "P9", order.Items[0].ProductID)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(75)))

	// The server-side cart was empty and stays empty.
	cart, err := carts.GetCart(context.Background(), "cart:s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}
