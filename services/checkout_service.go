package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shoe-store/models"
	"shoe-store/utils"
)

// ErrAuthRequired means the caller's session could not be confirmed with the
// remote API; the UI should redirect to sign-in rather than retry.
var ErrAuthRequired = errors.New("authentication required")

// ValidationError is a pre-submission failure with a user-facing message.
// Nothing has been sent to the remote API when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type orderAPI interface {
	GetProfile(ctx context.Context, token string) (*models.UserProfile, error)
	CreateOrder(ctx context.Context, token string, order models.OrderSubmission) error
}

type confirmationMailer interface {
	SendOrderConfirmation(toEmail, name string, itemCount int, total decimal.Decimal) error
}

// CheckoutService turns the current cart snapshot plus the submitted
// shipping/payment details into a placed order, clearing the cart only after
// the remote API confirms success.
type CheckoutService struct {
	carts     *CartService
	api       orderAPI
	mailer    confirmationMailer
	cardDelay time.Duration
}

func NewCheckoutService(carts *CartService, api orderAPI, mailer confirmationMailer, cardDelay time.Duration) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		api:       api,
		mailer:    mailer,
		cardDelay: cardDelay,
	}
}

// PlaceOrder runs one checkout attempt. Any failure is terminal for the
// attempt and leaves the cart untouched so the user can retry.
func (s *CheckoutService) PlaceOrder(ctx context.Context, token, cartKey string, req models.CheckoutRequest) (*models.OrderSubmission, error) {
	profile, err := s.api.GetProfile(ctx, token)
	if err != nil {
		return nil, ErrAuthRequired
	}

	cart := req.Items
	if len(cart) == 0 {
		cart, err = s.carts.GetCart(ctx, cartKey)
		if err != nil {
			return nil, err
		}
	}

	if err := Validate(req, cart); err != nil {
		return nil, err
	}

	if req.PaymentMethod == models.PaymentCard {
		// Placeholder for a real payment gateway round trip.
		select {
		case <-time.After(s.cardDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	order := BuildOrder(profile.Email, req, cart)

	if err := s.api.CreateOrder(ctx, token, order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, cartKey); err != nil {
		// The order went through; a stale local cart is recoverable.
		log.Printf("failed to clear cart after order: %v", err)
	}

	if s.mailer != nil {
		go func(email, name string, count int, total decimal.Decimal) {
			if err := s.mailer.SendOrderConfirmation(email, name, count, total); err != nil {
				log.Printf("order confirmation email failed: %v", err)
			}
		}(order.Email, order.Name, countItems(cart), order.Total)
	}

	return &order, nil
}

// Validate applies the checkout rules fail-fast. The empty-cart check comes
// before any field-level check: an empty cart blocks submission regardless of
// form validity.
func Validate(req models.CheckoutRequest, cart []models.CartLineItem) error {
	if len(cart) == 0 {
		return &ValidationError{Message: "Your cart is empty."}
	}
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Message: "Please enter your full name."}
	}
	if strings.TrimSpace(req.Address) == "" {
		return &ValidationError{Message: "Address line 1 is required."}
	}
	if strings.TrimSpace(req.City) == "" {
		return &ValidationError{Message: "City is required."}
	}
	if strings.TrimSpace(req.Province) == "" {
		return &ValidationError{Message: "Select your province."}
	}
	if strings.TrimSpace(req.Zip) == "" {
		return &ValidationError{Message: "Postal code is required."}
	}
	if strings.TrimSpace(req.Country) == "" {
		return &ValidationError{Message: "Country is required."}
	}
	if strings.TrimSpace(req.Phone) == "" {
		return &ValidationError{Message: "Phone number is required."}
	}
	if req.PaymentMethod != models.PaymentCashOnDelivery && req.PaymentMethod != models.PaymentCard {
		return &ValidationError{Message: "Select a payment method."}
	}

	if req.PaymentMethod == models.PaymentCard {
		if !utils.ValidCardNumber(req.CardNumber) {
			return &ValidationError{Message: "Enter a valid 16-digit card number."}
		}
		if !utils.ValidExpiryFormat(req.Expiry) {
			return &ValidationError{Message: "Enter a valid expiry in MM/YY format."}
		}
		if _, ok := utils.ExpiryMonth(req.Expiry); !ok {
			return &ValidationError{Message: "Expiry month must be between 01 and 12."}
		}
		if !utils.ValidCVV(req.CVV) {
			return &ValidationError{Message: "Enter a valid CVV."}
		}
		if strings.TrimSpace(req.CardHolderName) == "" {
			return &ValidationError{Message: "Enter the card holder name."}
		}
	}

	return nil
}

// BuildOrder projects the validated cart snapshot and form fields into the
// payload the remote order endpoint expects. Shipping is currently always
// free, so the total equals the item subtotal.
func BuildOrder(accountEmail string, req models.CheckoutRequest, cart []models.CartLineItem) models.OrderSubmission {
	items := make([]models.OrderLineItem, 0, len(cart))
	total := decimal.Zero
	for _, line := range cart {
		items = append(items, models.OrderLineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Qty:       line.Quantity,
			Size:      line.Size,
		})
		total = total.Add(line.Subtotal())
	}

	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		notes = models.DefaultOrderNotes
	}

	return models.OrderSubmission{
		Email:          strings.ToLower(accountEmail),
		Name:           strings.TrimSpace(req.Name),
		Address:        strings.TrimSpace(req.Address),
		Address2:       strings.TrimSpace(req.Address2),
		City:           strings.TrimSpace(req.City),
		State:          strings.TrimSpace(req.Province),
		Zip:            strings.TrimSpace(req.Zip),
		Country:        strings.TrimSpace(req.Country),
		Phone:          strings.TrimSpace(req.Phone),
		PaymentMethod:  req.PaymentMethod,
		CardNumber:     utils.NormalizeCardNumber(req.CardNumber),
		Expiry:         strings.TrimSpace(req.Expiry),
		CVV:            strings.TrimSpace(req.CVV),
		CardHolderName: strings.TrimSpace(req.CardHolderName),
		Items:          items,
		Total:          total,
		Notes:          notes,
	}
}
