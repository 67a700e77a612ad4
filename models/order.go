package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCashOnDelivery = "Cash on Delivery"
	PaymentCard           = "Card Payment"
)

const DefaultOrderNotes = "No additional notes"

type OrderLineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	Size      *float64        `json:"size"`
}

// OrderSubmission is the payload POSTed to the remote order endpoint. It is
// assembled fresh per checkout attempt and never persisted locally.
type OrderSubmission struct {
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Address2       string          `json:"address2"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Zip            string          `json:"zip"`
	Country        string          `json:"country"`
	Phone          string          `json:"phone"`
	PaymentMethod  string          `json:"paymentMethod"`
	CardNumber     string          `json:"cardNumber"`
	Expiry         string          `json:"expiry"`
	CVV            string          `json:"cvv"`
	CardHolderName string          `json:"cardHolderName"`
	Items          []OrderLineItem `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes"`
}

// Order is a placed order as returned by the remote API.
type Order struct {
	OrderID string          `json:"orderId"`
	Email   string          `json:"email"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Status  string          `json:"status"`
	Notes   string          `json:"notes"`
	Total   decimal.Decimal `json:"total"`
	Items   []OrderLineItem `json:"items"`
	Date    time.Time       `json:"date"`
}
