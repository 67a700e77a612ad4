package models

type AddToCartRequest struct {
	ProductID string   `json:"productId" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required"`
	Size      *float64 `json:"size"`
}

// CartAdjustRequest changes the quantity of an existing line by a signed
// delta; a delta at or below the negative of the current quantity removes
// the line.
type CartAdjustRequest struct {
	ProductID string   `json:"productId" binding:"required"`
	Size      *float64 `json:"size"`
	Delta     int      `json:"delta" binding:"required"`
}

// CartLineRef identifies one cart line without a quantity, for whole-line
// removal.
type CartLineRef struct {
	ProductID string   `json:"productId" binding:"required"`
	Size      *float64 `json:"size"`
}

type CheckoutRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Address2       string `json:"address2"`
	City           string `json:"city"`
	Province       string `json:"state"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
	PaymentMethod  string `json:"paymentMethod"`
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	Notes          string `json:"notes"`

	// Items passed directly from a "buy now" navigation; when empty the
	// checkout reads the persisted cart instead.
	Items []CartLineItem `json:"items"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
