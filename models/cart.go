package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The remote shop API is a JS service and expects prices as bare JSON
	// numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// CartLineItem is one row of the locally persisted cart. Price and display
// metadata are snapshotted at add time and never refreshed from the catalog.
type CartLineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	AltNames  []string        `json:"altNames,omitempty"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      *float64        `json:"size"`
}

// CartKey is the composite identity of a cart line. Two lines with the same
// product but different sizes are distinct; a line without a size is distinct
// from any sized line of the same product.
type CartKey struct {
	ProductID string
	Size      float64
	HasSize   bool
}

func KeyFor(productID string, size *float64) CartKey {
	k := CartKey{ProductID: productID}
	if size != nil {
		k.Size = *size
		k.HasSize = true
	}
	return k
}

func (i CartLineItem) Key() CartKey {
	return KeyFor(i.ProductID, i.Size)
}

func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartProduct is the input to an add-to-cart mutation. It is built either
// from a catalog product (product page) or from an existing cart line
// (quantity adjustment on the cart and checkout views).
type CartProduct struct {
	ProductID string
	Name      string
	AltNames  []string
	Image     string
	Images    []string
	Price     decimal.Decimal
	Size      *float64
}

// PrimaryImage resolves the snapshot image: first catalog image when
// available, otherwise the single image field.
func (p CartProduct) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

func (i CartLineItem) AsCartProduct() CartProduct {
	return CartProduct{
		ProductID: i.ProductID,
		Name:      i.Name,
		AltNames:  i.AltNames,
		Image:     i.Image,
		Price:     i.Price,
		Size:      i.Size,
	}
}
