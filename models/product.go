package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	AltNames      []string        `json:"altNames"`
	Description   string          `json:"description"`
	Images        []string        `json:"images"`
	Price         decimal.Decimal `json:"price"`
	LabelledPrice decimal.Decimal `json:"labelledPrice"`
	Sizes         []float64       `json:"sizes"`
	Stock         int             `json:"stock"`
	IsAvailable   bool            `json:"isAvailable"`
}

func (p Product) AsCartProduct() CartProduct {
	return CartProduct{
		ProductID: p.ProductID,
		Name:      p.Name,
		AltNames:  p.AltNames,
		Images:    p.Images,
		Price:     p.Price,
	}
}
