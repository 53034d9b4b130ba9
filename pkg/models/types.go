package models

import "time"

type Category struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

type Product struct {
	ID              string         `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	Description     string         `json:"description,omitempty" yaml:"description,omitempty"`
	Price           float64        `json:"price" yaml:"price"`
	SoldPrice       *float64       `json:"sold_price,omitempty" yaml:"sold_price,omitempty"`
	Images          []string       `json:"images,omitempty" yaml:"images,omitempty"`
	TotalQuantity   int            `json:"total_quantity" yaml:"total_quantity"`
	TotalOrders     int            `json:"total_orders" yaml:"total_orders"`
	Slug            string         `json:"slug" yaml:"slug"`
	Meta            map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty" yaml:"meta_description,omitempty"`
	CategoryID      string         `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	CategoryName    string         `json:"category,omitempty" yaml:"category,omitempty"`
	CreatedAt       time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" yaml:"updated_at"`
}

// DisplayPrice returns the sale price when one is set, otherwise the
// regular price. The storefront always shows this value.
func (p Product) DisplayPrice() float64 {
	if p.SoldPrice != nil {
		return *p.SoldPrice
	}
	return p.Price
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// HeroSlide is one panel of the storefront hero carousel.
type HeroSlide struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
	CTA      string `yaml:"cta"`
}
