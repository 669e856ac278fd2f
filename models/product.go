package models

import "time"

// DefaultProductImage is used when a product is created without an image URL.
const DefaultProductImage = "https://via.placeholder.com/300"

// Product is a catalog entity of the e-commerce variant.
//
// Products carry no ownership information: any authenticated user may
// create, update, or delete any product. This asymmetry with [Tutorial]
// is intentional and part of the API contract.
type Product struct {
	ProductID   int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int64     `json:"stock"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductUpdate describes a partial update of a product.
// Nil fields are left untouched by the persistence layer.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int64   `json:"stock"`
	Image       *string  `json:"image"`
}

// Empty reports whether the update carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Category == nil && u.Stock == nil && u.Image == nil
}
