package dto

import "time"

// CreateProductRequest entrada para crear un producto. Stock inicial no puede ser negativo.
type CreateProductRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Unit     string `json:"unit" form:"unit" validate:"required,min=1,max=50"`
	Supplier string `json:"supplier" form:"supplier" validate:"required,min=1,max=100"`
	Stock    int64  `json:"stock" form:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Supplier  string    `json:"supplier"`
	Stock     int64     `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse listado completo de productos (orden de inserción).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
