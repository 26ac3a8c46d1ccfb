// Package product provides the product listing used by the catalog API.
package product

import (
	"context"
	"errors"

	"github.com/janisto/catalog-lambda/internal/platform/pagination"
)

// CursorType tags cursors issued by this package.
const CursorType = "product"

// ErrInvalidCursor is returned when a cursor was not issued by this service.
var ErrInvalidCursor = errors.New("invalid product cursor")

// Product is a catalog entry.
type Product struct {
	ID          string `json:"id"          dynamodbav:"id"          example:"prd_01HZX3"`
	Name        string `json:"name"        dynamodbav:"name"        example:"Caneca azul"`
	Description string `json:"description" dynamodbav:"description" example:"Caneca de cerâmica 300ml"`
	PriceCents  int64  `json:"priceCents"  dynamodbav:"priceCents"  example:"3990"`
	SellerID    string `json:"sellerId"    dynamodbav:"sellerId"    example:"user-1"`
	CreatedAt   string `json:"createdAt"   dynamodbav:"createdAt"   example:"2025-01-15T10:30:00.000Z"`
}

// Page is one page of the product listing. Items is never nil.
type Page struct {
	Items      []Product `json:"items"`
	NextCursor *string   `json:"nextCursor"`
}

// Service lists products.
type Service interface {
	// List returns up to limit products after the position encoded in cursor.
	// A nil cursor starts from the beginning.
	List(ctx context.Context, limit int, cursor *string) (*Page, error)
}

// decodeCursor parses an optional cursor token and checks it belongs to this service.
func decodeCursor(cursor *string) (pagination.Cursor, error) {
	if cursor == nil {
		return pagination.Cursor{}, nil
	}
	c, err := pagination.DecodeCursor(*cursor)
	if err != nil || c.Type != CursorType || c.Value == "" {
		return pagination.Cursor{}, ErrInvalidCursor
	}
	return c, nil
}

func encodeCursor(value string) *string {
	token := pagination.Cursor{Type: CursorType, Value: value}.Encode()
	return &token
}
