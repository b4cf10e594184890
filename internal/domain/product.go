package domain

import "fmt"

// Source identifies where a product record came from
type Source string

const (
	SourceLocal Source = "local"
	SourceAPI   Source = "api"
)

// Product represents a single household/chemical product record
type Product struct {
	ID          string `json:"id"`
	Source      Source `json:"source"`
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Effects     string `json:"effects"`
	Safety      string `json:"safety"`
	Description string `json:"description"`
	Eco         bool   `json:"eco"`
	Hazard      int    `json:"hazard"` // 1 (low) to 5 (high), 0 when unknown
	Image       string `json:"image"`
}

// Identifier returns the catalog-wide key "source:id"
func (p Product) Identifier() string {
	return MakeIdentifier(p.Source, p.ID)
}

// MakeIdentifier builds the catalog-wide key for a source and id
func MakeIdentifier(source Source, id string) string {
	return fmt.Sprintf("%s:%s", source, id)
}

// RemoteRecord is a loosely-typed product row extracted from the remote API.
// Every field other than ID may be empty.
type RemoteRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// ProductDetail is the render-ready details view of one product
type ProductDetail struct {
	Product   Product `json:"product"`
	Favorite  bool    `json:"favorite"`
	Comparing bool    `json:"comparing"`
}
