package domain

import (
	"fmt"
	"strings"
)

// PageSize is the fixed number of products shown per page
const PageSize = 12

// SortKey selects the ordering applied to the filtered view
type SortKey string

const (
	SortNone   SortKey = ""
	SortName   SortKey = "name"
	SortHazard SortKey = "hazard"
	SortSource SortKey = "source"
)

// SortKeys lists every sort key in the order a UI should cycle through them
var SortKeys = []SortKey{SortNone, SortName, SortHazard, SortSource}

// ParseSortKey converts user input to a SortKey. "none" and "" both mean no sorting.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "name":
		return SortName, nil
	case "hazard":
		return SortHazard, nil
	case "source":
		return SortSource, nil
	}
	return SortNone, fmt.Errorf("%w: unknown sort key %q", ErrInvalidRequest, s)
}

// String returns the display name of the sort key
func (k SortKey) String() string {
	if k == SortNone {
		return "none"
	}
	return string(k)
}

// ViewState holds the user-controlled inputs of the catalog view
type ViewState struct {
	SearchText string  `json:"searchText"`
	EcoOnly    bool    `json:"ecoOnly"`
	Sort       SortKey `json:"sort"`
	Page       int     `json:"page"` // 1-based, clamped when the view is computed
}

// Page is one render-ready page of the filtered and sorted catalog
type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Total      int       `json:"total"`
	HasPrev    bool      `json:"hasPrev"`
	HasNext    bool      `json:"hasNext"`
}
