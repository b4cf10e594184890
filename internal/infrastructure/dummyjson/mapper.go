package dummyjson

import (
	"hash/fnv"

	"github.com/chemaware/catalog/internal/domain"
)

// Fallback text for fields the remote API may omit
const (
	FallbackName    = "Unnamed product"
	FallbackUsage   = "Various household uses"
	FallbackEffects = "See product label for safety details"
	SafetyAdvisory  = "Follow label instructions. Keep away from children."
)

// MapToProduct converts a remote record to our domain Product. Hazard and eco
// are derived from a hash of the remote id so the same record always maps the
// same way.
func MapToProduct(rec domain.RemoteRecord) domain.Product {
	p := domain.Product{
		ID:          "api-" + rec.ID,
		Source:      domain.SourceAPI,
		Name:        firstNonEmpty(rec.Title, FallbackName),
		Usage:       firstNonEmpty(rec.Category, rec.Brand, FallbackUsage),
		Effects:     firstNonEmpty(rec.Description, FallbackEffects),
		Safety:      SafetyAdvisory,
		Description: rec.Description,
	}
	if len(rec.Images) > 0 {
		p.Image = rec.Images[0]
	}
	p.Hazard, p.Eco = DeriveRating(rec.ID)
	return p
}

// MapAll converts every record, preserving order
func MapAll(records []domain.RemoteRecord) []domain.Product {
	out := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, MapToProduct(rec))
	}
	return out
}

// DeriveRating returns a hazard level in [1,5] and an eco flag for a remote
// id. Roughly 40% of ids are eco.
func DeriveRating(id string) (hazard int, eco bool) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum32()
	hazard = int(sum%5) + 1
	eco = (sum/5)%10 >= 6
	return hazard, eco
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
