package usecase

import "github.com/chemaware/catalog/internal/domain"

// SeedProducts returns the embedded local product list. Each call returns a
// fresh copy.
func SeedProducts() []domain.Product {
	out := make([]domain.Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}

func local(id, name, usage, effects, safety string, eco bool, hazard int) domain.Product {
	return domain.Product{
		ID:      id,
		Source:  domain.SourceLocal,
		Name:    name,
		Usage:   usage,
		Effects: effects,
		Safety:  safety,
		Eco:     eco,
		Hazard:  hazard,
	}
}

var seedProducts = []domain.Product{
	local("p-01", "Ammonia", "Glass cleaners, fertilizers", "Irritates skin, eyes, lungs on prolonged exposure", "Use gloves & ventilate", false, 4),
	local("p-02", "Bleach (Sodium Hypochlorite)", "Disinfectant, whitening", "Corrosive fumes when mixed", "Never mix with ammonia or acids", false, 5),
	local("p-03", "Vinegar (Acetic Acid)", "Cleaner, food preservative", "Mildly acidic", "Avoid eyes; safe for many tasks", true, 1),
	local("p-04", "Baking Soda (Sodium Bicarbonate)", "Deodorizer, mild abrasive", "Generally safe", "Avoid aluminum surfaces", true, 1),
	local("p-05", "Phthalates", "Plasticizer in cosmetics / perfumes", "Linked to hormonal disruption", "Choose phthalate-free", false, 4),
	local("p-06", "Parabens", "Preservatives in cosmetics", "Possible endocrine disruptor", "Use paraben-free cosmetics", false, 3),
	local("p-07", "Sodium Lauryl Sulfate (SLS)", "Detergents, shampoos", "Can irritate skin/eyes", "Rinse thoroughly, prefer SLES-free if sensitive", false, 3),
	local("p-08", "Formaldehyde", "Preservative in some products", "Carcinogenic in high exposures", "Avoid products listing it", false, 5),
	local("p-09", "Triclosan", "Antibacterial soaps", "May harm aquatic life; resistance concerns", "Prefer triclosan-free", false, 4),
	local("p-10", "Ethanol", "Sanitizers and cleaners", "Flammable, drying to skin", "Keep away from open flames; moisturize hands", true, 2),
	local("p-11", "Isopropyl Alcohol", "Disinfectant, solvent", "Irritating; flammable", "Use with ventilation", true, 2),
	local("p-12", "Sodium Hydroxide (Lye)", "Drain cleaners", "Highly corrosive", "Use PPE; follow instructions", false, 5),
	local("p-13", "Hydrogen Peroxide", "Cleaners, antiseptic", "Irritant in concentrated forms", "Use proper dilution", true, 2),
	local("p-14", "Toluene", "Paint thinners, adhesives", "Neurotoxic at high exposure", "Use respirator & ventilate", false, 4),
	local("p-15", "Acetone", "Nail polish remover, solvent", "Irritates eyes/skin; flammable", "Use in ventilated area", false, 3),
	local("p-16", "Sodium Nitrite", "Food preservative (processed meats)", "In large amounts can be harmful", "Limit processed meats", false, 3),
	local("p-17", "Carbon Monoxide", "Byproduct of incomplete combustion (not a product per se)", "Deadly at high exposure", "Install CO detector", false, 5),
	local("p-18", "Benzene", "Industrial solvent; present in some emissions", "Carcinogenic", "Avoid occupational exposure", false, 5),
	local("p-19", "Sunscreen Oxybenzone", "Some sunscreens", "Possible endocrine disruption; aquatic toxicity", "Use reef-safe sunscreens", false, 3),
	local("p-20", "Lead (trace)", "Old paints, pipes", "Neurotoxin", "Test older homes, mitigate", false, 5),
}
