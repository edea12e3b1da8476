package models

import "fmt"

// Category partitions a facility's documents into independent folder trees.
// Folders and files never reference nodes outside their own category.
type Category string

const (
	CategoryMain                Category = "main"
	CategoryContracts           Category = "contracts"
	CategoryLifelineElectrical  Category = "lifeline_electrical"
	CategoryLifelineGas         Category = "lifeline_gas"
	CategoryLifelineWater       Category = "lifeline_water"
	CategoryLifelineElevator    Category = "lifeline_elevator"
	CategoryLifelineHVAC        Category = "lifeline_hvac"
	CategoryMaintenanceExterior Category = "maintenance_exterior"
	CategoryMaintenanceInterior Category = "maintenance_interior"
)

var knownCategories = map[Category]bool{
	CategoryMain:                true,
	CategoryContracts:           true,
	CategoryLifelineElectrical:  true,
	CategoryLifelineGas:         true,
	CategoryLifelineWater:       true,
	CategoryLifelineElevator:    true,
	CategoryLifelineHVAC:        true,
	CategoryMaintenanceExterior: true,
	CategoryMaintenanceInterior: true,
}

// ParseCategory maps a request parameter to a Category. The empty string
// means the main document tree.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryMain, nil
	}
	c := Category(s)
	if !knownCategories[c] {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

func (c Category) IsValid() bool {
	return knownCategories[c]
}

func (c Category) String() string {
	return string(c)
}

// Categories returns the known set in a stable order, for listing responses.
func Categories() []Category {
	return []Category{
		CategoryMain,
		CategoryContracts,
		CategoryLifelineElectrical,
		CategoryLifelineGas,
		CategoryLifelineWater,
		CategoryLifelineElevator,
		CategoryLifelineHVAC,
		CategoryMaintenanceExterior,
		CategoryMaintenanceInterior,
	}
}
