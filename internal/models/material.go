package models

// Material is a preset specific heat capacity in J/(kg·K).
type Material struct {
	Name         string
	SpecificHeat float64
}

// Materials lists the presets in menu order. Choosing anything else means the
// user supplies the specific heat capacity.
var Materials = []Material{
	{Name: "Steel", SpecificHeat: 500},
	{Name: "Aluminium", SpecificHeat: 900},
	{Name: "Water", SpecificHeat: 4180},
	{Name: "Wood", SpecificHeat: 1700},
}
