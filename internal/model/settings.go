package model

// Settings holds the packing configuration for one optimization run.
type Settings struct {
	// Gap is the cutting gap reserved around each placed panel in mm,
	// accounting for the width of the cut itself.
	Gap float64 `json:"gap"`
	// AllowRotation permits placing panels rotated by 90 degrees.
	AllowRotation bool `json:"allow_rotation"`
	// Refine enables the population-based refinement pass when non-nil.
	Refine *RefineConfig `json:"refine,omitempty"`
}

// RefineConfig parameterizes the population-based refinement layer.
type RefineConfig struct {
	PopulationSize int `json:"population_size"`
	Generations    int `json:"generations"`
	// Seed drives every random decision of the refiner so runs are
	// reproducible.
	Seed int64 `json:"seed"`
}

func DefaultSettings() Settings {
	return Settings{
		Gap:           5.0,
		AllowRotation: true,
	}
}

func DefaultRefineConfig() RefineConfig {
	return RefineConfig{
		PopulationSize: 5,
		Generations:    20,
		Seed:           1,
	}
}
