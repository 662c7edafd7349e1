package engine

import (
	"fmt"

	"github.com/packwise/glasscut/internal/model"
)

// Scenario defines a named settings variant to compare.
type Scenario struct {
	Name     string
	Settings model.Settings
}

// ScenarioResult holds the packing outcome and summary for one scenario.
type ScenarioResult struct {
	Scenario Scenario
	Solution model.Solution
	Report   Report
	Err      error
}

// CompareScenarios runs the same cut job under each scenario's settings and
// returns the results in scenario order, enabling side-by-side comparison of
// parameters such as gap width or refinement.
func CompareScenarios(scenarios []Scenario, parts []model.Part, stocks []model.StockSheet) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		solution, err := New(scenario.Settings).Pack(parts, stocks)
		results = append(results, ScenarioResult{
			Scenario: scenario,
			Solution: solution,
			Report:   Summarize(solution),
			Err:      err,
		})
	}
	return results
}

// BuildDefaultScenarios derives what-if variants from the given settings:
// the other algorithm mode, a halved cutting gap, and rotation toggled off.
func BuildDefaultScenarios(base model.Settings) []Scenario {
	scenarios := []Scenario{
		{Name: "Current Settings", Settings: base},
	}

	alt := base
	if base.Refine == nil {
		cfg := model.DefaultRefineConfig()
		alt.Refine = &cfg
		scenarios = append(scenarios, Scenario{Name: "Refined", Settings: alt})
	} else {
		alt.Refine = nil
		scenarios = append(scenarios, Scenario{Name: "Greedy Only", Settings: alt})
	}

	if base.Gap > 1.0 {
		tight := base
		tight.Gap = base.Gap * 0.5
		scenarios = append(scenarios, Scenario{
			Name:     fmt.Sprintf("Gap %.1fmm (half)", tight.Gap),
			Settings: tight,
		})
	}

	if base.AllowRotation {
		fixed := base
		fixed.AllowRotation = false
		scenarios = append(scenarios, Scenario{Name: "No Rotation", Settings: fixed})
	}

	return scenarios
}
