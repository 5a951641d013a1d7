package models

import "time"

// CoolingScenario holds the inputs of a cooling-time calculation.
// Temperatures are in °C, K in 1/min.
type CoolingScenario struct {
	InitialTempC     float64 `json:"initial_temp_c"`
	EnvironmentTempC float64 `json:"environment_temp_c"`
	K                float64 `json:"k"`
	TargetTempC      float64 `json:"target_temp_c"`
}

// MaterialGeometry holds the inputs used to derive a cooling constant, all in
// canonical units: H in W/(m²·K), Area in m², Mass in kg, SpecificHeat in J/(kg·K).
type MaterialGeometry struct {
	H            float64 `json:"h"`
	Area         float64 `json:"area"`
	Mass         float64 `json:"mass"`
	SpecificHeat float64 `json:"specific_heat"`
}

// LogEntry is one completed cooling-time calculation as written to the log file.
type LogEntry struct {
	Timestamp time.Time
	Scenario  CoolingScenario
	Time      float64 // in Unit
	Unit      string  // minutes | seconds | hours
}
