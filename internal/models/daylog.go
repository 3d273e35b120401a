package models

// DayDetails is the realized calendar log for one ISO date, independent of
// the plan's week-relative workout slots.
type DayDetails struct {
	Workout *string  `json:"workout"`
	Miles   *float64 `json:"miles"`
	Pace    *string  `json:"pace"`
	Protein *int     `json:"protein"`
	Carbs   *int     `json:"carbs"`
	Fats    *int     `json:"fats"`
	Notes   *string  `json:"notes"`
}
