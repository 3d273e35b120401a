package models

// UserSettings is the per-user singleton driving every derived stat.
// RaceDate and TrainingStartDate are YYYY-MM-DD strings, nil when unset.
type UserSettings struct {
	BodyWeight         int     `json:"bodyWeight"`
	TargetTime         string  `json:"targetTime"`
	RaceDate           *string `json:"raceDate"`
	InTrainingPlan     bool    `json:"inTrainingPlan"`
	TotalTrainingWeeks int     `json:"totalTrainingWeeks"`
	CurrentWeek        int     `json:"currentWeek"`
	TrainingStartDate  *string `json:"trainingStartDate"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		BodyWeight:         168,
		TargetTime:         "2:59:59",
		RaceDate:           nil,
		InTrainingPlan:     false,
		TotalTrainingWeeks: 16,
		CurrentWeek:        1,
		TrainingStartDate:  nil,
	}
}
