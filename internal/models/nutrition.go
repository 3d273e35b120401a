package models

import (
	"time"

	"github.com/google/uuid"
)

// NutritionEntry is an append-only macro log row. Calories are derived at
// creation (4 kcal/g carbs and protein, 9 kcal/g fat) and never recomputed.
type NutritionEntry struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Carbs     int       `json:"carbs"`
	Protein   int       `json:"protein"`
	Fats      int       `json:"fats"`
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}

func MacroCalories(carbs, protein, fats int) int {
	return carbs*4 + protein*4 + fats*9
}
