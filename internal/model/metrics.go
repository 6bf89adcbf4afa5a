package model

// DailyMetrics is one day of tracked data from the fitness-data (wearable) backend.
type DailyMetrics struct {
	Date            string          `json:"date"`
	Profile         MetricsProfile  `json:"user_profile"`
	FoodDiary       []FoodEntry     `json:"food_diary"`
	ExerciseSummary ExerciseSummary `json:"exercise_summary"`
	Totals          DailyTotals     `json:"daily_total_stats"`
}

type MetricsProfile struct {
	Age          int     `json:"age"`
	WeightKg     float64 `json:"weight_kg"`
	HeightCm     float64 `json:"height_cm"`
	BmrKcal      int     `json:"bmr_kcal"`
	TdeeKcal     int     `json:"tdee_maintenance_kcal"`
	GoalCalories int     `json:"goal_calories"`
}

type FoodEntry struct {
	Time     string  `json:"time"`
	Item     string  `json:"item"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type ExerciseSummary struct {
	BurnedCalories int    `json:"total_burned_calories"`
	Status         string `json:"status,omitempty"`
}

type DailyTotals struct {
	IntakeCalories int     `json:"total_intake_calories"`
	BurnedCalories int     `json:"total_burned_calories"`
	NetCalories    int     `json:"net_calories"`
	ProteinG       float64 `json:"total_protein_g"`
	CarbsG         float64 `json:"total_carbs_g"`
	FatG           float64 `json:"total_fat_g"`
	ProteinPerKg   float64 `json:"protein_per_kg"`
}
