package models

// ========================================
// 파생 인사이트 모델 (저장하지 않고 매번 계산)
// ========================================

// FruitInsightMatch : 과일로 판정된 음식 하나
type FruitInsightMatch struct {
	Name       string   `json:"name"`
	Servings   float64  `json:"servings"`
	MealType   MealType `json:"meal_type"`
	Confidence string   `json:"confidence"` // high / medium
}

// FruitInsights : 과일 섭취 분석 결과
type FruitInsights struct {
	Servings      float64             `json:"servings"`
	Matches       []FruitInsightMatch `json:"matches"`
	DetectedFoods []string            `json:"detected_foods"`
}

// FoodGuidanceItem : "더 먹기" / "줄이기" 안내 항목
type FoodGuidanceItem struct {
	Title       string   `json:"title"`
	Detail      string   `json:"detail"`
	Suggestions []string `json:"suggestions"`
	Emphasis    string   `json:"emphasis,omitempty"`
}

// FoodGuidanceSummary : 안내 요약 수치
type FoodGuidanceSummary struct {
	TotalProtein  int     `json:"total_protein"`
	FruitServings float64 `json:"fruit_servings"`
	MealsLogged   int     `json:"meals_logged"`
}

// FoodGuidance : 하루 식단 안내
type FoodGuidance struct {
	Summary FoodGuidanceSummary `json:"summary"`
	EatMore []FoodGuidanceItem  `json:"eat_more"`
	Limit   []FoodGuidanceItem  `json:"limit"`
}

// WeeklyContextDay : 주간 타임라인의 하루
type WeeklyContextDay struct {
	Date    string `json:"date"`
	Intake  int    `json:"intake"`
	Burn    int    `json:"burn"`
	Deficit int    `json:"deficit"`
}

// WeeklyTrend : 주 평균 적자 분류
type WeeklyTrend string

const (
	WeeklyDeficit  WeeklyTrend = "deficit"  // 평균 적자 250 이상
	WeeklySurplus  WeeklyTrend = "surplus"  // 평균 적자 -150 이하
	WeeklyBalanced WeeklyTrend = "balanced"
)

// WeeklyRecommendationContext : AI 프롬프트에 넣는 최근 7일 요약
type WeeklyRecommendationContext struct {
	RangeLabel         string             `json:"range_label"`
	DaysTracked        int                `json:"days_tracked"`
	AverageIntake      float64            `json:"average_intake"`
	AverageBurn        float64            `json:"average_burn"`
	AverageWater       float64            `json:"average_water"`
	AverageSleep       float64            `json:"average_sleep"`
	AverageFoodQuality float64            `json:"average_food_quality"`
	AverageFruit       float64            `json:"average_fruit"`
	Trend              WeeklyTrend        `json:"trend"`
	Timeline           []WeeklyContextDay `json:"timeline"`
	Yesterday          *WeeklyContextDay  `json:"yesterday,omitempty"`
	MissingHabits      []string           `json:"missing_habits"`
}

// WeeklyHighlight : 주간 요약의 잘한 점/집중할 점
type WeeklyHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Metric      string `json:"metric"`
	Trend       string `json:"trend"` // positive / negative
}

// WeeklySummary : 주간 요약
type WeeklySummary struct {
	WeekStart          string            `json:"week_start"`
	WeekEnd            string            `json:"week_end"`
	AverageIntake      float64           `json:"average_intake"`
	AverageBurn        float64           `json:"average_burn"`
	AverageDeficit     float64           `json:"average_deficit"`
	AverageSleep       float64           `json:"average_sleep"`
	AverageWater       float64           `json:"average_water"`
	AverageFoodQuality float64           `json:"average_food_quality"`
	FaceTrend          string            `json:"face_trend"`
	NotesSummary       string            `json:"notes_summary"`
	Wins               []WeeklyHighlight `json:"wins"`
	Focus              []WeeklyHighlight `json:"focus"`
}

// SummaryDay : 최고/최저의 날
type SummaryDay struct {
	Date    string `json:"date"`
	Deficit int    `json:"deficit"`
}

// MonthlySummary : 월간 요약
type MonthlySummary struct {
	MonthStart         string      `json:"month_start"`
	MonthEnd           string      `json:"month_end"`
	TotalDays          int         `json:"total_days"`
	DaysWithData       int         `json:"days_with_data"`
	TotalIntake        int         `json:"total_intake"`
	TotalBurn          int         `json:"total_burn"`
	TotalDeficit       int         `json:"total_deficit"`
	AverageIntake      float64     `json:"average_intake"`
	AverageBurn        float64     `json:"average_burn"`
	AverageDeficit     float64     `json:"average_deficit"`
	TotalProtein       float64     `json:"total_protein"`
	AverageProtein     float64     `json:"average_protein"`
	TotalSleep         float64     `json:"total_sleep"`
	AverageSleep       float64     `json:"average_sleep"`
	TotalWater         int         `json:"total_water"`
	AverageWater       float64     `json:"average_water"`
	AverageFoodQuality float64     `json:"average_food_quality"`
	BestDay            *SummaryDay `json:"best_day,omitempty"`
	WorstDay           *SummaryDay `json:"worst_day,omitempty"`
}
