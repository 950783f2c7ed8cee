package models

import "time"

// ========================================
// 일일 기록 문서 모델 (MongoDB)
// ========================================

// MealType : 식사 구분
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnacks    MealType = "snacks"
	MealDinner    MealType = "dinner"
	MealExtra     MealType = "extra"
)

// CustomFood : 자유 입력 음식 (영양값은 AI 추정 또는 라벨 기재값)
type CustomFood struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Calories int      `json:"calories" bson:"calories"` // kcal
	Protein  *float64 `json:"protein,omitempty" bson:"protein,omitempty"` // g
	Sodium   *float64 `json:"sodium,omitempty" bson:"sodium,omitempty"`   // mg
	Amount   *float64 `json:"amount,omitempty" bson:"amount,omitempty"`
	Unit     string   `json:"unit,omitempty" bson:"unit,omitempty"`
}

// FoodLogEntry : 한 끼 식사 기록
type FoodLogEntry struct {
	MealType    MealType     `json:"meal_type" bson:"meal_type"`
	CustomFoods []CustomFood `json:"custom_foods" bson:"custom_foods"`
}

// WorkoutTime : 운동 시간 (분)
type WorkoutTime struct {
	Strength int `json:"strength" bson:"strength"`
	Cardio   int `json:"cardio" bson:"cardio"`
}

// ActivityRecord : 하루 활동 기록
// TotalBurn은 항상 Active+Resting에서 다시 계산하며 저장값을 신뢰하지 않는다.
type ActivityRecord struct {
	ActiveCalories  int         `json:"active_calories" bson:"active_calories"`
	RestingCalories int         `json:"resting_calories" bson:"resting_calories"`
	TotalBurn       int         `json:"total_burn" bson:"total_burn"`
	WorkoutTime     WorkoutTime `json:"workout_time" bson:"workout_time"`
}

// FaceStatus : 피부/얼굴 상태
type FaceStatus string

const (
	FacePuffy  FaceStatus = "puffy"
	FaceDull   FaceStatus = "dull"
	FaceNormal FaceStatus = "normal"
	FaceBright FaceStatus = "bright"
)

// HealthInputs : 하루 건강 입력값
type HealthInputs struct {
	WakeTime         string     `json:"wake_time" bson:"wake_time"`   // HH:MM
	SleepTime        string     `json:"sleep_time" bson:"sleep_time"` // HH:MM
	WaterIntake      int        `json:"water_intake" bson:"water_intake"`           // 잔
	FruitIntake      float64    `json:"fruit_intake" bson:"fruit_intake"`           // 서빙
	GreenTeaCount    int        `json:"green_tea_count" bson:"green_tea_count"`     // 잔
	BlackCoffeeCount int        `json:"black_coffee_count" bson:"black_coffee_count"` // 잔
	FoodQualityScore float64    `json:"food_quality_score" bson:"food_quality_score"` // 1~5 (AI 산출, 직접 수정 불가)
	FaceStatus       FaceStatus `json:"face_status" bson:"face_status"`
	Notes            string     `json:"notes" bson:"notes"`
	VegMode          bool       `json:"veg_mode" bson:"veg_mode"`
}

// Trend : 칼로리 적자 3단계 라벨
type Trend string

const (
	TrendGood     Trend = "good"     // 적자 500 이상
	TrendModerate Trend = "moderate" // 적자 200 이상
	TrendBad      Trend = "bad"
)

// CalculatedMetrics : 파생 지표 (항상 FoodLogs+Activity에서 재계산)
type CalculatedMetrics struct {
	TotalIntake    int     `json:"total_intake" bson:"total_intake"`
	TotalBurn      int     `json:"total_burn" bson:"total_burn"`
	CalorieDeficit int     `json:"calorie_deficit" bson:"calorie_deficit"`
	Trend          Trend   `json:"trend" bson:"trend"`
	TotalProtein   float64 `json:"total_protein" bson:"total_protein"` // g, 소수 1자리
	TotalSodium    float64 `json:"total_sodium" bson:"total_sodium"`   // mg, 정수 반올림
}

// Recommendation : AI 일일 추천
type Recommendation struct {
	Category    string `json:"category" bson:"category"` // Nutrition/Exercise/Sleep/Hydration/Overall
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Priority    string `json:"priority" bson:"priority"` // high/medium/low
}

// DailyEntry : 하루치 기록 전체 (문서 키: {userID}_{date})
type DailyEntry struct {
	ID              string            `json:"id" bson:"_id"`
	UserID          string            `json:"user_id" bson:"user_id"`
	Date            string            `json:"date" bson:"date"` // YYYY-MM-DD
	FoodLogs        []FoodLogEntry    `json:"food_logs" bson:"food_logs"`
	Activity        ActivityRecord    `json:"activity" bson:"activity"`
	Health          HealthInputs      `json:"health" bson:"health"`
	Metrics         CalculatedMetrics `json:"metrics" bson:"metrics"`
	Recommendations []Recommendation  `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	CreatedAt       time.Time         `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// EntryKey : 문서 키 생성 ({userID}_{date})
func EntryKey(userID, date string) string {
	return userID + "_" + date
}
