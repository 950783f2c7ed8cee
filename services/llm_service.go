package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/config"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/pkg/logger"
)

// ErrRateLimited : 재시도 소진 후에도 429면 반환 (컨트롤러가 429 + retryAfter로 응답)
var ErrRateLimited = errors.New("gemini rate limit exceeded")

// ErrNoAPIKey : GEMINI_API_KEY 미설정
var ErrNoAPIKey = errors.New("GEMINI_API_KEY not set")

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"
	maxRetries     = 3
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// geminiBaseURL : 테스트에서 가짜 서버로 교체
var geminiBaseURL = ""

// callGemini : Gemini generateContent 호출
// 429는 지수 백오프(1s, 2s, 4s)로 최대 3회 재시도한다.
func callGemini(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	apiKey := config.GeminiAPIKey
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	url := fmt.Sprintf(geminiEndpoint, config.GeminiModel, apiKey)
	if geminiBaseURL != "" {
		url = geminiBaseURL
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     temperature,
			"maxOutputTokens": maxTokens,
		},
	}
	jsonBody, _ := json.Marshal(requestBody)

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("Gemini API 호출 실패: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		if attempt >= maxRetries {
			return "", ErrRateLimited
		}

		// 1s → 2s → 4s
		wait := time.Duration(math.Pow(2, float64(attempt))) * time.Second
		logger.Named("gemini").Warnw("레이트 리밋, 재시도 대기", "attempt", attempt+1, "wait", wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API 에러 (status %d): %s", resp.StatusCode, string(body))
	}

	// 응답 파싱
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("응답 파싱 실패: %w", err)
	}
	if geminiResp.Error != nil {
		return "", fmt.Errorf("Gemini API 에러: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini 응답 없음")
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

// ========================================
// 1. 영양 추정
// ========================================

// NutritionEstimate : 음식 영양 추정 결과
type NutritionEstimate struct {
	Calories int      `json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
	Method   string   `json:"method"`
}

// EstimateNutrition : 음식 이름으로 칼로리/단백질/나트륨 추정
func EstimateNutrition(ctx context.Context, foodName string, amount float64, unit string) (*NutritionEstimate, error) {
	amountText := "1"
	if amount > 0 {
		amountText = fmt.Sprintf("%g", amount)
	}
	if unit == "" {
		unit = "serving"
	}

	prompt := fmt.Sprintf(`Estimate the calories (in kcal), protein (in grams) and sodium (in mg) for %s %s of %s.
Respond with ONLY a JSON object in this exact format:
{"calories": <number>, "protein": <number>, "sodium": <number>}

If the amount is not specified, assume 1 standard serving.
Provide only the JSON object, no other text.`, amountText, unit, foodName)

	text, err := callGemini(ctx, prompt, 0.3, 100)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Sodium   *float64 `json:"sodium"`
	}
	if !DecodeRepaired(text, &parsed) || parsed.Calories == nil {
		// JSON이 깨졌으면 숫자만이라도 긁어낸다
		return salvageNutrition(text)
	}

	return &NutritionEstimate{
		Calories: int(*parsed.Calories),
		Protein:  parsed.Protein,
		Sodium:   parsed.Sodium,
		Method:   "ai",
	}, nil
}

var (
	caloriesPattern = regexp.MustCompile(`(?i)["']?calories["']?\s*:\s*(\d+)`)
	proteinPattern  = regexp.MustCompile(`(?i)["']?protein["']?\s*:\s*([\d.]+)`)
	sodiumPattern   = regexp.MustCompile(`(?i)["']?sodium["']?\s*:\s*([\d.]+)`)
)

// salvageNutrition : 깨진 응답에서 숫자 필드만 정규식으로 추출
func salvageNutrition(text string) (*NutritionEstimate, error) {
	calMatch := caloriesPattern.FindStringSubmatch(text)
	if calMatch == nil {
		return nil, fmt.Errorf("칼로리 추정값을 파싱할 수 없습니다")
	}
	estimate := &NutritionEstimate{Method: "ai"}
	fmt.Sscanf(calMatch[1], "%d", &estimate.Calories)
	if m := proteinPattern.FindStringSubmatch(text); m != nil {
		var p float64
		fmt.Sscanf(m[1], "%f", &p)
		estimate.Protein = &p
	}
	if m := sodiumPattern.FindStringSubmatch(text); m != nil {
		var s float64
		fmt.Sscanf(m[1], "%f", &s)
		estimate.Sodium = &s
	}
	return estimate, nil
}

// ========================================
// 2. 식단 품질 점수
// ========================================

// FoodQualityResult : 식단 품질 평가 (1~5)
type FoodQualityResult struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// ScoreFoodQuality : 하루 식단의 품질 점수 산출
// 음식이 없으면 API를 부르지 않고 중립 점수 3을 돌려준다.
func ScoreFoodQuality(ctx context.Context, foodLogs []models.FoodLogEntry) (*FoodQualityResult, error) {
	allFoods := describeFoods(foodLogs)
	if len(allFoods) == 0 {
		return &FoodQualityResult{Score: 3, Reasoning: "No foods logged yet"}, nil
	}

	prompt := fmt.Sprintf(`Analyze the following foods consumed in a day and rate the overall food quality on a scale of 1-5, where:
- 1 = Very poor (mostly processed, high sugar, unhealthy)
- 2 = Poor (mostly unhealthy with few nutritious items)
- 3 = Moderate (mix of healthy and unhealthy)
- 4 = Good (mostly healthy, balanced nutrition)
- 5 = Excellent (very healthy, whole foods, balanced macros)

Foods consumed: %s

Respond with ONLY a JSON object in this exact format:
{"score": <number 1-5>, "reasoning": "<brief explanation>"}

Do not include any other text, just the JSON object.`, strings.Join(allFoods, ", "))

	text, err := callGemini(ctx, prompt, 0.3, 200)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	}
	if !DecodeRepaired(text, &parsed) {
		// 점수 숫자만이라도 건진다. 그것도 안 되면 중립 3.
		score := 3
		if m := regexp.MustCompile(`(?i)["']?score["']?\s*:\s*(\d)`).FindStringSubmatch(text); m != nil {
			fmt.Sscanf(m[1], "%d", &score)
		}
		return &FoodQualityResult{
			Score:     clampInt(score, 1, 5),
			Reasoning: "AI response parsing failed, using extracted score",
		}, nil
	}

	reasoning := parsed.Reasoning
	if reasoning == "" {
		reasoning = "Food quality analyzed"
	}
	score := int(math.Round(parsed.Score))
	if score == 0 {
		score = 3
	}
	return &FoodQualityResult{Score: clampInt(score, 1, 5), Reasoning: reasoning}, nil
}

// ========================================
// 3. 일일 추천
// ========================================

// GetDailyRecommendations : 하루 데이터 기반 AI 추천 3~5개
func GetDailyRecommendations(ctx context.Context, entry models.DailyEntry) ([]models.Recommendation, error) {
	foodsList := "No foods logged"
	if foods := describeFoods(entry.FoodLogs); len(foods) > 0 {
		foodsList = strings.Join(foods, ", ")
	}
	sleepHours := CalculateSleepHours(entry.Health.WakeTime, entry.Health.SleepTime)

	prompt := fmt.Sprintf(`Analyze the following daily health data and provide 3-5 specific, actionable recommendations for improvement. Be concise and practical.

Daily Data:
- Foods consumed: %s
- Total calorie intake: %d kcal
- Total calorie burn: %d kcal
- Calorie deficit: %d kcal
- Active calories: %d kcal
- Resting calories: %d kcal
- Workout time: %d min strength, %d min cardio
- Sleep: %.1f hours (wake: %s, sleep: %s)
- Water intake: %d glasses
- Fruit intake: %g servings
- Green tea: %d cups
- Black coffee: %d cups
- Food quality score: %g/5
- Face status: %s

Provide recommendations in JSON format:
{
  "recommendations": [
    {
      "category": "Nutrition" | "Exercise" | "Sleep" | "Hydration" | "Overall",
      "title": "Brief title",
      "description": "Specific actionable advice",
      "priority": "high" | "medium" | "low"
    }
  ]
}

Focus on:
- Specific improvements based on actual data
- Actionable steps the user can take tomorrow
- Balance between different health aspects
- Realistic and achievable goals

Respond with ONLY the JSON object, no other text.`,
		foodsList,
		entry.Metrics.TotalIntake, entry.Metrics.TotalBurn, entry.Metrics.CalorieDeficit,
		entry.Activity.ActiveCalories, entry.Activity.RestingCalories,
		entry.Activity.WorkoutTime.Strength, entry.Activity.WorkoutTime.Cardio,
		sleepHours, entry.Health.WakeTime, entry.Health.SleepTime,
		entry.Health.WaterIntake, entry.Health.FruitIntake,
		entry.Health.GreenTeaCount, entry.Health.BlackCoffeeCount,
		entry.Health.FoodQualityScore, entry.Health.FaceStatus)

	text, err := callGemini(ctx, prompt, 0.5, 500)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if !DecodeRepaired(text, &parsed) || len(parsed.Recommendations) == 0 {
		// 파싱 실패 시 기본 추천
		return []models.Recommendation{{
			Category:    "Overall",
			Title:       "Continue Tracking",
			Description: "Keep logging your daily data to get personalized recommendations.",
			Priority:    "medium",
		}}, nil
	}
	return parsed.Recommendations, nil
}

// ========================================
// 4. AI 식단 안내
// ========================================

// GetFoodGuidanceAI : AI 버전 식단 안내 (휴리스틱 버전은 guidance.go)
func GetFoodGuidanceAI(ctx context.Context, entry models.DailyEntry, fruit models.FruitInsights, vegMode bool) (*models.FoodGuidance, error) {
	foodList := "No foods logged"
	if foods := describeFoodsDetailed(entry.FoodLogs); len(foods) > 0 {
		foodList = strings.Join(foods, "; ")
	}

	vegModeNote := ""
	vegModeRule := ""
	if vegMode {
		vegModeNote = "\n\nIMPORTANT: User is in VEG MODE. Only suggest vegetarian foods. Do NOT recommend any meat, fish, poultry, or seafood. Focus on plant-based proteins like paneer, tofu, dal, legumes, sprouts, etc."
		vegModeRule = "ONLY suggest vegetarian options. Never recommend meat, fish, or poultry."
	}

	prompt := fmt.Sprintf(`You are a precise nutrition coach. Analyze the user's logged meals and lifestyle data, critique problem areas, and provide food guidance that balances praise with clear fixes.

DATA SNAPSHOT
- Foods: %s
- Total intake: %d kcal
- Total burn: %d kcal
- Protein estimate: %g g
- Sodium estimate: %g mg
- Hydration: %d glasses
- Fruit servings (auto): %g
- Face status: %s%s

TASK
1. Identify 2-3 things to double down on (protein, fiber, fruits, smart carbs, hydration, etc.) referencing the actual foods eaten.
2. Identify 2-3 things to pause/limit (fried, sugar, refined carbs, overeating, missing meals) referencing the actual foods.
3. Keep guidance hyper-specific with portion ideas or swaps (e.g., "Add 80g grilled paneer at lunch", "Swap poori for phulka + dal").
4. %s
5. Count meals logged from the food list above.

CRITICAL: You MUST respond with ONLY valid JSON. No markdown, no code blocks, no explanations before or after. Start directly with { and end with }.

Required JSON format (use exact structure):
{
  "guidance": {
    "summary": {
      "totalProtein": <number>,
      "fruitServings": <number>,
      "mealsLogged": <number>
    },
    "eatMore": [
      {
        "title": "<string, max 7 words>",
        "detail": "<string referencing specific foods from log>",
        "suggestions": ["<actionable tactic 1>", "<actionable tactic 2>"],
        "emphasis": "<optional string>"
      }
    ],
    "limit": [
      {
        "title": "<string, max 7 words>",
        "detail": "<string referencing specific foods from log>",
        "suggestions": ["<actionable tactic 1>", "<actionable tactic 2>"],
        "emphasis": "<optional string>"
      }
    ]
  }
}

Rules:
- Title must be <= 7 words.
- Detail must reference concrete foods from the log.
- Suggestions must be actionable tactics (food swap, portion, timing).
- If no data is available, return empty arrays but keep JSON structure identical.
- Return 2-3 items in eatMore and 2-3 items in limit arrays.
- Ensure all strings are properly escaped in JSON.`,
		foodList,
		entry.Metrics.TotalIntake, entry.Metrics.TotalBurn,
		entry.Metrics.TotalProtein, entry.Metrics.TotalSodium,
		entry.Health.WaterIntake, fruit.Servings, entry.Health.FaceStatus, vegModeNote,
		vegModeRule)

	text, err := callGemini(ctx, prompt, 0.3, 1200)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Guidance *rawGuidance `json:"guidance"`
		// 모델이 guidance 래퍼 없이 루트에 줄 때도 있다
		Summary *rawGuidanceSummary `json:"summary"`
		EatMore []rawGuidanceItem   `json:"eatMore"`
		Limit   []rawGuidanceItem   `json:"limit"`
	}
	if !DecodeRepaired(text, &parsed) {
		logger.Named("gemini").Warnw("식단 안내 응답 복구 실패, 빈 안내로 대체", "preview", preview(text))
		empty := emptyGuidance()
		return &empty, nil
	}

	raw := parsed.Guidance
	if raw == nil {
		raw = &rawGuidance{Summary: parsed.Summary, EatMore: parsed.EatMore, Limit: parsed.Limit}
	}

	normalized := normalizeGuidance(raw)
	return &normalized, nil
}

type rawGuidanceSummary struct {
	TotalProtein  float64 `json:"totalProtein"`
	FruitServings float64 `json:"fruitServings"`
	MealsLogged   float64 `json:"mealsLogged"`
}

type rawGuidanceItem struct {
	Title       string      `json:"title"`
	Detail      string      `json:"detail"`
	Suggestions interface{} `json:"suggestions"`
	Emphasis    string      `json:"emphasis"`
}

type rawGuidance struct {
	Summary *rawGuidanceSummary `json:"summary"`
	EatMore []rawGuidanceItem   `json:"eatMore"`
	Limit   []rawGuidanceItem   `json:"limit"`
}

func emptyGuidance() models.FoodGuidance {
	return models.FoodGuidance{
		Summary: models.FoodGuidanceSummary{},
		EatMore: []models.FoodGuidanceItem{},
		Limit:   []models.FoodGuidanceItem{},
	}
}

// normalizeGuidance : 느슨한 AI 응답을 고정 구조로 정리
func normalizeGuidance(raw *rawGuidance) models.FoodGuidance {
	result := emptyGuidance()
	if raw == nil {
		return result
	}
	if raw.Summary != nil {
		result.Summary = models.FoodGuidanceSummary{
			TotalProtein:  int(math.Round(raw.Summary.TotalProtein)),
			FruitServings: raw.Summary.FruitServings,
			MealsLogged:   int(raw.Summary.MealsLogged),
		}
	}
	for _, item := range raw.EatMore {
		if normalized, ok := normalizeGuidanceItem(item); ok {
			result.EatMore = append(result.EatMore, normalized)
		}
	}
	for _, item := range raw.Limit {
		if normalized, ok := normalizeGuidanceItem(item); ok {
			result.Limit = append(result.Limit, normalized)
		}
	}
	return result
}

// normalizeGuidanceItem : title/detail 없으면 버리고, suggestions는 배열로 강제
func normalizeGuidanceItem(item rawGuidanceItem) (models.FoodGuidanceItem, bool) {
	if item.Title == "" || item.Detail == "" {
		return models.FoodGuidanceItem{}, false
	}

	suggestions := []string{}
	switch v := item.Suggestions.(type) {
	case []interface{}:
		for _, s := range v {
			if text := fmt.Sprintf("%v", s); text != "" && text != "<nil>" {
				suggestions = append(suggestions, text)
			}
		}
	case string:
		if v != "" {
			suggestions = append(suggestions, v)
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{"Review your food choices"}
	}

	return models.FoodGuidanceItem{
		Title:       item.Title,
		Detail:      item.Detail,
		Suggestions: suggestions,
		Emphasis:    item.Emphasis,
	}, true
}

// ========================================
// 5. 스킨케어 루틴 평가 / 제품 분석
// ========================================

// RoutineStep : 스킨케어 루틴 단계
type RoutineStep struct {
	Name      string `json:"name" binding:"required"`
	Moment    string `json:"moment"`    // morning/evening/night/any
	Frequency string `json:"frequency"` // daily/alternate/weekly
}

// RoutineEvaluation : 루틴 평가 결과
type RoutineEvaluation struct {
	Verdict     string              `json:"verdict"`
	Positives   []string            `json:"positives"`
	Gaps        []string            `json:"gaps"`
	Suggestions []RoutineSuggestion `json:"suggestions"`
}

// RoutineSuggestion : 루틴 개선 제안
type RoutineSuggestion struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// EvaluateRoutine : 스킨케어 루틴 AI 평가
func EvaluateRoutine(ctx context.Context, steps []RoutineStep) (*RoutineEvaluation, error) {
	stepsJSON, _ := json.MarshalIndent(steps, "", "  ")
	prompt := fmt.Sprintf(`You are a dermatologist. Evaluate this skincare routine:
%s

Return STRICT JSON (no markdown) with schema:
{
  "verdict": "<short headline>",
  "positives": ["..."],
  "gaps": ["..."],
  "suggestions": [
    { "title": "<short action>", "detail": "<how to improve>" }
  ]
}

Rules:
- Mention if AM/PM balance is missing (e.g., sunscreen absent in AM, actives stacked in PM).
- Note frequency conflicts (e.g., multiple exfoliants daily).
- Max 3 bullets per section.`, string(stepsJSON))

	text, err := callGemini(ctx, prompt, 0.35, 600)
	if err != nil {
		return nil, err
	}

	var result RoutineEvaluation
	if !DecodeRepaired(text, &result) {
		logger.Named("gemini").Warnw("루틴 평가 응답 복구 실패, 기본값 사용", "preview", preview(text))
		return &RoutineEvaluation{
			Verdict:     "Unable to analyze",
			Positives:   []string{},
			Gaps:        []string{},
			Suggestions: []RoutineSuggestion{},
		}, nil
	}
	return &result, nil
}

// ProductInsight : 스킨케어 제품 분석 결과
type ProductInsight struct {
	Goal         string   `json:"goal"`
	IdealMoments []string `json:"ideal_moments"`
	Frequency    string   `json:"frequency"`
	Instructions []string `json:"instructions"`
	Caution      string   `json:"caution,omitempty"`
}

// AnalyzeSkincareProduct : 제품 이름으로 사용법 분석
func AnalyzeSkincareProduct(ctx context.Context, productName string) (*ProductInsight, error) {
	prompt := fmt.Sprintf(`You are a licensed dermatologist. Analyze the skincare product "%s" and reply with STRICT JSON using this schema:
{
  "goal": "<what this product achieves in plain English>",
  "ideal_moments": ["morning"|"evening"|"night"|"any", ...],
  "frequency": "daily"|"alternate"|"weekly",
  "instructions": ["<step>", "..."],
  "caution": "<optional warning>"
}

Rules:
- No markdown, no code fences.
- Max 3 instructions.`, productName)

	text, err := callGemini(ctx, prompt, 0.35, 400)
	if err != nil {
		return nil, err
	}

	var result ProductInsight
	if !DecodeRepaired(text, &result) {
		return &ProductInsight{
			Goal:         "Unable to analyze this product right now.",
			IdealMoments: []string{"any"},
			Frequency:    "daily",
			Instructions: []string{},
		}, nil
	}
	return &result, nil
}

// ========================================
// 6. 주간 인사이트
// ========================================

// WeeklyInsights : 주간 AI 인사이트
type WeeklyInsights struct {
	Overview  string         `json:"overview"`
	Wins      []string       `json:"wins"`
	Watchouts []string       `json:"watchouts"`
	Actions   []WeeklyAction `json:"actions"`
}

// WeeklyAction : 주간 실행 항목
type WeeklyAction struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// GetWeeklyInsights : 7일 기록 요약으로 AI 인사이트 생성
func GetWeeklyInsights(ctx context.Context, weekly models.WeeklyRecommendationContext) (*WeeklyInsights, error) {
	payload, _ := json.MarshalIndent(weekly, "", "  ")
	prompt := fmt.Sprintf(`You are a performance coach analyzing a 7-day health log.
DATA:
%s

Respond ONLY with JSON in this exact schema:
{
  "overview": "<2-sentence recap>",
  "wins": ["<bullet>", "..."],
  "watchouts": ["<bullet>", "..."],
  "actions": [
    { "title": "<short action>", "detail": "<how to do it>" }
  ]
}

Rules:
- Use data-driven references (e.g., "Averaged 5.5h sleep", "Two days over 2300 kcal").
- Max 3 bullets per section.
- Titles <= 6 words.
- No markdown, no code fences.`, string(payload))

	text, err := callGemini(ctx, prompt, 0.35, 800)
	if err != nil {
		return nil, err
	}

	var result WeeklyInsights
	if !DecodeRepaired(text, &result) {
		logger.Named("gemini").Warnw("주간 인사이트 응답 복구 실패, 기본값 사용", "preview", preview(text))
		return &WeeklyInsights{
			Overview:  "Unable to generate AI insights right now.",
			Wins:      []string{},
			Watchouts: []string{},
			Actions:   []WeeklyAction{},
		}, nil
	}
	return &result, nil
}

// ========================================
// 공통 헬퍼
// ========================================

// describeFoods : "이름 (양 단위)" 형태 목록
func describeFoods(foodLogs []models.FoodLogEntry) []string {
	foods := []string{}
	for _, log := range foodLogs {
		for _, food := range log.CustomFoods {
			desc := food.Name
			if food.Amount != nil && food.Unit != "" {
				desc = fmt.Sprintf("%s (%g %s)", food.Name, *food.Amount, food.Unit)
			}
			foods = append(foods, desc)
		}
	}
	return foods
}

// describeFoodsDetailed : 칼로리/단백질/끼니까지 포함한 상세 목록
func describeFoodsDetailed(foodLogs []models.FoodLogEntry) []string {
	foods := []string{}
	for _, log := range foodLogs {
		for _, food := range log.CustomFoods {
			parts := []string{food.Name}
			if food.Amount != nil && food.Unit != "" {
				parts = append(parts, fmt.Sprintf("(%g %s)", *food.Amount, food.Unit))
			}
			parts = append(parts, fmt.Sprintf("%d kcal", food.Calories))
			if food.Protein != nil {
				parts = append(parts, fmt.Sprintf("%gg protein", *food.Protein))
			}
			parts = append(parts, fmt.Sprintf("meal: %s", log.MealType))
			foods = append(foods, strings.Join(parts, ", "))
		}
	}
	return foods
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// preview : 로그용 응답 앞부분
func preview(text string) string {
	if len(text) > 200 {
		return text[:200]
	}
	return text
}
