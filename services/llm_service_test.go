package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/config"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

// withFakeGemini : 가짜 Gemini 서버를 띄우고 전역 훅을 교체
// 전역을 건드리므로 이 파일의 테스트는 병렬로 돌리지 않는다.
func withFakeGemini(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	geminiBaseURL = srv.URL
	prevKey := config.GeminiAPIKey
	config.GeminiAPIKey = "test-key"
	t.Cleanup(func() {
		geminiBaseURL = ""
		config.GeminiAPIKey = prevKey
	})
}

// geminiReply : candidates 래핑된 응답 본문 생성
func geminiReply(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestEstimateNutritionSuccess(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply("```json\n{\"calories\": 105, \"protein\": 1.3, \"sodium\": 1}\n```"))
	})

	estimate, err := EstimateNutrition(context.Background(), "banana", 1, "pcs")
	if err != nil {
		t.Fatalf("EstimateNutrition: %v", err)
	}
	if estimate.Calories != 105 {
		t.Fatalf("calories = %d, want 105", estimate.Calories)
	}
	if estimate.Protein == nil || *estimate.Protein != 1.3 {
		t.Fatalf("protein = %v, want 1.3", estimate.Protein)
	}
	if estimate.Method != "ai" {
		t.Fatalf("method = %q, want ai", estimate.Method)
	}
}

func TestEstimateNutritionSalvagesBrokenJSON(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply("The food has roughly calories: 250 and protein: 6 per serving."))
	})

	estimate, err := EstimateNutrition(context.Background(), "poha", 1, "plate")
	if err != nil {
		t.Fatalf("EstimateNutrition: %v", err)
	}
	if estimate.Calories != 250 {
		t.Fatalf("salvaged calories = %d, want 250", estimate.Calories)
	}
	if estimate.Protein == nil || *estimate.Protein != 6 {
		t.Fatalf("salvaged protein = %v, want 6", estimate.Protein)
	}
}

func TestEstimateNutritionNoAPIKey(t *testing.T) {
	prevKey := config.GeminiAPIKey
	config.GeminiAPIKey = ""
	t.Cleanup(func() { config.GeminiAPIKey = prevKey })

	_, err := EstimateNutrition(context.Background(), "banana", 1, "pcs")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestCallGeminiRetriesAfter429(t *testing.T) {
	attempts := 0
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, geminiReply(`{"calories": 100, "protein": 2, "sodium": 10}`))
	})

	estimate, err := EstimateNutrition(context.Background(), "apple", 1, "pcs")
	if err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
	if estimate.Calories != 100 {
		t.Fatalf("calories = %d, want 100", estimate.Calories)
	}
}

func TestCallGeminiRateLimitExhausted(t *testing.T) {
	if testing.Short() {
		t.Skip("full backoff takes ~7s")
	}

	attempts := 0
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := EstimateNutrition(context.Background(), "apple", 1, "pcs")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	// 최초 시도 + 재시도 3회
	if attempts != 4 {
		t.Fatalf("attempts = %d, want 4", attempts)
	}
}

func TestCallGeminiContextCanceled(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EstimateNutrition(ctx, "apple", 1, "pcs")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCallGeminiUpstreamError(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"boom"}}`)
	})

	_, err := EstimateNutrition(context.Background(), "apple", 1, "pcs")
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("err = %v, want upstream status error", err)
	}
}

func TestScoreFoodQualityEmptyDay(t *testing.T) {
	// 음식이 없으면 API를 부르지 않는다 (키 없이도 성공해야 함)
	prevKey := config.GeminiAPIKey
	config.GeminiAPIKey = ""
	t.Cleanup(func() { config.GeminiAPIKey = prevKey })

	result, err := ScoreFoodQuality(context.Background(), nil)
	if err != nil {
		t.Fatalf("ScoreFoodQuality: %v", err)
	}
	if result.Score != 3 || result.Reasoning != "No foods logged yet" {
		t.Fatalf("result = %+v, want neutral default", result)
	}
}

func TestScoreFoodQualityParsesScore(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply(`{"score": 4, "reasoning": "Balanced meals"}`))
	})

	logs := []models.FoodLogEntry{
		fruitLog(models.MealLunch, models.CustomFood{Name: "Dal rice", Calories: 450}),
	}
	result, err := ScoreFoodQuality(context.Background(), logs)
	if err != nil {
		t.Fatalf("ScoreFoodQuality: %v", err)
	}
	if result.Score != 4 || result.Reasoning != "Balanced meals" {
		t.Fatalf("result = %+v", result)
	}
}

func TestScoreFoodQualityExtractsScoreFromProse(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply("I would rate this day a score: 2 because of the fried snacks."))
	})

	logs := []models.FoodLogEntry{
		fruitLog(models.MealSnacks, models.CustomFood{Name: "Samosa", Calories: 300}),
	}
	result, err := ScoreFoodQuality(context.Background(), logs)
	if err != nil {
		t.Fatalf("ScoreFoodQuality: %v", err)
	}
	if result.Score != 2 {
		t.Fatalf("score = %d, want extracted 2", result.Score)
	}
	if result.Reasoning != "AI response parsing failed, using extracted score" {
		t.Fatalf("reasoning = %q", result.Reasoning)
	}
}

func TestGetDailyRecommendationsFallback(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply("Sorry, I cannot help with that."))
	})

	recs, err := GetDailyRecommendations(context.Background(), models.DailyEntry{Date: "2026-08-28"})
	if err != nil {
		t.Fatalf("GetDailyRecommendations: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Continue Tracking" {
		t.Fatalf("fallback recs = %+v", recs)
	}
}

func TestGetDailyRecommendationsParsed(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply(`{"recommendations":[{"category":"Hydration","title":"Drink More Water","description":"Add 2 glasses before lunch.","priority":"high"}]}`))
	})

	recs, err := GetDailyRecommendations(context.Background(), models.DailyEntry{Date: "2026-08-28"})
	if err != nil {
		t.Fatalf("GetDailyRecommendations: %v", err)
	}
	if len(recs) != 1 || recs[0].Category != "Hydration" || recs[0].Priority != "high" {
		t.Fatalf("recs = %+v", recs)
	}
}

func TestGetFoodGuidanceAINormalization(t *testing.T) {
	// guidance 래퍼 + 문자열 suggestions 응답을 고정 구조로 정리
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply(`{"guidance":{"summary":{"totalProtein":42.6,"fruitServings":1.5,"mealsLogged":3},"eatMore":[{"title":"More Protein","detail":"Lunch was carb heavy.","suggestions":"Add 80g grilled paneer"}],"limit":[{"title":"","detail":"dropped"},{"title":"Skip Fried","detail":"Samosa logged.","suggestions":["Roasted chana instead"]}]}}`))
	})

	guidance, err := GetFoodGuidanceAI(context.Background(), models.DailyEntry{}, models.FruitInsights{Servings: 1.5}, false)
	if err != nil {
		t.Fatalf("GetFoodGuidanceAI: %v", err)
	}
	if guidance.Summary.TotalProtein != 43 || guidance.Summary.MealsLogged != 3 {
		t.Fatalf("summary = %+v", guidance.Summary)
	}
	if len(guidance.EatMore) != 1 || guidance.EatMore[0].Suggestions[0] != "Add 80g grilled paneer" {
		t.Fatalf("eatMore = %+v", guidance.EatMore)
	}
	// title이 비면 버린다
	if len(guidance.Limit) != 1 || guidance.Limit[0].Title != "Skip Fried" {
		t.Fatalf("limit = %+v", guidance.Limit)
	}
}

func TestGetFoodGuidanceAIRootLevel(t *testing.T) {
	// guidance 래퍼 없이 루트에 주는 경우
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply(`{"summary":{"totalProtein":30,"fruitServings":2,"mealsLogged":2},"eatMore":[],"limit":[]}`))
	})

	guidance, err := GetFoodGuidanceAI(context.Background(), models.DailyEntry{}, models.FruitInsights{}, true)
	if err != nil {
		t.Fatalf("GetFoodGuidanceAI: %v", err)
	}
	if guidance.Summary.TotalProtein != 30 || guidance.Summary.MealsLogged != 2 {
		t.Fatalf("summary = %+v", guidance.Summary)
	}
}

func TestGetWeeklyInsightsFallback(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply("no structured data"))
	})

	insights, err := GetWeeklyInsights(context.Background(), models.WeeklyRecommendationContext{DaysTracked: 3})
	if err != nil {
		t.Fatalf("GetWeeklyInsights: %v", err)
	}
	if insights.Overview != "Unable to generate AI insights right now." {
		t.Fatalf("overview = %q", insights.Overview)
	}
}

func TestEvaluateRoutineFallback(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply("cannot evaluate"))
	})

	eval, err := EvaluateRoutine(context.Background(), []RoutineStep{{Name: "Cleanser", Moment: "morning", Frequency: "daily"}})
	if err != nil {
		t.Fatalf("EvaluateRoutine: %v", err)
	}
	if eval.Verdict != "Unable to analyze" {
		t.Fatalf("verdict = %q", eval.Verdict)
	}
}

func TestAnalyzeSkincareProductParsed(t *testing.T) {
	withFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiReply(`{"goal":"Hydrates skin","ideal_moments":["night"],"frequency":"daily","instructions":["Apply a pea-sized amount"]}`))
	})

	insight, err := AnalyzeSkincareProduct(context.Background(), "Hyaluronic serum")
	if err != nil {
		t.Fatalf("AnalyzeSkincareProduct: %v", err)
	}
	if insight.Goal != "Hydrates skin" || insight.Frequency != "daily" {
		t.Fatalf("insight = %+v", insight)
	}
}
