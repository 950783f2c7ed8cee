package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/config"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/middleware"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/pkg/logger"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/services"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/storage"
	"github.com/gin-gonic/gin"
)

// estimateCache : 영양 추정 TTL 캐시 (InitAI에서 생성)
var estimateCache *services.EstimateCache

// InitAI : AI 컨트롤러 의존성 초기화
func InitAI() {
	estimateCache = services.NewEstimateCache(time.Duration(config.EstimateCacheTTLMin) * time.Minute)
}

// aiError : AI 호출 오류를 스펙대로 매핑
// 키 미설정 → 500, 레이트 리밋 소진 → 429 + retryAfter, 그 외 업스트림 오류 → 502
func aiError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GEMINI_API_KEY가 설정되지 않았습니다. 환경변수를 확인해주세요."})
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.", "retryAfter": true})
	default:
		logger.Named("ai").Errorw("Gemini 호출 실패", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI 호출에 실패했습니다. 다시 시도해주세요."})
	}
}

// EstimateNutrition : 음식 이름으로 영양 추정 (캐시 우선)
func EstimateNutrition(c *gin.Context) {
	var input struct {
		FoodName string  `json:"food_name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.FoodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_name은 필수입니다"})
		return
	}

	key := estimateCache.Key(input.FoodName, input.Amount, input.Unit)
	if cached, ok := estimateCache.Get(key); ok {
		cached.Method = "cache"
		c.JSON(http.StatusOK, cached)
		return
	}

	estimate, err := services.EstimateNutrition(c.Request.Context(), input.FoodName, input.Amount, input.Unit)
	if err != nil {
		aiError(c, err)
		return
	}

	estimateCache.Set(key, *estimate)
	c.JSON(http.StatusOK, estimate)
}

// CalculateFoodQuality : 하루 식단 품질 점수 (1~5)
func CalculateFoodQuality(c *gin.Context) {
	var input struct {
		FoodLogs []models.FoodLogEntry `json:"food_logs"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.FoodLogs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_logs 배열은 필수입니다"})
		return
	}

	result, err := services.ScoreFoodQuality(c.Request.Context(), input.FoodLogs)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// loadEntryForAI : 날짜 파라미터로 기록을 불러와 지표 재계산
func loadEntryForAI(c *gin.Context) (*models.DailyEntry, bool) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date는 필수입니다"})
		return nil, false
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date는 YYYY-MM-DD 형식이어야 합니다"})
		return nil, false
	}

	entry, err := entryRepo.Get(c.Request.Context(), middleware.GetUserKey(c), input.Date)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "해당 날짜의 기록이 없습니다"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return nil, false
	}

	entry.Metrics = services.CalculateMetrics(entry.FoodLogs, entry.Activity)
	entry.Activity.TotalBurn = entry.Metrics.TotalBurn
	return entry, true
}

// GetDailyRecommendationsAI : AI 일일 추천 생성 후 문서에 저장
func GetDailyRecommendationsAI(c *gin.Context) {
	entry, ok := loadEntryForAI(c)
	if !ok {
		return
	}

	recs, err := services.GetDailyRecommendations(c.Request.Context(), *entry)
	if err != nil {
		aiError(c, err)
		return
	}

	// 추천을 문서에 저장해 다음 조회 때 재사용
	if err := entryRepo.SetRecommendations(c.Request.Context(), entry.UserID, entry.Date, recs); err != nil {
		logger.Named("ai").Warnw("추천 저장 실패", "user", entry.UserID, "date", entry.Date, "err", err)
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GetFoodGuidanceWithAI : AI 식단 안내 (휴리스틱 과일 분석을 프롬프트에 포함)
func GetFoodGuidanceWithAI(c *gin.Context) {
	entry, ok := loadEntryForAI(c)
	if !ok {
		return
	}

	fruit := services.AnalyzeFruitIntake(entry.FoodLogs)
	guidance, err := services.GetFoodGuidanceAI(c.Request.Context(), *entry, fruit, entry.Health.VegMode)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guidance": guidance})
}

// GetWeeklyInsightsAI : 최근 7일 기록으로 AI 인사이트 생성
func GetWeeklyInsightsAI(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date는 필수입니다"})
		return
	}
	parsed, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	weekStart := parsed.AddDate(0, 0, -6).Format("2006-01-02")
	entries, err := entryRepo.GetRange(c.Request.Context(), middleware.GetUserKey(c), weekStart, input.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return
	}

	weekly := services.BuildWeeklyContext(entries, input.Date)
	if weekly == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "최근 7일 기록이 없습니다"})
		return
	}

	insights, err := services.GetWeeklyInsights(c.Request.Context(), *weekly)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// EvaluateRoutine : 스킨케어 루틴 AI 평가
func EvaluateRoutine(c *gin.Context) {
	var input struct {
		Steps []services.RoutineStep `json:"steps"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Steps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "루틴 단계가 최소 1개 필요합니다"})
		return
	}

	evaluation, err := services.EvaluateRoutine(c.Request.Context(), input.Steps)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluation": evaluation})
}

// AnalyzeProduct : 스킨케어 제품 AI 분석
func AnalyzeProduct(c *gin.Context) {
	var input struct {
		ProductName string `json:"product_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name은 필수입니다"})
		return
	}

	insight, err := services.AnalyzeSkincareProduct(c.Request.Context(), input.ProductName)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": insight})
}
