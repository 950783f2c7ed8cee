package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/middleware"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/pkg/logger"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/services"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/storage"
	"github.com/gin-gonic/gin"
)

// entryRepo : main에서 Init으로 주입
var entryRepo *storage.EntryRepository

// Init : 컨트롤러 의존성 주입
func Init(repo *storage.EntryRepository) {
	entryRepo = repo
}

// parseDateParam : YYYY-MM-DD 경로 파라미터 검증
func parseDateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "날짜는 YYYY-MM-DD 형식이어야 합니다"})
		return "", false
	}
	return date, true
}

// SaveEntryRequest : 하루 기록 저장 요청 (클라이언트 자동 저장이 보내는 본문)
type SaveEntryRequest struct {
	FoodLogs        []models.FoodLogEntry   `json:"food_logs"`
	Activity        models.ActivityRecord   `json:"activity"`
	Health          models.HealthInputs     `json:"health"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// SaveEntry : 하루 기록 저장 (자동 저장 대상)
// 파생 지표는 클라이언트 값을 무시하고 서버에서 다시 계산해 저장한다.
func SaveEntry(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	var input SaveEntryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.DailyEntry{
		UserID:          middleware.GetUserKey(c),
		Date:            date,
		FoodLogs:        input.FoodLogs,
		Activity:        input.Activity,
		Health:          input.Health,
		Recommendations: input.Recommendations,
	}

	// 불변식: total_burn = active+resting, deficit = burn-intake. 항상 재계산.
	entry.Metrics = services.CalculateMetrics(entry.FoodLogs, entry.Activity)
	entry.Activity.TotalBurn = entry.Metrics.TotalBurn

	if err := entryRepo.Save(c.Request.Context(), entry); err != nil {
		// 저장 실패는 기록만 하고 클라이언트에는 unsaved 상태로 알린다
		logger.Named("entries").Errorw("기록 저장 실패", "user", entry.UserID, "date", date, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장에 실패했습니다", "saved": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true, "metrics": entry.Metrics})
}

// GetEntry : 특정 날짜 기록 조회
func GetEntry(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	entry, err := entryRepo.Get(c.Request.Context(), middleware.GetUserKey(c), date)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "해당 날짜의 기록이 없습니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return
	}

	// 읽을 때도 저장된 지표를 믿지 않는다
	entry.Metrics = services.CalculateMetrics(entry.FoodLogs, entry.Activity)
	entry.Activity.TotalBurn = entry.Metrics.TotalBurn

	c.JSON(http.StatusOK, entry)
}

// GetEntries : 기간 조회 (?start=YYYY-MM-DD&end=YYYY-MM-DD)
func GetEntries(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if _, err := time.Parse("2006-01-02", start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	entries, err := entryRepo.GetRange(c.Request.Context(), middleware.GetUserKey(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return
	}

	for i := range entries {
		entries[i].Metrics = services.CalculateMetrics(entries[i].FoodLogs, entries[i].Activity)
		entries[i].Activity.TotalBurn = entries[i].Metrics.TotalBurn
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// ClearRecommendations : 추천 수동 새로고침 (기존 추천 삭제)
func ClearRecommendations(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	if err := entryRepo.ClearRecommendations(c.Request.Context(), middleware.GetUserKey(c), date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "추천 삭제 실패"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GetWeeklySummary : 주간 요약 (?start=YYYY-MM-DD)
func GetWeeklySummary(c *gin.Context) {
	weekStart := c.Query("start")
	if _, err := time.Parse("2006-01-02", weekStart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	entries, err := entryRepo.GetWeek(c.Request.Context(), middleware.GetUserKey(c), weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return
	}

	summary := services.CalculateWeeklySummary(entries)
	if summary == nil {
		c.JSON(http.StatusOK, gin.H{"summary": nil, "message": "해당 주에 기록이 없습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMonthlySummary : 월간 요약 (?start=YYYY-MM-DD&end=YYYY-MM-DD)
func GetMonthlySummary(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if _, err := time.Parse("2006-01-02", start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	entries, err := entryRepo.GetRange(c.Request.Context(), middleware.GetUserKey(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return
	}

	summary := services.CalculateMonthlySummary(entries)
	if summary == nil {
		c.JSON(http.StatusOK, gin.H{"summary": nil, "message": "해당 기간에 기록이 없습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
