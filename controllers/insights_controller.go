package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/middleware"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/services"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/storage"
	"github.com/gin-gonic/gin"
)

// GetFruitInsights : 특정 날짜의 과일 섭취 분석 (휴리스틱)
func GetFruitInsights(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"insights": services.AnalyzeFruitIntake(entry.FoodLogs)})
}

// GetFoodGuidance : 특정 날짜의 식단 안내 (휴리스틱, AI 없이 즉시 계산)
func GetFoodGuidance(c *gin.Context) {
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

	fruit := services.AnalyzeFruitIntake(entry.FoodLogs)
	c.JSON(http.StatusOK, gin.H{"guidance": services.BuildFoodGuidance(entry.FoodLogs, fruit)})
}

// GetWeeklyContext : 최근 7일 컨텍스트 (?date=YYYY-MM-DD, 기본 오늘)
// 대시보드 로드마다 새로 계산하며 저장하지 않는다.
func GetWeeklyContext(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	weekStart := parsed.AddDate(0, 0, -6).Format("2006-01-02")
	entries, err := entryRepo.GetRange(c.Request.Context(), middleware.GetUserKey(c), weekStart, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "기록 조회 실패"})
		return
	}

	context := services.BuildWeeklyContext(entries, date)
	if context == nil {
		c.JSON(http.StatusOK, gin.H{"context": nil, "message": "최근 7일 기록이 없습니다"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"context": context})
}
