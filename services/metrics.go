package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

// 적자 단계 기준 (kcal)
const (
	DeficitGoodThreshold     = 500
	DeficitModerateThreshold = 200
)

// CalculateMetrics : 하루 식단+활동에서 파생 지표 계산 (순수 함수)
// 저장된 값을 믿지 않고 매번 다시 계산한다.
func CalculateMetrics(foodLogs []models.FoodLogEntry, activity models.ActivityRecord) models.CalculatedMetrics {
	totalIntake := 0
	totalProtein := 0.0
	totalSodium := 0.0

	for _, log := range foodLogs {
		for _, food := range log.CustomFoods {
			totalIntake += food.Calories
			if food.Protein != nil {
				totalProtein += *food.Protein
			}
			if food.Sodium != nil {
				totalSodium += *food.Sodium
			}
		}
	}

	totalBurn := activity.ActiveCalories + activity.RestingCalories
	deficit := totalBurn - totalIntake

	return models.CalculatedMetrics{
		TotalIntake:    totalIntake,
		TotalBurn:      totalBurn,
		CalorieDeficit: deficit,
		Trend:          DetermineTrend(deficit),
		TotalProtein:   math.Round(totalProtein*10) / 10, // 소수 1자리
		TotalSodium:    math.Round(totalSodium),          // 정수
	}
}

// DetermineTrend : 적자 값으로 3단계 라벨 결정
func DetermineTrend(deficit int) models.Trend {
	if deficit >= DeficitGoodThreshold {
		return models.TrendGood
	}
	if deficit >= DeficitModerateThreshold {
		return models.TrendModerate
	}
	return models.TrendBad
}

// CalculateSleepHours : 기상/취침 시각(HH:MM)에서 수면 시간 계산
// 취침 분값이 기상 분값보다 크면 전날 밤 취침으로 보고 자정을 넘겨 계산한다.
// 같은 날 낮잠 입력은 이 규칙으로는 구분하지 못한다 (알려진 한계).
func CalculateSleepHours(wakeTime, sleepTime string) float64 {
	wakeMinutes, okW := parseClockMinutes(wakeTime)
	sleepMinutes, okS := parseClockMinutes(sleepTime)
	if !okW || !okS {
		return 0
	}

	var duration int
	if sleepMinutes > wakeMinutes {
		// 전날 밤 취침 → 다음날 아침 기상
		duration = (24*60 - sleepMinutes) + wakeMinutes
	} else {
		duration = wakeMinutes - sleepMinutes
	}

	return float64(duration) / 60.0
}

// parseClockMinutes : "HH:MM" → 자정 기준 분
func parseClockMinutes(clock string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	min, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}
