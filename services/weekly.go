package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

// 주간 상태 분류/습관 체크 기준
const (
	weeklyDeficitThreshold = 250
	weeklySurplusThreshold = -150
	habitWaterGlasses      = 8
	habitSleepHours        = 7.0
	habitFoodQuality       = 3.5
	habitFruitServings     = 2.0
)

// BuildWeeklyContext : 최근 7일 기록으로 AI 프롬프트 컨텍스트 생성
// 저장하지 않고 대시보드 로드마다 새로 계산한다.
func BuildWeeklyContext(entries []models.DailyEntry, currentDate string) *models.WeeklyRecommendationContext {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]models.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	count := len(sorted)
	var sumIntake, sumBurn, sumDeficit int
	var sumWater int
	var sumSleep, sumQuality, sumFruit float64
	timeline := make([]models.WeeklyContextDay, 0, count)

	for _, entry := range sorted {
		// 저장된 지표를 믿지 않고 다시 계산
		metrics := CalculateMetrics(entry.FoodLogs, entry.Activity)
		sumIntake += metrics.TotalIntake
		sumBurn += metrics.TotalBurn
		sumDeficit += metrics.CalorieDeficit
		sumWater += entry.Health.WaterIntake
		sumSleep += CalculateSleepHours(entry.Health.WakeTime, entry.Health.SleepTime)
		sumQuality += entry.Health.FoodQualityScore
		sumFruit += entry.Health.FruitIntake
		timeline = append(timeline, models.WeeklyContextDay{
			Date:    entry.Date,
			Intake:  metrics.TotalIntake,
			Burn:    metrics.TotalBurn,
			Deficit: metrics.CalorieDeficit,
		})
	}

	n := float64(count)
	avgWater := float64(sumWater) / n
	avgSleep := sumSleep / n
	avgQuality := sumQuality / n
	avgFruit := sumFruit / n
	avgDeficit := float64(sumDeficit) / n

	trend := models.WeeklyBalanced
	if avgDeficit >= weeklyDeficitThreshold {
		trend = models.WeeklyDeficit
	} else if avgDeficit <= weeklySurplusThreshold {
		trend = models.WeeklySurplus
	}

	missing := []string{}
	if avgWater < habitWaterGlasses {
		missing = append(missing, "Water < 8 glasses")
	}
	if avgSleep < habitSleepHours {
		missing = append(missing, "Sleep < 7 hrs")
	}
	if avgQuality < habitFoodQuality {
		missing = append(missing, "Food quality < 3.5")
	}
	if avgFruit < habitFruitServings {
		missing = append(missing, "Fruit servings < 2")
	}

	var yesterday *models.WeeklyContextDay
	yesterdayDate := previousDate(currentDate)
	for i := range timeline {
		if timeline[i].Date == yesterdayDate {
			yesterday = &timeline[i]
			break
		}
	}

	return &models.WeeklyRecommendationContext{
		RangeLabel:         formatRangeLabel(sorted[0].Date, sorted[count-1].Date),
		DaysTracked:        count,
		AverageIntake:      float64(sumIntake) / n,
		AverageBurn:        float64(sumBurn) / n,
		AverageWater:       avgWater,
		AverageSleep:       avgSleep,
		AverageFoodQuality: avgQuality,
		AverageFruit:       avgFruit,
		Trend:              trend,
		Timeline:           timeline,
		Yesterday:          yesterday,
		MissingHabits:      missing,
	}
}

// CalculateWeeklySummary : 주간 요약 (잘한 점/집중할 점 포함)
func CalculateWeeklySummary(entries []models.DailyEntry) *models.WeeklySummary {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]models.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	count := len(sorted)
	var sumIntake, sumBurn, sumDeficit, sumWater int
	var sumSleep, sumQuality, sumFruit float64
	faceCounts := map[models.FaceStatus]int{}
	notes := []string{}

	for _, entry := range sorted {
		metrics := CalculateMetrics(entry.FoodLogs, entry.Activity)
		sumIntake += metrics.TotalIntake
		sumBurn += metrics.TotalBurn
		sumDeficit += metrics.CalorieDeficit
		sumWater += entry.Health.WaterIntake
		sumSleep += CalculateSleepHours(entry.Health.WakeTime, entry.Health.SleepTime)
		sumQuality += entry.Health.FoodQualityScore
		sumFruit += entry.Health.FruitIntake
		faceCounts[entry.Health.FaceStatus]++
		if strings.TrimSpace(entry.Health.Notes) != "" {
			notes = append(notes, fmt.Sprintf("[%s]: %s", entry.Date, entry.Health.Notes))
		}
	}

	// 가장 많이 나온 얼굴 상태
	dominantFace := models.FaceNormal
	dominantCount := 0
	for face, c := range faceCounts {
		if c > dominantCount {
			dominantFace = face
			dominantCount = c
		}
	}

	n := float64(count)
	avgWater := float64(sumWater) / n
	avgSleep := sumSleep / n
	avgQuality := sumQuality / n
	avgFruit := sumFruit / n
	avgDeficit := float64(sumDeficit) / n

	wins := []models.WeeklyHighlight{}
	focus := []models.WeeklyHighlight{}
	addWin := func(title, description, metric string) {
		wins = append(wins, models.WeeklyHighlight{Title: title, Description: description, Metric: metric, Trend: "positive"})
	}
	addFocus := func(title, description, metric string) {
		focus = append(focus, models.WeeklyHighlight{Title: title, Description: description, Metric: metric, Trend: "negative"})
	}

	if avgWater >= 8 {
		addWin("Hydration on track", fmt.Sprintf("Averaged %.1f glasses daily.", avgWater), "Hydration")
	} else if avgWater < 6 {
		addFocus("Drink more water", fmt.Sprintf("Only %.1f glasses per day. Aim for 8+.", avgWater), "Hydration")
	}

	if avgSleep >= 7.5 {
		addWin("Sleep rhythm solid", fmt.Sprintf("%.1f hours/night keeps recovery high.", avgSleep), "Sleep")
	} else if avgSleep < 6.5 {
		addFocus("Protect sleep time", fmt.Sprintf("%.1f hours/night. Target 7.5+.", avgSleep), "Sleep")
	}

	if avgDeficit >= 200 {
		addWin("Calorie deficit achieved", fmt.Sprintf("Weekly deficit averaged %.0f kcal/day.", avgDeficit), "Energy")
	} else if avgDeficit < 0 {
		addFocus("Watch portions", fmt.Sprintf("In a surplus of %.0f kcal/day.", math.Abs(avgDeficit)), "Energy")
	}

	if avgQuality >= 4 {
		addWin("Clean eating streak", fmt.Sprintf("Food quality avg %.1f/5.", avgQuality), "Food Quality")
	} else if avgQuality <= 3 {
		addFocus("Improve meal balance", fmt.Sprintf("Food quality avg %.1f/5. Add more whole foods.", avgQuality), "Food Quality")
	}

	if avgFruit >= 2 {
		addWin("Fruit servings met", fmt.Sprintf("%.1f servings/day.", avgFruit), "Micronutrients")
	} else {
		addFocus("Add fruit fiber", fmt.Sprintf("%.1f servings/day. Aim for 2+.", avgFruit), "Micronutrients")
	}

	notesSummary := strings.Join(notes, "\n\n")
	if notesSummary == "" {
		notesSummary = "No notes for this week."
	}

	return &models.WeeklySummary{
		WeekStart:          sorted[0].Date,
		WeekEnd:            sorted[count-1].Date,
		AverageIntake:      float64(sumIntake) / n,
		AverageBurn:        float64(sumBurn) / n,
		AverageDeficit:     avgDeficit,
		AverageSleep:       avgSleep,
		AverageWater:       avgWater,
		AverageFoodQuality: avgQuality,
		FaceTrend:          fmt.Sprintf("Mostly %s (%d/%d days)", dominantFace, dominantCount, count),
		NotesSummary:       notesSummary,
		Wins:               wins,
		Focus:              focus,
	}
}

// CalculateMonthlySummary : 월간 요약 (최고/최저의 날 포함)
func CalculateMonthlySummary(entries []models.DailyEntry) *models.MonthlySummary {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]models.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	count := len(sorted)
	var sumIntake, sumBurn, sumDeficit, sumWater int
	var sumProtein, sumSleep, sumQuality float64
	best := models.SummaryDay{Date: sorted[0].Date, Deficit: math.MinInt32}
	worst := models.SummaryDay{Date: sorted[0].Date, Deficit: math.MaxInt32}

	for _, entry := range sorted {
		metrics := CalculateMetrics(entry.FoodLogs, entry.Activity)
		sumIntake += metrics.TotalIntake
		sumBurn += metrics.TotalBurn
		sumDeficit += metrics.CalorieDeficit
		sumProtein += metrics.TotalProtein
		sumSleep += CalculateSleepHours(entry.Health.WakeTime, entry.Health.SleepTime)
		sumWater += entry.Health.WaterIntake
		sumQuality += entry.Health.FoodQualityScore

		if metrics.CalorieDeficit > best.Deficit {
			best = models.SummaryDay{Date: entry.Date, Deficit: metrics.CalorieDeficit}
		}
		if metrics.CalorieDeficit < worst.Deficit {
			worst = models.SummaryDay{Date: entry.Date, Deficit: metrics.CalorieDeficit}
		}
	}

	n := float64(count)
	return &models.MonthlySummary{
		MonthStart:         sorted[0].Date,
		MonthEnd:           sorted[count-1].Date,
		TotalDays:          daySpan(sorted[0].Date, sorted[count-1].Date),
		DaysWithData:       count,
		TotalIntake:        sumIntake,
		TotalBurn:          sumBurn,
		TotalDeficit:       sumDeficit,
		AverageIntake:      float64(sumIntake) / n,
		AverageBurn:        float64(sumBurn) / n,
		AverageDeficit:     float64(sumDeficit) / n,
		TotalProtein:       sumProtein,
		AverageProtein:     sumProtein / n,
		TotalSleep:         sumSleep,
		AverageSleep:       sumSleep / n,
		TotalWater:         sumWater,
		AverageWater:       float64(sumWater) / n,
		AverageFoodQuality: sumQuality / n,
		BestDay:            &best,
		WorstDay:           &worst,
	}
}

// previousDate : YYYY-MM-DD 하루 전
func previousDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return parsed.AddDate(0, 0, -1).Format("2006-01-02")
}

// daySpan : 두 날짜 사이 일수 (양끝 포함)
func daySpan(start, end string) int {
	s, err1 := time.Parse("2006-01-02", start)
	e, err2 := time.Parse("2006-01-02", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// formatRangeLabel : "Jan 2 – 8" 또는 "Jan 30 – Feb 5"
func formatRangeLabel(start, end string) string {
	s, err1 := time.Parse("2006-01-02", start)
	e, err2 := time.Parse("2006-01-02", end)
	if err1 != nil || err2 != nil {
		return start + " – " + end
	}
	if s.Month() == e.Month() {
		return fmt.Sprintf("%s %d – %d", s.Format("Jan"), s.Day(), e.Day())
	}
	return fmt.Sprintf("%s %d – %s %d", s.Format("Jan"), s.Day(), e.Format("Jan"), e.Day())
}
