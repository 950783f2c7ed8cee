package services

import (
	"strings"
	"testing"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

// dayEntry : 테스트용 하루 기록 생성
func dayEntry(date string, intake, burn int, health models.HealthInputs) models.DailyEntry {
	return models.DailyEntry{
		Date: date,
		FoodLogs: []models.FoodLogEntry{
			{MealType: models.MealLunch, CustomFoods: []models.CustomFood{{Name: "Meal", Calories: intake}}},
		},
		Activity: models.ActivityRecord{ActiveCalories: burn},
		Health:   health,
	}
}

func TestBuildWeeklyContextEmpty(t *testing.T) {
	t.Parallel()

	if ctx := BuildWeeklyContext(nil, "2026-08-28"); ctx != nil {
		t.Fatalf("empty entries should return nil, got %+v", ctx)
	}
}

func TestBuildWeeklyContextAveragesAndTrend(t *testing.T) {
	t.Parallel()

	goodHabits := models.HealthInputs{
		WakeTime: "07:00", SleepTime: "23:00",
		WaterIntake: 9, FruitIntake: 2.5, FoodQualityScore: 4,
	}
	entries := []models.DailyEntry{
		dayEntry("2026-08-26", 1500, 1900, goodHabits),
		dayEntry("2026-08-27", 1600, 1800, goodHabits),
	}

	ctx := BuildWeeklyContext(entries, "2026-08-28")
	if ctx == nil {
		t.Fatal("context is nil")
	}
	if ctx.DaysTracked != 2 {
		t.Fatalf("days tracked = %d, want 2", ctx.DaysTracked)
	}
	if ctx.AverageIntake != 1550 {
		t.Fatalf("average intake = %v, want 1550", ctx.AverageIntake)
	}
	// 평균 적자 (400+200)/2 = 300 ≥ 250 → deficit
	if ctx.Trend != models.WeeklyDeficit {
		t.Fatalf("trend = %s, want deficit", ctx.Trend)
	}
	if len(ctx.MissingHabits) != 0 {
		t.Fatalf("missing habits = %v, want none", ctx.MissingHabits)
	}
	if ctx.Yesterday == nil || ctx.Yesterday.Date != "2026-08-27" {
		t.Fatalf("yesterday = %+v, want 2026-08-27 snapshot", ctx.Yesterday)
	}
}

func TestBuildWeeklyContextSurplusAndMissingHabits(t *testing.T) {
	t.Parallel()

	poorHabits := models.HealthInputs{
		WakeTime: "06:00", SleepTime: "01:00", // 5시간 수면
		WaterIntake: 4, FruitIntake: 0.5, FoodQualityScore: 2,
	}
	entries := []models.DailyEntry{
		dayEntry("2026-08-25", 2400, 2000, poorHabits),
		dayEntry("2026-08-26", 2300, 2100, poorHabits),
	}

	ctx := BuildWeeklyContext(entries, "2026-08-27")
	// 평균 적자 (-400 + -200)/2 = -300 ≤ -150 → surplus
	if ctx.Trend != models.WeeklySurplus {
		t.Fatalf("trend = %s, want surplus", ctx.Trend)
	}
	if len(ctx.MissingHabits) != 4 {
		t.Fatalf("missing habits = %v, want all 4 flagged", ctx.MissingHabits)
	}
	if ctx.Yesterday == nil || ctx.Yesterday.Deficit != -200 {
		t.Fatalf("yesterday = %+v, want deficit -200", ctx.Yesterday)
	}
}

func TestCalculateWeeklySummaryWinsAndFocus(t *testing.T) {
	t.Parallel()

	strong := models.HealthInputs{
		WakeTime: "07:00", SleepTime: "23:00",
		WaterIntake: 9, FruitIntake: 2.5, FoodQualityScore: 4.5,
		FaceStatus: models.FaceBright,
		Notes:      "Felt energetic",
	}
	entries := []models.DailyEntry{
		dayEntry("2026-08-24", 1400, 1900, strong),
		dayEntry("2026-08-25", 1500, 1850, strong),
		dayEntry("2026-08-26", 1450, 1950, strong),
	}

	summary := CalculateWeeklySummary(entries)
	if summary == nil {
		t.Fatal("summary is nil")
	}
	if summary.WeekStart != "2026-08-24" || summary.WeekEnd != "2026-08-26" {
		t.Fatalf("week range = %s..%s", summary.WeekStart, summary.WeekEnd)
	}
	if !strings.Contains(summary.FaceTrend, "bright") {
		t.Fatalf("face trend = %q, want bright dominant", summary.FaceTrend)
	}
	if !strings.Contains(summary.NotesSummary, "[2026-08-24]: Felt energetic") {
		t.Fatalf("notes summary = %q, want dated note", summary.NotesSummary)
	}
	if len(summary.Focus) != 0 {
		t.Fatalf("strong week focus = %+v, want none", summary.Focus)
	}
	if len(summary.Wins) != 5 {
		t.Fatalf("wins = %d (%+v), want all 5", len(summary.Wins), summary.Wins)
	}
}

func TestCalculateWeeklySummaryNoNotes(t *testing.T) {
	t.Parallel()

	entries := []models.DailyEntry{dayEntry("2026-08-24", 1500, 1800, models.HealthInputs{})}
	summary := CalculateWeeklySummary(entries)
	if summary.NotesSummary != "No notes for this week." {
		t.Fatalf("notes summary = %q", summary.NotesSummary)
	}
}

func TestCalculateMonthlySummaryBestWorst(t *testing.T) {
	t.Parallel()

	entries := []models.DailyEntry{
		dayEntry("2026-08-03", 1800, 2000, models.HealthInputs{}), // +200
		dayEntry("2026-08-01", 1400, 2100, models.HealthInputs{}), // +700 최고
		dayEntry("2026-08-05", 2500, 1900, models.HealthInputs{}), // -600 최저
	}

	summary := CalculateMonthlySummary(entries)
	if summary == nil {
		t.Fatal("summary is nil")
	}
	if summary.MonthStart != "2026-08-01" || summary.MonthEnd != "2026-08-05" {
		t.Fatalf("month range = %s..%s", summary.MonthStart, summary.MonthEnd)
	}
	if summary.TotalDays != 5 || summary.DaysWithData != 3 {
		t.Fatalf("span = %d days, %d with data; want 5 and 3", summary.TotalDays, summary.DaysWithData)
	}
	if summary.BestDay == nil || summary.BestDay.Date != "2026-08-01" || summary.BestDay.Deficit != 700 {
		t.Fatalf("best day = %+v", summary.BestDay)
	}
	if summary.WorstDay == nil || summary.WorstDay.Date != "2026-08-05" || summary.WorstDay.Deficit != -600 {
		t.Fatalf("worst day = %+v", summary.WorstDay)
	}
	if summary.TotalDeficit != 300 {
		t.Fatalf("total deficit = %d, want 300", summary.TotalDeficit)
	}
}

func TestFormatRangeLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end, want string
	}{
		{"2026-01-02", "2026-01-08", "Jan 2 – 8"},
		{"2026-01-30", "2026-02-05", "Jan 30 – Feb 5"},
		{"bad", "2026-02-05", "bad – 2026-02-05"},
	}
	for _, tc := range cases {
		if got := formatRangeLabel(tc.start, tc.end); got != tc.want {
			t.Errorf("formatRangeLabel(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}
