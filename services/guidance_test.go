package services

import (
	"strings"
	"testing"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

func guidanceTitles(items []models.FoodGuidanceItem) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

func hasTitle(items []models.FoodGuidanceItem, title string) bool {
	for _, item := range items {
		if item.Title == title {
			return true
		}
	}
	return false
}

func TestBuildFoodGuidanceLowProteinDay(t *testing.T) {
	t.Parallel()

	logs := []models.FoodLogEntry{
		fruitLog(models.MealBreakfast, models.CustomFood{Name: "Poha", Calories: 300, Protein: floatPtr(6)}),
		fruitLog(models.MealLunch, models.CustomFood{Name: "White rice", Calories: 400, Protein: floatPtr(8)}),
	}
	fruit := AnalyzeFruitIntake(logs)

	guidance := BuildFoodGuidance(logs, fruit)

	if !hasTitle(guidance.EatMore, "Lean Protein Boost") {
		t.Fatalf("eatMore titles = %v, want protein prompt", guidanceTitles(guidance.EatMore))
	}
	if !hasTitle(guidance.EatMore, "Add Colorful Veggies") {
		t.Fatalf("eatMore titles = %v, want veggie prompt", guidanceTitles(guidance.EatMore))
	}
	if !hasTitle(guidance.EatMore, "Bump Up Fruits") {
		t.Fatalf("eatMore titles = %v, want fruit prompt", guidanceTitles(guidance.EatMore))
	}
	if guidance.Summary.TotalProtein != 14 {
		t.Fatalf("summary protein = %d, want 14", guidance.Summary.TotalProtein)
	}
	if guidance.Summary.MealsLogged != 2 {
		t.Fatalf("meals logged = %d, want 2", guidance.Summary.MealsLogged)
	}
}

func TestBuildFoodGuidanceBalancedDay(t *testing.T) {
	t.Parallel()

	logs := []models.FoodLogEntry{
		fruitLog(models.MealBreakfast,
			models.CustomFood{Name: "Egg bhurji", Protein: floatPtr(18)},
			models.CustomFood{Name: "Banana", Amount: floatPtr(1)},
		),
		fruitLog(models.MealLunch,
			models.CustomFood{Name: "Grilled chicken", Protein: floatPtr(32)},
			models.CustomFood{Name: "Cucumber salad"},
			models.CustomFood{Name: "Brown rice"},
		),
		fruitLog(models.MealDinner,
			models.CustomFood{Name: "Palak paneer", Protein: floatPtr(14)},
			models.CustomFood{Name: "Apple"},
		),
	}
	fruit := AnalyzeFruitIntake(logs)

	guidance := BuildFoodGuidance(logs, fruit)

	if len(guidance.EatMore) != 0 {
		t.Fatalf("balanced day eatMore = %v, want empty", guidanceTitles(guidance.EatMore))
	}
	if len(guidance.Limit) != 0 {
		t.Fatalf("balanced day limit = %v, want empty", guidanceTitles(guidance.Limit))
	}
}

func TestBuildFoodGuidanceLimits(t *testing.T) {
	t.Parallel()

	logs := []models.FoodLogEntry{
		fruitLog(models.MealSnacks,
			models.CustomFood{Name: "Samosa"},
			models.CustomFood{Name: "Jalebi"},
		),
		fruitLog(models.MealLunch,
			models.CustomFood{Name: "White rice"},
			models.CustomFood{Name: "Naan"},
		),
	}
	fruit := AnalyzeFruitIntake(logs)

	guidance := BuildFoodGuidance(logs, fruit)

	if !hasTitle(guidance.Limit, "Cut Back on Fried Snacks") {
		t.Fatalf("limit titles = %v, want fried prompt", guidanceTitles(guidance.Limit))
	}
	if !hasTitle(guidance.Limit, "Trim Added Sugar") {
		t.Fatalf("limit titles = %v, want sweets prompt", guidanceTitles(guidance.Limit))
	}
	// 정제 탄수 2개, 통곡물 0개 → 격차 경고
	if !hasTitle(guidance.Limit, "Balance Refined Carbs") {
		t.Fatalf("limit titles = %v, want refined carbs prompt", guidanceTitles(guidance.Limit))
	}
}

func TestBuildFoodGuidanceRefinedCarbGap(t *testing.T) {
	t.Parallel()

	// 통곡물 1개가 격차를 1로 줄여 경고가 빠진다
	logs := []models.FoodLogEntry{
		fruitLog(models.MealLunch,
			models.CustomFood{Name: "White rice"},
			models.CustomFood{Name: "Naan"},
			models.CustomFood{Name: "Oats porridge"},
		),
	}
	guidance := BuildFoodGuidance(logs, models.FruitInsights{Servings: 2})

	if hasTitle(guidance.Limit, "Balance Refined Carbs") {
		t.Fatalf("gap of 1 should not warn, limit = %v", guidanceTitles(guidance.Limit))
	}
}

func TestBuildFoodGuidanceDetailStrings(t *testing.T) {
	t.Parallel()

	guidance := BuildFoodGuidance(nil, models.FruitInsights{})

	for _, item := range guidance.EatMore {
		if item.Title == "Lean Protein Boost" && !strings.Contains(item.Detail, "No lean protein") {
			t.Fatalf("empty day protein detail = %q", item.Detail)
		}
		if item.Title == "Bump Up Fruits" && !strings.Contains(item.Detail, "No fruit servings") {
			t.Fatalf("empty day fruit detail = %q", item.Detail)
		}
	}
}
