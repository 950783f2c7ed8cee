package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

// 카테고리별 키워드 테이블 (중복 소속 허용)
var categoryPatterns = map[string][]string{
	"leanProtein":  {"chicken", "fish", "egg", "egg white", "paneer", "tofu", "soya", "sprout", "dal", "lentil", "rajma", "chole", "beans", "yogurt", "curd", "dahi", "greek yogurt", "protein"},
	"veggies":      {"salad", "sabji", "bhaji", "veg", "vegetable", "greens", "palak", "spinach", "methi", "beans", "okra", "bhindi", "gourd", "pumpkin", "cabbage", "cauliflower", "broccoli", "capsicum", "carrot", "beet", "cucumber"},
	"fried":        {"fried", "pakora", "bhajiya", "bhaji", "poori", "puri", "vada", "samosa", "cutlet", "manchurian", "fries"},
	"sweets":       {"sweet", "dessert", "halwa", "cake", "pastry", "jalebi", "laddu", "gulab jamun", "rasgulla", "peda", "chocolate", "brownie", "ice cream", "kheer", "payasam"},
	"refinedCarbs": {"white rice", "rice", "bread", "bun", "naan", "paratha", "pasta", "pizza", "burger", "noodle", "maggi", "poha", "upma"},
	"wholeCarbs":   {"brown rice", "millet", "jowar", "bajra", "ragi", "oats", "quinoa", "multigrain", "dalia"},
}

// 제안 문구 풀 (고정)
var positiveSuggestions = map[string][]string{
	"protein": {"Grilled chicken/paneer", "Sprouted moong salad", "Greek yogurt bowl", "Lentil & quinoa khichdi"},
	"veggies": {"Mixed veggie sabji", "Cucumber + carrot salad", "Palak dal", "Stir-fried beans/broccoli"},
	"fruits":  {"Seasonal fruit bowl", "Citrus fruit after lunch", "Mixed berries smoothie", "Papaya or melon cubes"},
}

var limitSuggestions = map[string][]string{
	"fried":        {"Bake or air-fry snacks", "Switch to roasted chana", "Use sprouts chat instead of pakora"},
	"sweets":       {"Keep desserts to 2 bites", "Swap sweets with fruit & yogurt", "Use dates/coconut ladoo"},
	"refinedCarbs": {"Swap white rice for millet", "Prefer phulkas over naan", "Add salad before carb-heavy meals"},
}

const (
	minDailyProteinG    = 55
	minProteinFoodCount = 2
	minVeggieFoodCount  = 2
	minFruitServings    = 2.0
	refinedCarbGapLimit = 2
)

// categoryTotals : 카테고리별 매칭 음식 이름 누적
type categoryTotals struct {
	leanProtein  []string
	veggies      []string
	fried        []string
	sweets       []string
	refinedCarbs []string
	wholeCarbs   []string
	totalProtein float64
}

// BuildFoodGuidance : 하루 식단에서 "더 먹기 / 줄이기" 안내 생성
func BuildFoodGuidance(foodLogs []models.FoodLogEntry, fruit models.FruitInsights) models.FoodGuidance {
	totals := categoryTotals{}
	mealsLogged := 0

	for _, log := range foodLogs {
		if len(log.CustomFoods) > 0 {
			mealsLogged++
		}
		for _, food := range log.CustomFoods {
			name := strings.ToLower(food.Name)
			display := food.Name
			if display == "" {
				display = "Custom food"
			}
			if matchesPattern(name, categoryPatterns["leanProtein"]) {
				totals.leanProtein = append(totals.leanProtein, display)
			}
			if matchesPattern(name, categoryPatterns["veggies"]) {
				totals.veggies = append(totals.veggies, display)
			}
			if matchesPattern(name, categoryPatterns["fried"]) {
				totals.fried = append(totals.fried, display)
			}
			if matchesPattern(name, categoryPatterns["sweets"]) {
				totals.sweets = append(totals.sweets, display)
			}
			if matchesPattern(name, categoryPatterns["refinedCarbs"]) {
				totals.refinedCarbs = append(totals.refinedCarbs, display)
			}
			if matchesPattern(name, categoryPatterns["wholeCarbs"]) {
				totals.wholeCarbs = append(totals.wholeCarbs, display)
			}
			if food.Protein != nil {
				totals.totalProtein += *food.Protein
			}
		}
	}

	eatMore := []models.FoodGuidanceItem{}
	limit := []models.FoodGuidanceItem{}
	proteinRounded := int(math.Round(totals.totalProtein))

	// 단백질 부족
	if totals.totalProtein < minDailyProteinG || len(totals.leanProtein) < minProteinFoodCount {
		detail := "No lean protein was detected in today's meals."
		if len(totals.leanProtein) > 0 {
			detail = fmt.Sprintf("Only %dg protein logged (%s)", proteinRounded, strings.Join(dedupeNames(totals.leanProtein), ", "))
		}
		eatMore = append(eatMore, models.FoodGuidanceItem{
			Title:       "Lean Protein Boost",
			Detail:      detail,
			Suggestions: positiveSuggestions["protein"],
			Emphasis:    fmt.Sprintf("%dg protein", proteinRounded),
		})
	}

	// 채소 부족
	if len(totals.veggies) < minVeggieFoodCount {
		detail := "No salads or veggie sabjis detected."
		if len(totals.veggies) > 0 {
			detail = fmt.Sprintf("Only %d veggie-rich items logged.", len(dedupeNames(totals.veggies)))
		}
		eatMore = append(eatMore, models.FoodGuidanceItem{
			Title:       "Add Colorful Veggies",
			Detail:      detail,
			Suggestions: positiveSuggestions["veggies"],
		})
	}

	// 과일 부족
	if fruit.Servings < minFruitServings {
		detail := "No fruit servings identified from today's log."
		if len(fruit.DetectedFoods) > 0 {
			detail = fmt.Sprintf("Detected %s (~%g servings).", strings.Join(fruit.DetectedFoods, ", "), fruit.Servings)
		}
		eatMore = append(eatMore, models.FoodGuidanceItem{
			Title:       "Bump Up Fruits",
			Detail:      detail,
			Suggestions: positiveSuggestions["fruits"],
			Emphasis:    fmt.Sprintf("%g servings", fruit.Servings),
		})
	}

	// 튀김류
	if len(totals.fried) > 0 {
		limit = append(limit, models.FoodGuidanceItem{
			Title:       "Cut Back on Fried Snacks",
			Detail:      fmt.Sprintf("Logged items: %s.", strings.Join(dedupeNames(totals.fried), ", ")),
			Suggestions: limitSuggestions["fried"],
		})
	}

	// 당류
	if len(totals.sweets) > 0 {
		limit = append(limit, models.FoodGuidanceItem{
			Title:       "Trim Added Sugar",
			Detail:      fmt.Sprintf("Dessert/sweet items: %s.", strings.Join(dedupeNames(totals.sweets), ", ")),
			Suggestions: limitSuggestions["sweets"],
		})
	}

	// 정제 탄수화물 쏠림
	if len(totals.refinedCarbs)-len(totals.wholeCarbs) >= refinedCarbGapLimit {
		limit = append(limit, models.FoodGuidanceItem{
			Title:       "Balance Refined Carbs",
			Detail:      fmt.Sprintf("Refined carbs dominated (%s).", strings.Join(dedupeNames(totals.refinedCarbs), ", ")),
			Suggestions: limitSuggestions["refinedCarbs"],
		})
	}

	return models.FoodGuidance{
		Summary: models.FoodGuidanceSummary{
			TotalProtein:  proteinRounded,
			FruitServings: fruit.Servings,
			MealsLogged:   mealsLogged,
		},
		EatMore: eatMore,
		Limit:   limit,
	}
}

func matchesPattern(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}
