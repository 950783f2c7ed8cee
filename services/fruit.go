package services

import (
	"math"
	"strings"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
)

// fruitClassifier : 키워드 그룹 하나 (데이터 테이블로 유지)
type fruitClassifier struct {
	Label        string
	Keywords     []string
	BaseServings float64 // 0이면 1로 취급
}

// 구체적인 과일을 먼저, 일반 키워드(fruit/juice)는 마지막에 둔다. 첫 매칭이 이긴다.
var fruitClassifiers = []fruitClassifier{
	{Label: "Banana", Keywords: []string{"banana", "kela"}},
	{Label: "Apple", Keywords: []string{"apple", "seb"}},
	{Label: "Orange", Keywords: []string{"orange", "santra", "mandarin", "kimia"}},
	{Label: "Mango", Keywords: []string{"mango", "aam"}},
	{Label: "Papaya", Keywords: []string{"papaya"}},
	{Label: "Grapes", Keywords: []string{"grape", "draksh"}},
	{Label: "Pomegranate", Keywords: []string{"pomegranate", "anar"}},
	{Label: "Berry", Keywords: []string{"berry", "strawberry", "blueberry", "raspberry", "blackberry"}},
	{Label: "Kiwi", Keywords: []string{"kiwi"}},
	{Label: "Melon", Keywords: []string{"melon", "watermelon", "muskmelon", "kharbuja", "tarbooz"}},
	{Label: "Pineapple", Keywords: []string{"pineapple"}},
	{Label: "Guava", Keywords: []string{"guava", "amrood"}},
	{Label: "Dates", Keywords: []string{"dates", "date", "khajoor"}, BaseServings: 0.5},
	{Label: "Fruit Mix", Keywords: []string{"fruit salad", "fruit bowl", "fruit mix", "mixed fruit"}},
	{Label: "Generic Fruit", Keywords: []string{"fruit"}, BaseServings: 1},
	{Label: "Fruit Juice", Keywords: []string{"juice", "smoothie", "shake"}, BaseServings: 0.5},
}

// 디저트 이름에 과일 단어가 들어가는 오탐 방지
var fruitBlocklist = []string{"cake", "custard", "ice cream", "cream", "pastry", "cookie"}

const (
	minServingsPerItem = 0.25
	maxServingsPerItem = 3.0
)

// AnalyzeFruitIntake : 음식 이름 기반 과일 서빙 추정
func AnalyzeFruitIntake(foodLogs []models.FoodLogEntry) models.FruitInsights {
	matches := []models.FruitInsightMatch{}
	detected := []string{}
	totalServings := 0.0

	for _, log := range foodLogs {
		for _, food := range log.CustomFoods {
			name := strings.ToLower(food.Name)
			if name == "" || isBlocked(name) {
				continue
			}

			classifier := matchFruit(name)
			if classifier == nil {
				continue
			}

			base := classifier.BaseServings
			if base == 0 {
				base = 1
			}
			amount := 1.0
			if food.Amount != nil && !math.IsNaN(*food.Amount) {
				amount = *food.Amount
			}
			servings := clampFloat(amount*base, minServingsPerItem, maxServingsPerItem)

			confidence := "high"
			if classifier.Label == "Generic Fruit" {
				confidence = "medium"
			}

			matches = append(matches, models.FruitInsightMatch{
				Name:       food.Name,
				Servings:   round2(servings),
				MealType:   log.MealType,
				Confidence: confidence,
			})
			detected = append(detected, food.Name)
			totalServings += servings
		}
	}

	return models.FruitInsights{
		Servings:      round2(totalServings),
		Matches:       matches,
		DetectedFoods: dedupeNames(detected),
	}
}

// matchFruit : 테이블 순서대로 첫 매칭 그룹 반환
func matchFruit(name string) *fruitClassifier {
	for i := range fruitClassifiers {
		for _, keyword := range fruitClassifiers[i].Keywords {
			if strings.Contains(name, keyword) {
				return &fruitClassifiers[i]
			}
		}
	}
	return nil
}

func isBlocked(name string) bool {
	for _, block := range fruitBlocklist {
		if strings.Contains(name, block) {
			return true
		}
	}
	return false
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// dedupeNames : 공백 제거 후 순서 유지하며 중복 제거
func dedupeNames(items []string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" && !seen[trimmed] {
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}
	return result
}
