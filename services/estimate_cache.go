package services

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// EstimateCache : 영양 추정 결과 TTL 캐시
// 같은 음식을 반복 추정할 때 Gemini 호출을 아낀다. 키는 name-amount-unit.
type EstimateCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cachedEstimate
}

type cachedEstimate struct {
	value     NutritionEstimate
	expiresAt time.Time
}

// NewEstimateCache : TTL 캐시 생성
func NewEstimateCache(ttl time.Duration) *EstimateCache {
	return &EstimateCache{
		ttl:     ttl,
		entries: make(map[string]cachedEstimate),
	}
}

// Key : name-amount-unit 캐시 키
func (c *EstimateCache) Key(name string, amount float64, unit string) string {
	return fmt.Sprintf("%s-%g-%s", strings.ToLower(strings.TrimSpace(name)), amount, strings.ToLower(unit))
}

// Get : 캐시 조회 (만료된 항목은 읽는 시점에 제거)
func (c *EstimateCache) Get(key string) (NutritionEstimate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return NutritionEstimate{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return NutritionEstimate{}, false
	}
	return entry.value, true
}

// Set : 캐시 저장
func (c *EstimateCache) Set(key string, value NutritionEstimate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cachedEstimate{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}
