package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/pkg/logger"
)

const entriesCollection = "daily_entries"

// ErrEntryNotFound : 해당 날짜 기록 없음
var ErrEntryNotFound = errors.New("daily entry not found")

// EntryRepository : 일일 기록 문서 저장소
// 문서 하나가 {userID}_{date} 하루치이고, 저장은 덮어쓰기가 아니라 $set 머지.
// 마지막 쓰기가 이긴다 (last write wins).
type EntryRepository struct {
	db  *MongoDB
	log *zap.SugaredLogger
}

// NewEntryRepository : 저장소 생성
func NewEntryRepository(db *MongoDB) *EntryRepository {
	return &EntryRepository{
		db:  db,
		log: logger.Named("entry-repository"),
	}
}

// Save : 하루 기록 저장 (머지 업서트)
// created_at은 최초 저장 시에만 기록하고 updated_at은 항상 서버 시각으로 갱신한다.
func (r *EntryRepository) Save(ctx context.Context, entry models.DailyEntry) error {
	collection := r.db.Collection(entriesCollection)
	entry.ID = models.EntryKey(entry.UserID, entry.Date)

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"user_id":    entry.UserID,
			"date":       entry.Date,
			"food_logs":  entry.FoodLogs,
			"activity":   entry.Activity,
			"health":     entry.Health,
			"metrics":    entry.Metrics,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	// 추천은 비어 있으면 건드리지 않는다 (자동 저장이 기존 추천을 지우지 않도록)
	if len(entry.Recommendations) > 0 {
		update["$set"].(bson.M)["recommendations"] = entry.Recommendations
	}

	opts := options.Update().SetUpsert(true)
	if _, err := collection.UpdateByID(ctx, entry.ID, update, opts); err != nil {
		return fmt.Errorf("기록 저장 실패: %w", err)
	}

	r.log.Debugw("기록 저장", "id", entry.ID)
	return nil
}

// Get : 특정 날짜 기록 조회
func (r *EntryRepository) Get(ctx context.Context, userID, date string) (*models.DailyEntry, error) {
	collection := r.db.Collection(entriesCollection)

	var entry models.DailyEntry
	err := collection.FindOne(ctx, bson.M{"_id": models.EntryKey(userID, date)}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("기록 조회 실패: %w", err)
	}
	return &entry, nil
}

// GetRange : 기간 내 기록 조회
// 복합 인덱스를 피하려고 user_id로만 질의한 뒤 메모리에서 날짜 필터/정렬한다.
func (r *EntryRepository) GetRange(ctx context.Context, userID, startDate, endDate string) ([]models.DailyEntry, error) {
	collection := r.db.Collection(entriesCollection)

	cursor, err := collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("기록 조회 실패: %w", err)
	}
	defer cursor.Close(ctx)

	var all []models.DailyEntry
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("기록 디코딩 실패: %w", err)
	}

	filtered := make([]models.DailyEntry, 0, len(all))
	for _, entry := range all {
		if entry.Date >= startDate && entry.Date <= endDate {
			filtered = append(filtered, entry)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })
	return filtered, nil
}

// GetWeek : 주 시작일부터 7일치 조회
func (r *EntryRepository) GetWeek(ctx context.Context, userID, weekStart string) ([]models.DailyEntry, error) {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return nil, fmt.Errorf("잘못된 날짜 형식: %w", err)
	}
	weekEnd := start.AddDate(0, 0, 6).Format("2006-01-02")
	return r.GetRange(ctx, userID, weekStart, weekEnd)
}

// SetRecommendations : AI 추천만 갱신
func (r *EntryRepository) SetRecommendations(ctx context.Context, userID, date string, recs []models.Recommendation) error {
	collection := r.db.Collection(entriesCollection)
	_, err := collection.UpdateByID(ctx, models.EntryKey(userID, date), bson.M{
		"$set": bson.M{
			"recommendations": recs,
			"updated_at":      time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("추천 저장 실패: %w", err)
	}
	return nil
}

// ClearRecommendations : 수동 새로고침 시 추천 목록 비우기
func (r *EntryRepository) ClearRecommendations(ctx context.Context, userID, date string) error {
	collection := r.db.Collection(entriesCollection)
	_, err := collection.UpdateByID(ctx, models.EntryKey(userID, date), bson.M{
		"$unset": bson.M{"recommendations": ""},
		"$set":   bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("추천 삭제 실패: %w", err)
	}
	return nil
}
