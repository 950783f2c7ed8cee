package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/config"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/pkg/logger"
)

// MongoDB : MongoDB 연결 래퍼
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.SugaredLogger
}

// Mongo : 전역 연결 (main에서 ConnectMongo 호출 후 사용)
var Mongo *MongoDB

// ConnectMongo : MongoDB 연결 및 핑 확인
func ConnectMongo() (*MongoDB, error) {
	log := logger.Named("mongodb")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("MongoDB 연결 실패: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDB 핑 실패: %w", err)
	}

	log.Infow("✅ MongoDB 연결 성공", "uri", config.MongoURI, "database", config.MongoDatabase)

	Mongo = &MongoDB{
		client: client,
		db:     client.Database(config.MongoDatabase),
		log:    log,
	}
	return Mongo, nil
}

// Disconnect : 연결 종료
func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m.log.Info("MongoDB 연결 종료")
	return m.client.Disconnect(ctx)
}

// Collection : 컬렉션 핸들
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}
