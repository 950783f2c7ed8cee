package config

import (
	"log"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	// .env에서 로드된 환경변수 사용
	dsn := GetDSN()

	// GORM 연결 시도
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})

	if err != nil {
		// 연결 실패 시 에러 로그 출력하고 프로그램 종료
		log.Fatal("❌ MySQL 연결 실패! .env 파일을 확인해주세요: ", err)
	}

	log.Println("✅ MySQL 연결 성공!")

	// 테이블 자동 생성 (Auto Migration)
	// 사용자 계정만 MySQL에 저장하고, 일일 기록은 MongoDB 문서로 관리합니다.
	database.AutoMigrate(
		&models.User{},
	)

	DB = database
}
