package main

import (
	"log"

	"github.com/Makarand-Tighare/Health-Vitals-Tracker/config"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/controllers"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/middleware"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/pkg/logger"
	"github.com/Makarand-Tighare/Health-Vitals-Tracker/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 환경변수 로드 (.env 파일)
	config.LoadEnv()

	// 2. 로거 초기화
	logger.Init(config.GinMode == "debug")
	defer logger.L.Sync()

	// 3. MySQL 연결 (사용자 계정)
	config.Connect()

	// 4. MongoDB 연결 (일일 기록 문서)
	mongo, err := storage.ConnectMongo()
	if err != nil {
		log.Fatal("❌ MongoDB 연결 실패! .env 파일을 확인해주세요: ", err)
	}
	defer mongo.Disconnect()

	// 5. 컨트롤러 의존성 주입
	controllers.Init(storage.NewEntryRepository(mongo))
	controllers.InitAI()

	// 6. Gin 모드 설정
	gin.SetMode(config.GinMode)

	// 7. Gin 라우터 설정
	r := gin.Default()

	// CORS 설정 (웹 앱 허용)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// API 라우팅 정의
	api := r.Group("/api")
	{
		// ========== 인증 API (공개) ==========
		api.POST("/auth/register", controllers.Register) // 회원가입
		api.POST("/auth/login", controllers.Login)       // 로그인

		// ========== 인증 필요 API ==========
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// 사용자 정보
			protected.GET("/me", controllers.GetMe)                    // 내 정보 조회
			protected.PUT("/me", controllers.UpdateMe)                 // 내 정보 수정
			protected.POST("/me/password", controllers.ChangePassword) // 비밀번호 변경

			// 일일 기록
			protected.PUT("/entries/:date", controllers.SaveEntry)  // 자동 저장
			protected.GET("/entries/:date", controllers.GetEntry)   // 날짜별 조회
			protected.GET("/entries", controllers.GetEntries)       // 기간 조회
			protected.DELETE("/entries/:date/recommendations", controllers.ClearRecommendations) // 추천 새로고침

			// 요약
			protected.GET("/summary/weekly", controllers.GetWeeklySummary)   // 주간 요약
			protected.GET("/summary/monthly", controllers.GetMonthlySummary) // 월간 요약

			// 휴리스틱 인사이트 (AI 호출 없음)
			protected.GET("/insights/fruit/:date", controllers.GetFruitInsights)   // 과일 분석
			protected.GET("/insights/guidance/:date", controllers.GetFoodGuidance) // 식단 안내
			protected.GET("/insights/weekly-context", controllers.GetWeeklyContext) // 7일 컨텍스트

			// AI (Gemini)
			protected.POST("/ai/estimate", controllers.EstimateNutrition)              // 영양 추정
			protected.POST("/ai/food-quality", controllers.CalculateFoodQuality)       // 식단 품질 점수
			protected.POST("/ai/recommendations", controllers.GetDailyRecommendationsAI) // 일일 추천
			protected.POST("/ai/guidance", controllers.GetFoodGuidanceWithAI)          // AI 식단 안내
			protected.POST("/ai/weekly-insights", controllers.GetWeeklyInsightsAI)     // 주간 인사이트
			protected.POST("/ai/routine/evaluate", controllers.EvaluateRoutine)        // 루틴 평가
			protected.POST("/ai/routine/product", controllers.AnalyzeProduct)          // 제품 분석
		}
	}

	// 8. 서버 실행
	logger.L.Infof("🚀 서버 시작: http://localhost:%s", config.ServerPort)
	r.Run(":" + config.ServerPort)
}
