package models

import (
	"gorm.io/gorm"
)

// User : 사용자 정보
type User struct {
	gorm.Model
	Email       string `json:"email" gorm:"type:varchar(255);uniqueIndex"`
	Password    string `json:"-" gorm:"type:varchar(255)"` // JSON 응답에서 제외
	DisplayName string `json:"display_name"`
	VegMode     bool   `json:"veg_mode"`                        // 채식 모드 (AI 추천에 반영)
	TimeZone    string `json:"time_zone" gorm:"type:varchar(64)"` // 예: Asia/Kolkata
}

// LoginRequest : 로그인 요청
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest : 회원가입 요청
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name" binding:"required"`
	VegMode     bool   `json:"veg_mode"`
	TimeZone    string `json:"time_zone"`
}

// AuthResponse : 인증 응답
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
