package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L : 전역 로거 (main에서 Init 호출 후 사용)
var L *zap.SugaredLogger

// Init : zap 로거 초기화
// debug 모드면 콘솔 인코더 + Debug 레벨, 아니면 JSON 인코더 + Info 레벨
func Init(debug bool) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zap.InfoLevel
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if debug {
		level = zap.DebugLevel
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	L = zap.New(core, zap.AddCaller()).Sugar()
	return L
}

// Named : 이름 붙은 하위 로거 생성
func Named(name string) *zap.SugaredLogger {
	if L == nil {
		Init(true)
	}
	return L.Named(name)
}
