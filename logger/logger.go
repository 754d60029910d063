// Package logger 提供结构化日志记录功能.
package logger

// 日志级别常量.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// 输出格式常量.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// 输出目标常量.
const (
	OutputConsole = "console"
	OutputFile    = "file"
	OutputBoth    = "both"
)

// Field 表示一个日志字段.
type Field struct {
	Key   string
	Value any
}

// Logger 日志记录器接口.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)

	// With 返回附加了字段的子 logger.
	With(fields ...Field) Logger

	Sync() error
	Close() error
}

// NewLogger 创建 logger 实例.
func NewLogger(config *Config) (Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.ApplyDefaults()
	return newZapLogger(config)
}

// MustNewLogger 创建 logger 实例，失败时 panic.
func MustNewLogger(config *Config) Logger {
	l, err := NewLogger(config)
	if err != nil {
		panic(err)
	}
	return l
}

// NewNop 返回丢弃所有输出的 logger.
func NewNop() Logger {
	return nopLogger()
}

// 字段构造函数

// String 构造字符串字段.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int 构造整数字段.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool 构造布尔字段.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err 构造错误字段.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any 构造任意类型字段.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}
