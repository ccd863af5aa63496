package bootstrap

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Logging with levels. Diagnostics are colored so a failed step stands out in
// an interactive install session.
type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

var currentLevel = levelInfo

func init() {
	// default from env if present
	SetLogLevel(envStr("TGSUM_LOG_LEVEL", "info"))
}

func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		currentLevel = levelDebug
	case "info":
		currentLevel = levelInfo
	case "warn", "warning":
		currentLevel = levelWarn
	case "error", "err":
		currentLevel = levelError
	default:
		currentLevel = levelInfo
	}
}

var levelPaint = map[string]*color.Color{
	"DEBUG": color.New(color.Faint),
	"INFO":  color.New(color.FgCyan),
	"WARN":  color.New(color.FgYellow),
	"ERROR": color.New(color.FgRed, color.Bold),
}

func ts() string { return time.Now().Format(time.RFC3339) }

func logf(lvl string, min logLevel, format string, a ...any) {
	if currentLevel > min {
		return
	}
	tag := lvl
	if p, ok := levelPaint[lvl]; ok {
		tag = p.Sprint(lvl)
	}
	fmt.Printf("[%s] %s %s\n", ts(), tag, fmt.Sprintf(format, a...))
}

func debug(format string, a ...any) { logf("DEBUG", levelDebug, format, a...) }
func info(format string, a ...any)  { logf("INFO", levelInfo, format, a...) }
func warn(format string, a ...any)  { logf("WARN", levelWarn, format, a...) }
func errl(format string, a ...any)  { logf("ERROR", levelError, format, a...) }

// okMark / skipMark / failMark decorate the pipeline summary lines.
var (
	okMark   = color.New(color.FgGreen).Sprint("ok")
	skipMark = color.New(color.Faint).Sprint("skipped")
	failMark = color.New(color.FgRed, color.Bold).Sprint("FAILED")
)

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	s := strings.ToLower(v)
	return s == "1" || s == "true" || s == "yes"
}
