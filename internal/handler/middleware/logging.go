package middleware

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"service-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Probe endpoints are logged at debug so scrapes don't drown booking traffic.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

type Logger struct {
	logger *slog.Logger
}

// NewLogger builds the process logger and installs it as the slog default.
// JSON in release mode, text otherwise; optionally tee'd to a rotating file.
func NewLogger(cfg config.LogConfig) *Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var out io.Writer = os.Stdout
	if cfg.FilePath != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
			Compress:   cfg.FileCompress,
		})
	}

	var h slog.Handler = slog.NewTextHandler(out, opts)
	if gin.Mode() == gin.ReleaseMode {
		h = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(h).With("service", "marketplace")
	slog.SetDefault(logger)
	return &Logger{logger: logger}
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware assigns a request ID, echoes it in the response and logs
// one line per completed request.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(requestID) {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String(requestIDKey, requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", routeOf(c)),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		if id, ok := GetUserID(c); ok {
			role, _ := GetUserRole(c)
			attrs = append(attrs, slog.String("user_id", id.String()), slog.String("role", role.String()))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), levelFor(c.Request.URL.Path, status), "request", attrs...)
	}
}

// routeOf prefers the matched pattern so IDs don't explode log cardinality.
func routeOf(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return c.Request.URL.Path
}

func levelFor(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case quietPaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
