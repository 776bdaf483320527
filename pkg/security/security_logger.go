// Package security records security-relevant events (throttling, rejected
// forms, admin auth failures) as structured zap entries separate from the
// request log.
package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventCSRFRejected       EventType = "csrf_rejected"
	EventSpamSuspected      EventType = "spam_suspected"
)

// SecurityEvent is one entry of the security log
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Event        EventType              `json:"event"`
	Severity     Severity               `json:"severity"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "ip", "email"
	SubjectValue string                 `json:"subject_value,omitempty"` // masked or hashed
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger writes SecurityEvents through zap
type SecurityLogger struct {
	zapLogger *zap.Logger
}

var defaultLogger *SecurityLogger

// InitSecurityLogger builds a JSON zap logger on stdout and makes it the default
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)
	defaultLogger = sl
	return sl
}

// NewSecurityLogger wraps an existing zap logger without touching the default
func NewSecurityLogger(zapLogger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger: zapLogger.With(
			zap.String("service", serviceName),
			zap.String("env", environment),
		),
	}
}

// SetDefault replaces the process-wide logger returned by DefaultLogger
func SetDefault(sl *SecurityLogger) {
	defaultLogger = sl
}

// DefaultLogger returns the process-wide logger, building one on first use
func DefaultLogger() *SecurityLogger {
	if defaultLogger == nil {
		return InitSecurityLogger("pondpatrol-web", "development")
	}
	return defaultLogger
}

// Log writes event at the zap level implied by its severity
func (sl *SecurityLogger) Log(_ context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Severity = GetSeverity(event.Event)

	sl.zapLogger.Log(event.Severity.level(), string(event.Event), event.fields()...)
}

func (e SecurityEvent) fields() []zap.Field {
	fields := []zap.Field{
		zap.String("event", string(e.Event)),
		zap.String("severity", string(e.Severity)),
		zap.Time("occurred_at", e.Timestamp),
	}
	optional := []struct{ key, val string }{
		{"subject_type", e.SubjectType},
		{"subject_value", e.SubjectValue},
		{"ip", e.IP},
		{"user_agent", e.UserAgent},
		{"request_id", e.RequestID},
	}
	for _, o := range optional {
		if o.val != "" {
			fields = append(fields, zap.String(o.key, o.val))
		}
	}
	if len(e.Details) > 0 {
		details, _ := json.Marshal(e.Details)
		fields = append(fields, zap.String("details", string(details)))
	}
	return fields
}

// LogRateLimitTriggered logs a request turned away with 429
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: maskValue("ip", ip),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogUnauthorized logs a rejected admin request
func (sl *SecurityLogger) LogUnauthorized(ctx context.Context, ip, userAgent, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventUnauthorizedAccess,
		SubjectType:  "ip",
		SubjectValue: maskValue("ip", ip),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": reason},
	})
}

// LogCSRFRejected logs a page form post without a matching token
func (sl *SecurityLogger) LogCSRFRejected(ctx context.Context, ip, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:       EventCSRFRejected,
		SubjectType: "ip",
		IP:          ip,
		RequestID:   requestID,
		Details:     map[string]interface{}{"endpoint": endpoint},
	})
}

// LogSpamSuspected logs a client whose form submissions keep failing validation
func (sl *SecurityLogger) LogSpamSuspected(ctx context.Context, ip, requestID, endpoint string, rejections int) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventSpamSuspected,
		SubjectType:  "ip",
		SubjectValue: maskValue("ip", ip),
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint, "rejections": rejections},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// MaskEmail keeps the first character and the domain ("r***@farm.in")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***" + email[1:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue returns the first 16 hex chars of the value's SHA-256
func HashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "ip":
		return value
	default:
		return HashValue(value)
	}
}
