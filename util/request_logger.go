package util

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ariebrainware/inet-clinic/model"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequestEvent describes one served HTTP request.
type RequestEvent struct {
	RequestID string
	Method    string
	Path      string
	Status    int
	Duration  time.Duration
	ClientIP  string
	UserAgent string
	Details   map[string]interface{}
}

// RequestLogger writes request events to a zerolog logger and, when a
// database is attached, persists them to the request_log table.
type RequestLogger struct {
	logger zerolog.Logger
	db     *gorm.DB
	geo    *GeoIP
}

// NewRequestLogger returns a RequestLogger. db may be nil to disable persistence.
func NewRequestLogger(logger zerolog.Logger, db *gorm.DB) *RequestLogger {
	return &RequestLogger{logger: logger, db: db}
}

// WithGeoIP adds the client's city and country to every entry. g may be nil.
func (l *RequestLogger) WithGeoIP(g *GeoIP) *RequestLogger {
	l.geo = g
	return l
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// Log records event. Persistence is best-effort: failures are logged and otherwise ignored.
func (l *RequestLogger) Log(ctx context.Context, event RequestEvent) {
	msg := fmt.Sprintf("%s %s -> %d", event.Method, sanitizeLogValue(event.Path), event.Status)
	city, country := l.geo.Lookup(event.ClientIP)

	var evt *zerolog.Event
	switch {
	case event.Status >= http.StatusInternalServerError:
		evt = l.logger.Error()
	case event.Status >= http.StatusBadRequest:
		evt = l.logger.Warn()
	default:
		evt = l.logger.Info()
	}
	evt.
		Str("request_id", event.RequestID).
		Str("method", event.Method).
		Str("path", sanitizeLogValue(event.Path)).
		Int("status", event.Status).
		Dur("latency", event.Duration).
		Str("remote_ip", sanitizeLogValue(event.ClientIP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent))
	if country != "" {
		evt = evt.Str("city", city).Str("country", country)
	}
	evt.Msg(msg)

	if l.db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.RequestLog{
		RequestID:  event.RequestID,
		Method:     event.Method,
		Path:       sanitizeLogValue(event.Path),
		Status:     event.Status,
		DurationMS: event.Duration.Milliseconds(),
		ClientIP:   sanitizeLogValue(event.ClientIP),
		UserAgent:  sanitizeLogValue(event.UserAgent),
		City:       city,
		Country:    country,
		Message:    msg,
		Details:    details,
	}
	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		l.logger.Warn().Err(err).Msg("Failed to persist request log")
	}
}
