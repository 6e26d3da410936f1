package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/notification"

	"gorm.io/gorm"
)

// ListResponse represents a paginated list of records
type ListResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// MessageResponse carries the confirmation text of an action
type MessageResponse struct {
	Message string `json:"message"`
}

// DashboardCache caches computed dashboards and reports for a fixed TTL. A nil
// *DashboardCache disables caching.
type DashboardCache struct {
	store cache.Cache
	ttl   time.Duration
}

// NewDashboardCache creates a dashboard cache over store
func NewDashboardCache(store cache.Cache, ttl time.Duration) *DashboardCache {
	return &DashboardCache{store: store, ttl: ttl}
}

func loadCached[T any](ctx context.Context, dc *DashboardCache, key string, load func() (T, error)) (T, error) {
	if dc == nil {
		return load()
	}
	return cache.GetOrLoad(ctx, dc.store, key, dc.ttl, load)
}

func (dc *DashboardCache) invalidate(ctx context.Context, prefixes ...string) {
	if dc == nil {
		return
	}
	cache.Invalidate(ctx, dc.store, prefixes...)
}

// lineSeparator joins entries of the free-text log fields
const lineSeparator = "<br>"

// paginate normalises page parameters and returns the row offset
func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, (page - 1) * pageSize
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// scrub turns free text into a lowercase URL slug
func scrub(s string) string {
	return strings.ToLower(strings.Trim(nonAlphanumeric.ReplaceAllString(s, "-"), "-"))
}

// daysUntil returns the whole days from today to d, or nil when d is unset
func daysUntil(d *models.Date, today models.Date) *int {
	if d == nil || d.IsZero() {
		return nil
	}
	days := today.DaysUntil(*d)
	return &days
}

// appendLine adds line to a <br>-separated log
func appendLine(existing, line string) string {
	if strings.TrimSpace(existing) == "" {
		return line
	}
	return existing + lineSeparator + line
}

// splitList splits a comma separated field, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func lookupError(err, notFound error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// notify sends n and logs a failure; mail problems never fail the calling operation
func notify(ctx context.Context, notifier notification.NotifierInterface, n notification.Notification) bool {
	if notifier == nil {
		return false
	}
	if err := notifier.Notify(ctx, n); err != nil {
		logger.WithContext(ctx).WithField("subject", n.Subject).Warnf("Notification failed: %v", err)
		return false
	}
	return true
}

func dateString(d *models.Date) string {
	if d == nil || d.IsZero() {
		return "Not specified"
	}
	return d.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
