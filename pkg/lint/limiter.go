package lint

import "log/slog"

// Limiter caps per-file finding logs so one giant broken file cannot flood
// the log. A limit of 0 disables finding logs, a negative limit logs
// everything.
type Limiter struct {
	limit int
	count int
}

// NewLimiter creates a Limiter with the given per-file log limit.
func NewLimiter(limit int) *Limiter {
	return &Limiter{limit: limit}
}

// Log emits one finding unless the limit is exhausted.
func (l *Limiter) Log(logger *slog.Logger, finding Finding) {
	if l.limit == 0 {
		return
	}
	if l.limit > 0 && l.count >= l.limit {
		l.count++
		return
	}
	l.count++
	logger.Warn("lint finding", "file", finding.Source, "detail", finding.Detail, "entry", finding.Entry)
}

// Summary logs how many findings were suppressed, if any.
func (l *Limiter) Summary(logger *slog.Logger, source string) {
	if l.limit <= 0 {
		return
	}
	if l.count > l.limit {
		logger.Warn("lint findings suppressed", "file", source, "findings", l.count, "logged", l.limit)
	}
}
