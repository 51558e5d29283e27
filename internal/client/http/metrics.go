package http

import (
	"sync"
	"time"
)

// StatsCollector keeps running totals of outbound requests in memory.
type StatsCollector struct {
	mu            sync.Mutex
	requests      int64
	errors        int64
	totalDuration time.Duration
	lastStatus    int
}

// RequestStats is a point-in-time copy of a StatsCollector.
type RequestStats struct {
	Requests        int64  `json:"requests"`
	Errors          int64  `json:"errors"`
	AverageDuration string `json:"average_duration"`
	LastStatus      int    `json:"last_status"`
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (s *StatsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalDuration += duration
}

func (s *StatsCollector) RecordRequestCount(method, path string, statusCode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++
	s.lastStatus = statusCode
}

func (s *StatsCollector) RecordRequestError(method, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors++
}

// Snapshot returns the current totals.
func (s *StatsCollector) Snapshot() RequestStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var avg time.Duration
	if s.requests > 0 {
		avg = s.totalDuration / time.Duration(s.requests)
	}
	return RequestStats{
		Requests:        s.requests,
		Errors:          s.errors,
		AverageDuration: avg.String(),
		LastStatus:      s.lastStatus,
	}
}
