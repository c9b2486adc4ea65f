package main

import (
	"time"
)

// BenchResult represents a single parsed benchmark result.
type BenchResult struct {
	Name        string  `json:"name"`
	Operations  int     `json:"operations"`
	NsPerOp     float64 `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int     `json:"bytes_per_op,omitempty"`
	AllocsPerOp int     `json:"allocs_per_op,omitempty"`
}

// BenchSummary represents the complete benchmark output.
type BenchSummary struct {
	Timestamp  string        `json:"timestamp"`
	CommitID   string        `json:"commit_id"`
	Branch     string        `json:"branch"`
	GoVersion  string        `json:"go_version"`
	SystemInfo string        `json:"system_info,omitempty"`
	Results    []BenchResult `json:"results"`
}

// CreateTimestamp returns a formatted timestamp for benchmark files.
func CreateTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
