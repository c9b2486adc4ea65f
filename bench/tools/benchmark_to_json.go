// Package main provides a tool to parse `go test -bench` output and format
// the results as JSON.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"
)

// benchLineRegex matches standard Go benchmark output lines, with optional
// -benchmem columns.
var benchLineRegex = regexp.MustCompile(
	`Benchmark(\w+)(?:-\d+)?\s+(\d+)\s+(\d+\.?\d*)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./bench/tools <benchmark_output_file> [commit_id] [branch_name]")
		os.Exit(1)
	}

	inputFile := os.Args[1]
	commitID := "unknown"
	branch := "unknown"

	if len(os.Args) >= 3 {
		commitID = os.Args[2]
	}
	if len(os.Args) >= 4 {
		branch = os.Args[3]
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	content := string(data)
	summary := BenchSummary{
		Timestamp: CreateTimestamp(),
		CommitID:  commitID,
		Branch:    branch,
	}

	// Extract system info
	if sysMatch := regexp.MustCompile(`goos:.+\ngoarch:.+`).FindString(content); sysMatch != "" {
		summary.SystemInfo = strings.ReplaceAll(strings.TrimSpace(sysMatch), "\n", " ")
	}

	// Find Go version
	if verMatch := regexp.MustCompile(`go\d+\.\d+(?:\.\d+)?`).FindString(content); verMatch != "" {
		summary.GoVersion = verMatch
	}

	for _, matches := range benchLineRegex.FindAllStringSubmatch(content, -1) {
		ops, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		result := BenchResult{
			Name:       matches[1],
			Operations: ops,
			NsPerOp:    nsPerOp,
		}
		if nsPerOp > 0 {
			result.OpsPerSec = 1_000_000_000 / nsPerOp
		}
		if matches[4] != "" {
			result.BytesPerOp, _ = strconv.Atoi(matches[4])
		}
		if matches[5] != "" {
			result.AllocsPerOp, _ = strconv.Atoi(matches[5])
		}

		summary.Results = append(summary.Results, result)
	}

	if len(summary.Results) == 0 {
		fmt.Println("No benchmark results found in input")
		os.Exit(1)
	}

	out, err := sonnet.Marshal(summary)
	if err != nil {
		fmt.Printf("Error encoding summary: %v\n", err)
		os.Exit(1)
	}

	outputFile := strings.TrimSuffix(inputFile, ".txt") + ".json"
	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d results to %s\n", len(summary.Results), outputFile)
}
