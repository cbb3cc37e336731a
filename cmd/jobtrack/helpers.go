package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"jobtrack/internal/domain"
)

// printSummary writes the ranked job list as a plain table.
func printSummary(w io.Writer, jobs []domain.JobRecord) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "\nNo new jobs found this run.")
		return
	}

	line := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintf(w, "%4s  %5s  %-12s  %-15s  TITLE\n", "RANK", "SCORE", "SOURCE", "SALARY")
	fmt.Fprintln(w, line)

	for i, job := range jobs {
		salary := clip(job.Salary, 15)
		if salary == "" {
			salary = "—"
		}
		fmt.Fprintf(w, "%4d  %5d  %-12s  %-15s  %s\n",
			i+1, job.Score, clip(job.Source, 12), salary, clip(job.Title, 55))
	}

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total new jobs: %d\n\n", len(jobs))
}

func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
