package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/clock"
)

var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// parseClock accepts a 24-hour "HH:MM".
func parseClock(s string) (clock.TimeOfDay, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid time %q (use HH:MM, e.g. 09:30)", s)
	}
	return clock.Normalize(clock.TimeToMinutes(s)), nil
}

func parseDateArg(s string) (time.Time, error) {
	d, err := calendar.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return d, nil
}

func parseDateRange(startArg, endArg string) (time.Time, time.Time, error) {
	start, err := parseDateArg(startArg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateArg(endArg)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseMonthArg(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (use YYYY-MM, e.g. 2026-01)", s)
	}
	return t.Year(), t.Month(), nil
}

// parseIndex turns a 1-based list position into a slice index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid entry number %q", s)
	}
	return n - 1, nil
}

// readInput reads the named file, or stdin when no file is given or it is "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// writeOutput writes content to path, or stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Printf("Written to %s\n", path)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatDate(d time.Time) string {
	return d.Format("Mon, 02 Jan 2006")
}
