package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type WeightUnit string

const (
	WeightUnitKg WeightUnit = "kg"
	WeightUnitLb WeightUnit = "lb"

	kgPerLb = 0.45359237
)

// ParseWeightUnit defaults to kilograms for anything it does not recognize.
func ParseWeightUnit(value string) WeightUnit {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lb", "lbs", "pound", "pounds":
		return WeightUnitLb
	}
	return WeightUnitKg
}

// ParseWeight parses user input in unit and returns kilograms.
// Malformed or non-positive input yields 0 (unset).
func ParseWeight(value string, unit WeightUnit) float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	weight, err := strconv.ParseFloat(value, 64)
	if err != nil || weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
		return 0
	}
	if unit == WeightUnitLb {
		return weight * kgPerLb
	}
	return weight
}

// run_time_seconds is an int4 column
const maxRunTimeMinutes = (math.MaxInt32 - 59) / 60

// ParseRunTime parses "m:ss" into seconds. Anything else yields 0 (unset),
// including values that do not fit the stored column.
func ParseRunTime(value string) int {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 || minutes > maxRunTimeMinutes {
		return 0
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0
	}
	return minutes*60 + seconds
}

// ParseCompletionRate parses a percentage in [0, 100], with or without a
// trailing %. Anything else yields 0 (unset).
func ParseCompletionRate(value string) float64 {
	value = strings.TrimSuffix(strings.TrimSpace(value), "%")
	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || rate < 0 || rate > 100 || math.IsNaN(rate) {
		return 0
	}
	return rate
}

func FormatWeight(kg float64, unit WeightUnit) string {
	if kg <= 0 {
		return "N/A"
	}
	if unit == WeightUnitLb {
		return fmt.Sprintf("%.1f lbs", kg/kgPerLb)
	}
	return fmt.Sprintf("%.1f kg", kg)
}

func FormatRunTime(seconds int) string {
	if seconds <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func FormatCompletionRate(rate float64) string {
	if rate <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", rate)
}
