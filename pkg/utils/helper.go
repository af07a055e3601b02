package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, returns nil when empty or invalid
func ParseFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &result
}

// GenerateConfirmationCode creates a unique reservation code with timestamp
func GenerateConfirmationCode() string {
	now := time.Now()

	// Format: RES-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RES-%s-%s-%s", datePart, timePart, randomPart)
}

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
