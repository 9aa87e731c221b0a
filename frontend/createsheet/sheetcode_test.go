package createsheet

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateSheetIDFormat(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ST-20260307\d{4}$`)

	for i := 0; i < 50; i++ {
		id := GenerateSheetID(now)
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match ST-YYYYMMDDNNNN", id)
		}
	}
}
