package createsheet

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateSheetID builds a sheet identifier from the submission date
// plus a random 4-digit suffix: ST-YYYYMMDDNNNN. The suffix gives no
// uniqueness guarantee; collisions surface as an insert error.
func GenerateSheetID(now time.Time) string {
	return fmt.Sprintf("ST-%s%04d", now.Format("20060102"), rand.IntN(10000))
}
