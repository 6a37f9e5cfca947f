package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/GlamourSalonSA/salon-booking/internal/timezone"
)

// GenerateReference builds the customer-facing booking reference,
// BK + timestamp + 6 uppercase characters. Uniqueness is enforced by the
// database index; the uuid suffix makes collisions within a second
// practically impossible.
func GenerateReference() string {
	ts := timezone.Now().Format("20060102150405")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("BK%s%s", ts, suffix)
}
