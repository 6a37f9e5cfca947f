package timezone

import "time"

// The salon operates in Riyadh only; every date/time in the booking flow
// is interpreted in this zone.
const DefaultTimezone = "Asia/Riyadh"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate parses a YYYY-MM-DD string in the salon timezone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Location(DefaultTimezone))
}

// ParseDateTime parses a YYYY-MM-DD date plus HH:MM time in the salon
// timezone.
func ParseDateTime(date, hm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, Location(DefaultTimezone))
}
