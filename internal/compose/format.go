package compose

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Options sizes a composition and fixes the instant it depicts.
type Options struct {
	Width  int
	Height int
	Now    time.Time
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// To12Hour rewrites "HH:MM" as "H:MM AM|PM". Other strings are returned unchanged.
func To12Hour(v string) string {
	m := clockPattern.FindStringSubmatch(v)
	if m == nil {
		return v
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return v
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return strconv.Itoa(h12) + ":" + m[2] + " " + suffix
}

// DateLabel formats t as "Mon, Jan 2" in loc.
func DateLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon, Jan 2")
}

// ClockLabel formats t as a 24-hour "15:04" in loc.
func ClockLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// fontPx sizes type relative to the canvas width, rounded to whole pixels.
func fontPx(width int, ratio float64) float64 {
	return math.Floor(float64(width)*ratio + 0.5)
}
