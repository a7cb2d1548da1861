package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	workColor  = color.New(color.FgGreen)
	breakColor = color.New(color.FgCyan)
	idleColor  = color.New(color.FgYellow)
)

// FormatStatus renders the per-second status block: mode with activity
// state, time left, time since last input, and the running daily total.
// colorize is decided once by the caller from TTY detection; fatih/color
// additionally honors NO_COLOR.
func FormatStatus(s *State, active bool, idleFor time.Duration, now time.Time, colorize bool) string {
	modeLabel := capitalize(string(s.Mode))
	activityLabel := "Active"
	if !active {
		activityLabel = "Idle"
	}

	if colorize {
		c := workColor
		if s.Mode == ModeBreak {
			c = breakColor
		}
		modeLabel = c.Sprint(modeLabel)
		if !active {
			activityLabel = idleColor.Sprint(activityLabel)
		}
	}

	return fmt.Sprintf(
		"Mode: %s (%s)\nTime Left: %s\nLast Activity: %s\nTotal Work Today: %s",
		modeLabel,
		activityLabel,
		formatClock(s.Remaining),
		formatClock(idleFor.Seconds()),
		formatHoursMinutes(s.TodayTotal(now)),
	)
}

// formatClock renders seconds as MM:SS, clamping negatives to zero.
func formatClock(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// formatHoursMinutes renders seconds as HH:MM.
func formatHoursMinutes(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/3600, (seconds%3600)/60)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
