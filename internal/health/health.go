// Package health probes the external programs the launcher and timer lean
// on. Terminal emulators are required (at least one must resolve); the
// screen and idle utilities are optional and only degrade features.
package health

import (
	"fmt"
	"os/exec"
	"strings"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name     string
	Passed   bool
	Optional bool
	Message  string
}

// Report contains all health check results
type Report struct {
	Checks []CheckResult
	// Passed is true when at least one terminal emulator is available.
	// Optional utilities never fail the report.
	Passed bool
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// RunChecks probes the configured emulators and the optional utilities.
func RunChecks(terminals []string) *Report {
	report := &Report{Checks: make([]CheckResult, 0, len(terminals)+3)}

	anyTerminal := false
	for _, name := range terminals {
		c := checkBinary(name, false)
		if c.Passed {
			anyTerminal = true
		}
		report.Checks = append(report.Checks, c)
	}
	report.Passed = anyTerminal

	report.Checks = append(report.Checks,
		checkBinary("xdpyinfo", true),
		checkBinary("xprintidle", true),
		checkBinary("python3", true),
	)

	return report
}

func checkBinary(name string, optional bool) CheckResult {
	if _, err := lookPath(name); err != nil {
		msg := fmt.Sprintf("%s not found in PATH", name)
		if optional {
			msg += " (optional)"
		}
		return CheckResult{Name: name, Passed: false, Optional: optional, Message: msg}
	}
	return CheckResult{Name: name, Passed: true, Optional: optional, Message: fmt.Sprintf("%s found", name)}
}

// FormatReport formats the health report for console output
func FormatReport(report *Report) string {
	var b strings.Builder
	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "✓ %s\n", check.Message)
		} else if check.Optional {
			fmt.Fprintf(&b, "- %s\n", check.Message)
		} else {
			fmt.Fprintf(&b, "✗ %s\n", check.Message)
		}
	}
	if !report.Passed {
		b.WriteString("✗ Error: no terminal emulator available\n")
	}
	return b.String()
}
