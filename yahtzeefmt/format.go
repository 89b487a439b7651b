// Package yahtzeefmt formats [yahtzee] expected-value results for display.
// It is presentation-only: it performs no I/O and holds no solver logic,
// keeping it outside the core solver's scope.
package yahtzeefmt

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yahtzeego/yahtzee"
)

// printer is a locale-aware number formatter, following the same
// golang.org/x/text usage the module's teacher lineage carries in its
// go.mod requirements.
var printer = message.NewPrinter(language.English)

// EV formats an expected value to two decimal places, e.g. "254.73".
func EV(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Scorecard formats a scorecard's resolved categories and running upper
// total as a single human-readable line.
func Scorecard(s yahtzee.Scorecard) string {
	line := printer.Sprintf("upper=%d", uint8(s.UpperSum))
	for c := yahtzee.Category(0); int(c) < yahtzee.NumCategories; c++ {
		if st := s.State(c); st != yahtzee.Unscored {
			line += fmt.Sprintf(" %s:%s", c, st)
		}
	}
	return line
}

// Policy formats a keep decision for display, e.g. "keep 4 4 4" or "stop
// and score".
func Policy(k yahtzee.Keep, hasKeep bool) string {
	if !hasKeep {
		return "stop and score"
	}
	return "keep " + k.String()
}
