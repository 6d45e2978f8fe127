package availability

import (
	"math"
	"strings"
	"time"
)

// Verdict is the computed donation eligibility of a donor.
type Verdict string

const (
	Available    Verdict = "available"
	NotAvailable Verdict = "not_available"
	Unknown      Verdict = "unknown"
)

// DefaultMinIntervalDays approximates the 3-month minimum interval
// between whole-blood donations. Safe intervals differ by sex and
// region, so the threshold is a field on Engine rather than baked in.
const DefaultMinIntervalDays = 90

// Engine computes verdicts from donation recency. The zero value uses
// DefaultMinIntervalDays.
type Engine struct {
	MinIntervalDays int
}

func (e Engine) minInterval() int {
	if e.MinIntervalDays > 0 {
		return e.MinIntervalDays
	}
	return DefaultMinIntervalDays
}

// LastDonation is the normalized last-donation fact: an exact ledger
// date, an approximate date reconstructed from self-reported
// month/year, or nothing at all.
type LastDonation struct {
	known bool
	date  time.Time
}

func NoLastDonation() LastDonation {
	return LastDonation{}
}

func LastDonationFromDate(t time.Time) LastDonation {
	return LastDonation{known: true, date: t}
}

// LastDonationFromMonthYear reconstructs an approximate date as the
// first day of the given month ("Jan".."Dec") and year. Anything
// missing or unparseable collapses to no-date.
func LastDonationFromMonthYear(month, year string) LastDonation {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)
	if month == "" || year == "" {
		return LastDonation{}
	}

	t, err := time.Parse("Jan 2006", month+" "+year)
	if err != nil {
		return LastDonation{}
	}
	return LastDonation{known: true, date: t}
}

func (ld LastDonation) Known() bool {
	return ld.known
}

func (ld LastDonation) Date() (time.Time, bool) {
	return ld.date, ld.known
}

// Evaluate returns the verdict for a donor whose last donation is ld,
// as of now. A future-dated donation (clock skew, bad data) is Unknown
// rather than a guess either way.
func (e Engine) Evaluate(ld LastDonation, now time.Time) Verdict {
	if !ld.known {
		return Unknown
	}

	diffDays := int(math.Floor(now.Sub(ld.date).Hours() / 24))
	switch {
	case diffDays < 0:
		return Unknown
	case diffDays < e.minInterval():
		return NotAvailable
	default:
		return Available
	}
}
