package attendance

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DefaultCutoff is the local time of day after which a check-in is late.
const DefaultCutoff = "09:05:00"

// Evaluation is the outcome of comparing a check-in instant against the cutoff.
type Evaluation struct {
	IsLate      bool
	LateMinutes int
	Cutoff      time.Time
}

// Evaluate compares checkin against cutoff. Late minutes are rounded to the
// nearest minute, half away from zero, and never drop below one once the
// cutoff has passed.
func Evaluate(checkin, cutoff time.Time) Evaluation {
	if !checkin.After(cutoff) {
		return Evaluation{Cutoff: cutoff}
	}

	lateMinutes := int(math.Round(checkin.Sub(cutoff).Minutes()))
	if lateMinutes < 1 {
		lateMinutes = 1
	}

	return Evaluation{
		IsLate:      true,
		LateMinutes: lateMinutes,
		Cutoff:      cutoff,
	}
}

// Evaluator binds Evaluate to a fixed daily cutoff in a given location.
type Evaluator struct {
	hour, minute, second int
	loc                  *time.Location
}

func NewEvaluator(cutoff string, loc *time.Location) (Evaluator, error) {
	t, err := time.Parse(time.TimeOnly, cutoff)
	if err != nil {
		return Evaluator{}, fmt.Errorf("parse cutoff %q: %w", cutoff, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return Evaluator{
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		loc:    loc,
	}, nil
}

// Location is the timezone calendar days are computed in.
func (e Evaluator) Location() *time.Location {
	return e.loc
}

// CutoffFor returns the cutoff on the local calendar day of t.
func (e Evaluator) CutoffFor(t time.Time) time.Time {
	local := t.In(e.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), e.hour, e.minute, e.second, 0, e.loc)
}

func (e Evaluator) Evaluate(checkin time.Time) Evaluation {
	return Evaluate(checkin, e.CutoffFor(checkin))
}

// Deduction returns the hours deducted for lateMinutes of lateness.
//
//	late <=     reported   not reported (before x2)
//	24          0.5        1
//	55          1          2
//	85          1.5        3
//	more        1.5+0.5n   3+n       n = ceil((late-85)/30)
//
// Unreported lateness doubles the not-reported column once more, so it costs
// four times the reported rate.
func Deduction(lateMinutes int, reportedInAdvance bool) float64 {
	if lateMinutes <= 0 {
		return 0
	}

	var reported, unreported float64
	switch {
	case lateMinutes <= 24:
		reported, unreported = 0.5, 1
	case lateMinutes <= 55:
		reported, unreported = 1, 2
	case lateMinutes <= 85:
		reported, unreported = 1.5, 3
	default:
		extra := math.Ceil(float64(lateMinutes-85) / 30)
		reported, unreported = 1.5+0.5*extra, 3+extra
	}

	if reportedInAdvance {
		return reported
	}
	return unreported * 2
}

// DeductionNotice renders the message shown after a late check-in.
func DeductionNotice(hours float64, reportedInAdvance bool, approver string) string {
	if reportedInAdvance {
		return fmt.Sprintf("late with excuse, approved by %s, deduct %sh", approver, FormatHours(hours))
	}
	return fmt.Sprintf("late without excuse, deduct %sh (double penalty)", FormatHours(hours))
}

// FormatHours prints hours without trailing zeros: 0.5, 2, 1.5.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
