package orderwindow

import (
	"fmt"
	"time"

	"github.com/sivanaveen080/biryani-for-lunch/pkg/config"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
)

// Gate decides whether checkout may proceed at a given wall-clock time.
// Deployments without an ordering window use the Open gate.
type Gate interface {
	Admit(now time.Time) error
}

// Open admits at any time of day.
type Open struct{}

func (Open) Admit(time.Time) error { return nil }

// Window is a start/end pair in minutes of the day, inclusive at both ends.
type Window struct {
	StartMinute int
	EndMinute   int
}

// SameDay admits when the window lies within one calendar day.
type SameDay struct {
	Window
}

func (g SameDay) Admit(now time.Time) error {
	m := minuteOfDay(now)
	if m >= g.StartMinute && m <= g.EndMinute {
		return nil
	}
	return g.rejection()
}

// Overnight admits when the window crosses midnight.
type Overnight struct {
	Window
}

func (g Overnight) Admit(now time.Time) error {
	m := minuteOfDay(now)
	if m >= g.StartMinute || m <= g.EndMinute {
		return nil
	}
	return g.rejection()
}

// FromConfig maps deployment configuration to a gate.
func FromConfig(cfg config.WindowConfig) (Gate, error) {
	w := Window{StartMinute: cfg.StartMinute, EndMinute: cfg.EndMinute}
	switch cfg.Policy() {
	case config.WindowPolicyNone:
		return Open{}, nil
	case config.WindowPolicySameDay:
		return SameDay{w}, nil
	case config.WindowPolicyOvernight:
		return Overnight{w}, nil
	}
	return nil, fmt.Errorf("unknown order window policy %q", cfg.PolicyName)
}

func (w Window) rejection() error {
	msg := fmt.Sprintf("orders are accepted between %s and %s only, please come back then",
		clock(w.StartMinute), clock(w.EndMinute))
	return pkgerrors.New(pkgerrors.CodePrecondition, msg).WithDetails(map[string]any{
		"window_start": clock(w.StartMinute),
		"window_end":   clock(w.EndMinute),
	})
}

func clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
