package orderwindow

import (
	"testing"
	"time"

	"github.com/sivanaveen080/biryani-for-lunch/pkg/config"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
)

func at(minute int) time.Time {
	return time.Date(2025, time.March, 10, minute/60, minute%60, 0, 0, time.UTC)
}

func TestSameDayWindowInclusiveBounds(t *testing.T) {
	// 10:00 - 13:00
	gate := SameDay{Window{StartMinute: 600, EndMinute: 780}}

	admits := []int{600, 700, 780}
	for _, m := range admits {
		if err := gate.Admit(at(m)); err != nil {
			t.Fatalf("minute %d should be admitted: %v", m, err)
		}
	}

	rejects := []int{599, 781, 0, 1439}
	for _, m := range rejects {
		if err := gate.Admit(at(m)); err == nil {
			t.Fatalf("minute %d should be rejected", m)
		}
	}
}

func TestOvernightWindowCrossesMidnight(t *testing.T) {
	// 16:00 - 11:30 next day
	gate := Overnight{Window{StartMinute: 960, EndMinute: 690}}

	admits := []int{960, 0, 690, 1439}
	for _, m := range admits {
		if err := gate.Admit(at(m)); err != nil {
			t.Fatalf("minute %d should be admitted: %v", m, err)
		}
	}

	rejects := []int{700, 959}
	for _, m := range rejects {
		if err := gate.Admit(at(m)); err == nil {
			t.Fatalf("minute %d should be rejected", m)
		}
	}
}

func TestRejectionNamesTheWindow(t *testing.T) {
	gate := SameDay{Window{StartMinute: 600, EndMinute: 780}}
	err := gate.Admit(at(599))
	if err == nil {
		t.Fatal("expected rejection")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodePrecondition {
		t.Fatalf("expected precondition error, got %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected window details, got %T", typed.Details())
	}
	if details["window_start"] != "10:00" || details["window_end"] != "13:00" {
		t.Fatalf("rejection must name the permitted window: %+v", details)
	}
}

func TestOpenGateAlwaysAdmits(t *testing.T) {
	gate := Open{}
	for _, m := range []int{0, 599, 960, 1439} {
		if err := gate.Admit(at(m)); err != nil {
			t.Fatalf("open gate rejected minute %d: %v", m, err)
		}
	}
}

func TestFromConfig(t *testing.T) {
	for _, policy := range []string{"none", "same-day", "overnight"} {
		gate, err := FromConfig(config.WindowConfig{PolicyName: policy, StartMinute: 600, EndMinute: 780})
		if err != nil {
			t.Fatalf("policy %q: %v", policy, err)
		}
		if gate == nil {
			t.Fatalf("policy %q returned nil gate", policy)
		}
	}

	if _, err := FromConfig(config.WindowConfig{PolicyName: "weekends"}); err == nil {
		t.Fatal("unknown policy must error")
	}
}
