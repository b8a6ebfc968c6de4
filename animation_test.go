package bounce

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPulseIdleByDefault(t *testing.T) {
	p := NewPulse(0.5, ease.Linear)
	if !p.Done {
		t.Error("new pulse should be Done")
	}
	p.Update(0.1)
	if p.Value() != 0 {
		t.Errorf("Value() = %v, want 0", p.Value())
	}
}

func TestPulseDecaysToZero(t *testing.T) {
	p := NewPulse(1.0, ease.Linear)
	p.Trigger()
	if p.Value() != 1 {
		t.Fatalf("Value() after Trigger = %v, want 1", p.Value())
	}

	p.Update(0.5)
	if math.Abs(p.Value()-0.5) > 0.01 {
		t.Errorf("Value() at half time = %v, want ~0.5", p.Value())
	}

	p.Update(0.5)
	if !p.Done {
		t.Fatal("expected Done after full duration")
	}
	if p.Value() != 0 {
		t.Errorf("Value() = %v, want 0", p.Value())
	}
}

func TestPulseRetrigger(t *testing.T) {
	p := NewPulse(0.5, ease.OutQuad)
	p.Trigger()
	p.Update(0.4)
	p.Trigger()
	if p.Value() != 1 || p.Done {
		t.Errorf("retrigger: Value() = %v, Done = %v, want 1, false", p.Value(), p.Done)
	}
}
