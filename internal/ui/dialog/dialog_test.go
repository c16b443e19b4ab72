package dialog

import "testing"

func TestShowAndExpire(t *testing.T) {
	o := NewOverlay(2)

	if _, ok := o.Current(); ok {
		t.Fatal("Expected no panel initially")
	}

	o.Show("Achievements", []string{"First Word", "Combo Master"})

	msg, ok := o.Current()
	if !ok {
		t.Fatal("Expected a panel after Show")
	}
	if msg.Title != "Achievements" || len(msg.Lines) != 2 {
		t.Errorf("Unexpected panel contents: %+v", msg)
	}
	if msg.Alpha() != 1 {
		t.Errorf("Expected opaque panel, got alpha %f", msg.Alpha())
	}

	o.Update(1.75)
	msg, ok = o.Current()
	if !ok {
		t.Fatal("Expected panel to still be visible")
	}
	if a := msg.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("Expected fading alpha, got %f", a)
	}

	o.Update(0.25)
	if _, ok := o.Current(); ok {
		t.Error("Expected panel to expire")
	}
}

func TestShowReplacesAndCopiesLines(t *testing.T) {
	o := NewOverlay(0)
	lines := []string{"one"}
	o.Show("A", lines)
	lines[0] = "changed"
	o.Show("B", []string{"two"})

	msg, _ := o.Current()
	if msg.Title != "B" || msg.Lines[0] != "two" {
		t.Errorf("Expected replaced panel B, got %+v", msg)
	}
	if msg.MaxTime != DefaultDuration {
		t.Errorf("Expected default duration %f, got %f", DefaultDuration, msg.MaxTime)
	}

	o.Dismiss()
	if _, ok := o.Current(); ok {
		t.Error("Expected no panel after Dismiss")
	}
}
