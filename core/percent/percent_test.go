package percent

import "testing"

func TestFromFloatClamps(t *testing.T) {
	if FromFloat(-3) != 0 {
		t.Errorf("negative percentage should clamp to 0")
	}
	if FromFloat(120) != 100 {
		t.Errorf("overlarge percentage should clamp to 100")
	}
	if FromFloat(10.4) != 10 {
		t.Errorf("expected 10.4 to round to 10, is %s", FromFloat(10.4))
	}
}

func TestOf(t *testing.T) {
	if got := FromInt(5).Of(200); got != 10 {
		t.Errorf("5%% of 200 should be 10, is %g", got)
	}
	if got := FromInt(100).Of(33); got != 33 {
		t.Errorf("100%% of 33 should be 33, is %g", got)
	}
}
