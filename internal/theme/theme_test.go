package theme

import "testing"

func TestByName(t *testing.T) {
	if got := ByName(NameLight); got.Name != NameLight {
		t.Errorf("ByName(light).Name = %q", got.Name)
	}
	if got := ByName(NameDark); got.Name != NameDark {
		t.Errorf("ByName(dark).Name = %q", got.Name)
	}

	// Unknown names fall back to a valid theme rather than failing.
	got := ByName("solarized")
	if got.Name != NameLight && got.Name != NameDark {
		t.Errorf("ByName(unknown).Name = %q", got.Name)
	}
}

func TestToggle(t *testing.T) {
	if got := Dark().Toggle(); got.Name != NameLight {
		t.Errorf("Dark().Toggle().Name = %q, want light", got.Name)
	}
	if got := Light().Toggle(); got.Name != NameDark {
		t.Errorf("Light().Toggle().Name = %q, want dark", got.Name)
	}
	if got := Dark().Toggle().Toggle(); got.Name != NameDark {
		t.Errorf("double toggle = %q, want dark", got.Name)
	}
}

func TestPriorityStyles(t *testing.T) {
	th := Dark()

	if th.Priority("high").GetBold() != true {
		t.Error("high priority should be bold")
	}
	// Unknown priorities use the medium style.
	if th.Priority("whatever").GetForeground() != th.PriorityMedium.GetForeground() {
		t.Error("unknown priority should use the medium style")
	}
}
