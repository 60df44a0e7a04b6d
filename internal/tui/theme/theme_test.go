package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
	if got := ByName("no-such-theme"); got.Name != Slate.Name {
		t.Errorf("ByName(unknown) = %q, want %q", got.Name, Slate.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(Slate.Name)

	SetActive("tokyo-night")
	if Active.Name != "tokyo-night" {
		t.Errorf("Active = %q, want tokyo-night", Active.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != "slate" {
		t.Errorf("Names() = %v", names)
	}
}
