package invisible

import (
	"testing"
)

func TestClassifyKnownCodePoints(t *testing.T) {
	cases := []struct {
		r    rune
		kind Kind
	}{
		{'\n', NewLine},
		{'\t', Tab},
		{' ', Space},
		{' ', NoBreakSpace},
		{'　', FullwidthSpace},
		{' ', OtherWhitespace}, // EN SPACE, category Zs
		{' ', OtherWhitespace}, // FIGURE SPACE
		{'\x00', OtherControl},
		{'\r', OtherControl},
		{'\v', OtherControl}, // VT is not a newline symbol
		{'\f', OtherControl},
		{'', OtherControl}, // NEL is C1
		{'', OtherControl},
		{'A', None},
		{'ä', None},
		{'漢', None},
		{'​', None}, // ZERO WIDTH SPACE is Cf, not Zs
		{' ', None}, // LINE SEPARATOR is Zl
		{' ', None}, // PARAGRAPH SEPARATOR is Zp
	}
	for _, c := range cases {
		if kind := Classify(c.r); kind != c.kind {
			t.Errorf("Classify(%#U) = %s, want %s", c.r, kind, c.kind)
		}
	}
}

func TestClassifyIsStable(t *testing.T) {
	for r := rune(0); r < 0x3100; r++ {
		if Classify(r) != Classify(r) {
			t.Fatalf("classification of %#U is not repeatable", r)
		}
	}
}

func TestPrefKeys(t *testing.T) {
	for _, k := range Kinds() {
		if k.PrefKey() == "" {
			t.Errorf("kind %s has no preference key", k)
		}
	}
	if None.PrefKey() != "" {
		t.Errorf("None must not have a preference key")
	}
	if NoBreakSpace.PrefKey() != OtherWhitespace.PrefKey() {
		t.Errorf("no-break-space and whitespace should share a preference key")
	}
}

func TestObservationKeysDeduplicated(t *testing.T) {
	keys := ObservationKeys()
	if len(keys) != 6 {
		t.Fatalf("expected 6 distinct observation keys, got %d: %v", len(keys), keys)
	}
	seen := map[string]bool{}
	for _, key := range keys {
		if seen[key] {
			t.Errorf("duplicate observation key %q", key)
		}
		seen[key] = true
	}
}

func TestKindSet(t *testing.T) {
	s := NewKindSet(Tab, Space)
	if !s.Has(Tab) || !s.Has(Space) {
		t.Errorf("set should contain tab and space")
	}
	if s.Has(NewLine) || s.Has(None) {
		t.Errorf("set contains kinds it should not")
	}
	s = s.Without(Tab)
	if s.Has(Tab) {
		t.Errorf("tab should have been removed")
	}
	if !AllKinds.Has(OtherControl) {
		t.Errorf("AllKinds should contain every kind")
	}
	if !NewKindSet().IsEmpty() {
		t.Errorf("empty set should be empty")
	}
}
