package invisible

import "unicode"

// Kind is the placeholder category of an invisible character.
// The set of kinds is closed; clients must not rely on numeric values.
type Kind int8

// Kinds of invisible characters. None flags a character which will get no
// placeholder symbol at all.
const (
	None Kind = iota
	NewLine
	Tab
	Space
	NoBreakSpace
	FullwidthSpace
	OtherWhitespace
	OtherControl
)

// Stringer implementation.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case NewLine:
		return "newline"
	case Tab:
		return "tab"
	case Space:
		return "space"
	case NoBreakSpace:
		return "no-break-space"
	case FullwidthSpace:
		return "fullwidth-space"
	case OtherWhitespace:
		return "whitespace"
	case OtherControl:
		return "control"
	}
	return "invisible-kind-?"
}

// Classify returns the invisible kind for a code-point, or None for ordinary
// characters. It is total: any rune maps to exactly one kind.
//
// Only LF is treated as a newline symbol. Other line terminators (VT, FF,
// CR, NEL) are general control characters and fold into OtherControl; the
// Unicode separators LS and PS classify as None.
func Classify(r rune) Kind {
	switch r {
	case '\n':
		return NewLine
	case '\t':
		return Tab
	case ' ':
		return Space
	case '\u00A0':
		return NoBreakSpace
	case '\u3000':
		return FullwidthSpace
	}
	switch {
	case unicode.Is(unicode.Zs, r):
		return OtherWhitespace
	case unicode.Is(unicode.Cc, r):
		return OtherControl
	}
	return None
}

// Preference keys governing per-kind visibility. NoBreakSpace and
// OtherWhitespace deliberately share a key, i.e. there are six distinct
// keys for seven kinds.
const (
	PrefKeyShow           = "invisibles.show"
	PrefKeyNewLine        = "invisibles.newline"
	PrefKeyTab            = "invisibles.tab"
	PrefKeySpace          = "invisibles.space"
	PrefKeyWhitespace     = "invisibles.whitespace"
	PrefKeyFullwidthSpace = "invisibles.fullwidth-space"
	PrefKeyControl        = "invisibles.control"
)

// PrefKey returns the preference key which governs the visibility of
// placeholders of kind k, or "" for None.
func (k Kind) PrefKey() string {
	switch k {
	case NewLine:
		return PrefKeyNewLine
	case Tab:
		return PrefKeyTab
	case Space:
		return PrefKeySpace
	case NoBreakSpace, OtherWhitespace:
		return PrefKeyWhitespace
	case FullwidthSpace:
		return PrefKeyFullwidthSpace
	case OtherControl:
		return PrefKeyControl
	}
	return ""
}

// Kinds returns all placeholder kinds (None excluded), in stable order.
func Kinds() []Kind {
	return []Kind{NewLine, Tab, Space, NoBreakSpace, FullwidthSpace,
		OtherWhitespace, OtherControl}
}

// ObservationKeys returns the deduplicated set of per-kind preference keys,
// in stable order. Clients subscribe to exactly these keys while invisibles
// are shown.
func ObservationKeys() []string {
	keys := make([]string, 0, 6)
	seen := make(map[string]bool, 6)
	for _, k := range Kinds() {
		key := k.PrefKey()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// --- Kind sets -------------------------------------------------------------

// KindSet is a set of invisible kinds, implemented as a bitmask over the
// closed enum.
type KindSet uint8

// AllKinds contains every placeholder kind.
var AllKinds = NewKindSet(Kinds()...)

// NewKindSet creates a set from the given kinds. None is ignored.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// Has checks set membership.
func (s KindSet) Has(k Kind) bool {
	if k == None {
		return false
	}
	return s&(1<<uint(k-1)) != 0
}

// With returns s with kind k included.
func (s KindSet) With(k Kind) KindSet {
	if k == None {
		return s
	}
	return s | 1<<uint(k-1)
}

// Without returns s with kind k excluded.
func (s KindSet) Without(k Kind) KindSet {
	if k == None {
		return s
	}
	return s &^ (1 << uint(k-1))
}

// IsEmpty is true for the empty set.
func (s KindSet) IsEmpty() bool {
	return s == 0
}
