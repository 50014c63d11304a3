package ruled

import (
	"slices"
	"sort"

	"pkt.systems/ruled/internal/drills"
)

// Sequence is a named, immutable list of tracing items cycled across the
// writing rows of a worksheet.
type Sequence struct {
	name  string
	items []string
}

// NewSequence returns a Sequence from a name and items. The items are
// copied, so later mutation of the argument does not leak in.
func NewSequence(name string, items []string) Sequence {
	return Sequence{name: name, items: slices.Clone(items)}
}

// Name returns the sequence name.
func (s Sequence) Name() string { return s.name }

// Len returns the number of items.
func (s Sequence) Len() int { return len(s.items) }

// Item returns item i modulo the sequence length, so callers can index
// writing rows without bounds bookkeeping. An empty sequence returns "".
func (s Sequence) Item(i int) string {
	if len(s.items) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return s.items[i%len(s.items)]
}

// Items returns a copy of the item list.
func (s Sequence) Items() []string { return slices.Clone(s.items) }

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var builtinSequences = map[string]Sequence{
	"default": {name: "default", items: concat(
		drills.Uppercase(),
		drills.Lowercase(),
		drills.Sentences(),
		drills.Digits(),
	)},
	"uppercase": {name: "uppercase", items: drills.Uppercase()},
	"lowercase": {name: "lowercase", items: drills.Lowercase()},
	"sentences": {name: "sentences", items: drills.Sentences()},
	"digits":    {name: "digits", items: drills.Digits()},
}

// DefaultSequence returns the built-in rotation: uppercase alphabet,
// lowercase alphabet, pangram sentences, digits, in that order.
func DefaultSequence() Sequence {
	return builtinSequences["default"]
}

// SequenceByName returns a built-in sequence by name.
func SequenceByName(name string) (Sequence, bool) {
	s, ok := builtinSequences[name]
	return s, ok
}

// AvailableSequences lists the built-in sequence names, sorted.
func AvailableSequences() []string {
	names := make([]string, 0, len(builtinSequences))
	for name := range builtinSequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Section is one titled part of a practice book.
type Section struct {
	Title string
	Items []string
}

// BookSections returns the sections of the full practice book: letters
// row by row, then sentences, for both cases, then digits.
func BookSections() []Section {
	return []Section{
		{Title: "Lowercase Handwriting", Items: drills.Lowercase()},
		{Title: "Lowercase Handwriting Sentences", Items: drills.Sentences()},
		{Title: "Uppercase Handwriting", Items: drills.Uppercase()},
		{Title: "Uppercase Handwriting Sentences", Items: drills.UppercaseSentences()},
		{Title: "Digit Handwriting", Items: drills.Digits()},
	}
}
