package ruled

import "testing"

func TestDefaultSequenceRotation(t *testing.T) {
	seq := DefaultSequence()
	// Uppercase alphabet, lowercase alphabet, five pangrams, ten digits.
	if got, want := seq.Len(), 26+26+5+10; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	if got := seq.Item(0); got != "A" {
		t.Fatalf("Item(0) = %q, want A", got)
	}
	if got := seq.Item(26); got != "a" {
		t.Fatalf("Item(26) = %q, want a", got)
	}
	if got := seq.Item(26 + 26 + 5); got != "0" {
		t.Fatalf("Item(57) = %q, want 0", got)
	}
	// Modulo wrap-around restarts at the uppercase alphabet.
	if got := seq.Item(seq.Len()); got != "A" {
		t.Fatalf("Item(Len) = %q, want wrapped A", got)
	}
}

func TestSequenceByName(t *testing.T) {
	for _, name := range []string{"default", "uppercase", "lowercase", "sentences", "digits"} {
		seq, ok := SequenceByName(name)
		if !ok {
			t.Fatalf("expected sequence %q to be available", name)
		}
		if seq.Len() == 0 {
			t.Fatalf("sequence %q is empty", name)
		}
	}
	if _, ok := SequenceByName("cursive"); ok {
		t.Fatalf("unexpected sequence for unknown name")
	}

	available := AvailableSequences()
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}
	for _, name := range []string{"default", "uppercase", "lowercase", "sentences", "digits"} {
		if _, ok := present[name]; !ok {
			t.Fatalf("expected %q in available list", name)
		}
	}
}

func TestNewSequenceCopiesItems(t *testing.T) {
	items := []string{"Aa", "Bb"}
	seq := NewSequence("custom", items)
	items[0] = "mutated"
	if got := seq.Item(0); got != "Aa" {
		t.Fatalf("Item(0) = %q, want Aa after caller mutation", got)
	}
	got := seq.Items()
	got[1] = "mutated"
	if seq.Item(1) != "Bb" {
		t.Fatalf("Items() leaked the backing array")
	}
}

func TestEmptySequenceItem(t *testing.T) {
	var seq Sequence
	if got := seq.Item(3); got != "" {
		t.Fatalf("Item on empty sequence = %q, want empty", got)
	}
}

func TestBookSections(t *testing.T) {
	sections := BookSections()
	if len(sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(sections))
	}
	for _, section := range sections {
		if section.Title == "" {
			t.Fatalf("section without title")
		}
		if len(section.Items) == 0 {
			t.Fatalf("section %q has no items", section.Title)
		}
	}
	if sections[0].Items[0] != "a" {
		t.Fatalf("first book item = %q, want a", sections[0].Items[0])
	}
	if sections[4].Items[9] != "9" {
		t.Fatalf("last digit item = %q, want 9", sections[4].Items[9])
	}
}
