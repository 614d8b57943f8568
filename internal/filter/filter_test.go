package filter

import "testing"

func TestClassifyAppliesInsertAndBackspace(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{name: "rune", ev: Event{Intent: InsertText, Key: KeyRune, Text: "a"}},
		{name: "space", ev: Event{Intent: InsertText, Key: KeyRune, Text: " "}},
		{name: "enter", ev: Event{Intent: InsertText, Key: KeyEnter, Text: "\n"}},
		{name: "tab", ev: Event{Intent: InsertText, Key: KeyTab, Text: "\t"}},
		{name: "backspace", ev: Event{Intent: DeletePreviousChar, Key: KeyBackspace}},
		{name: "unnamed other key", ev: Event{Intent: None, Key: KeyOther}},
		{name: "unnamed backspace key", ev: Event{Intent: None, Key: KeyBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev); got != Apply {
				t.Fatalf("Classify(%+v): got %v, want apply", tt.ev, got)
			}
		})
	}
}

func TestClassifyDiscardsEveryOtherNamedIntent(t *testing.T) {
	allowed := map[Intent]bool{None: true, InsertText: true, DeletePreviousChar: true}

	for i := Intent(0); i < intentCount; i++ {
		ev := Event{Intent: i, Key: KeyOther}
		want := Discard
		if allowed[i] {
			want = Apply
		}
		if got := Classify(ev); got != want {
			t.Fatalf("Classify(%s): got %v, want %v", i, got, want)
		}
	}
}

func TestClassifyDiscardsRawNavigationKeys(t *testing.T) {
	keys := []Key{KeyInsert, KeyDelete, KeyHome, KeyEnd, KeyLeft, KeyUp, KeyRight, KeyDown, KeyPageUp, KeyPageDown}
	for _, k := range keys {
		if got := Classify(Event{Intent: None, Key: k}); got != Discard {
			t.Fatalf("raw key %d: got %v, want discard", k, got)
		}
		if !DiscardsKey(k) {
			t.Fatalf("DiscardsKey(%d) = false", k)
		}
	}
}

func TestClassifyRawKeyListAppliesEvenToAllowedIntents(t *testing.T) {
	// A named insert delivered with a navigation key code is still discarded:
	// the raw list is checked after the named list, not instead of it.
	ev := Event{Intent: InsertText, Key: KeyHome, Text: "x"}
	if got := Classify(ev); got != Discard {
		t.Fatalf("got %v, want discard", got)
	}
}

func TestClassifyNamedListCheckedFirst(t *testing.T) {
	// Paste arriving as plain runes must not slip through on its key code.
	ev := Event{Intent: Paste, Key: KeyRune, Text: "pasted"}
	if got := Classify(ev); got != Discard {
		t.Fatalf("got %v, want discard", got)
	}
}

func TestClassifyUnknownIntentDiscarded(t *testing.T) {
	if got := Classify(Event{Intent: intentCount + 3, Key: KeyRune}); got != Discard {
		t.Fatalf("got %v, want discard", got)
	}
	if !Discards(intentCount) {
		t.Fatal("expected out-of-range intent to be discarded")
	}
}

func TestIntentStrings(t *testing.T) {
	for i := Intent(0); i < intentCount; i++ {
		if i.String() == "" || i.String() == "unknown" {
			t.Fatalf("intent %d has no name", i)
		}
	}
	if got := (intentCount + 1).String(); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
	if Apply.String() != "apply" || Discard.String() != "discard" {
		t.Fatal("unexpected decision strings")
	}
}
