package textutil

import (
	"reflect"
	"strings"
	"testing"
)

func TestStripPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain word", "hello", "hello"},
		{"trailing comma", "hello,", "hello"},
		{"keeps period", "sat.", "sat."},
		{"quotes and bang", `"wow!"`, "wow"},
		{"only punctuation", "?!", ""},
		{"only periods", "...", "..."},
		{"hyphen and apostrophe", "don't-stop", "dontstop"},
		{"unicode punctuation", "«bonjour»", "bonjour"},
		{"keeps symbols", "a+b=$5", "a+b=$5"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripPunctuation(tt.input); got != tt.want {
				t.Errorf("StripPunctuation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveSpaceAndPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sentence", "The cat sat. The dog ran.", "Thecatsat.Thedogran."},
		{"tabs and newlines", "a\tb\nc", "abc"},
		{"punctuation runs", "wait,,, what?!", "waitwhat"},
		{"periods survive", "a...b", "a...b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveSpaceAndPunctuation(tt.input); got != tt.want {
				t.Errorf("RemoveSpaceAndPunctuation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "hello", []string{"hello"}},
		{"two words", "hello world", []string{"hello", "world"}},
		{"double space", "a  b", []string{"a", "", "b"}},
		{"boundary spaces", " a ", []string{"", "a", ""}},
		{"tab is not a separator", "a\tb", []string{"a\tb"}},
		{"empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitWords(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len(got) != strings.Count(tt.input, " ")+1 {
				t.Errorf("SplitWords(%q) returned %d elements, want %d", tt.input, len(got), strings.Count(tt.input, " ")+1)
			}
		})
	}
}

func TestSplitWordsNonEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two words", "hello world", []string{"hello", "world"}},
		{"double space", "a  b", []string{"a", "b"}},
		{"boundary spaces", "  a ", []string{"a"}},
		{"only spaces", "   ", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWordsNonEmpty(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitWordsNonEmpty(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldKeyMatchesCaseVariants(t *testing.T) {
	if FoldKey("The") != FoldKey("tHE") {
		t.Fatalf("expected case variants to share a key: %q vs %q", FoldKey("The"), FoldKey("tHE"))
	}
	if FoldKey("cat") == FoldKey("cut") {
		t.Fatal("expected different words to have different keys")
	}
	if FoldKey("Straße") == FoldKey("STRASSE") {
		t.Fatal("expected folding to stay per rune without expanding ß")
	}
	if got := Lower("HeLLo WORLD"); got != "hello world" {
		t.Fatalf("Lower() = %q, want %q", got, "hello world")
	}
}
