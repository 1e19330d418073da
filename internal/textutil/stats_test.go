package textutil

import (
	"errors"
	"strings"
	"testing"
)

func TestAnalyzeExample(t *testing.T) {
	got, err := Analyze("The cat sat. The dog ran.")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if got.CharCount != 20 {
		t.Errorf("CharCount = %d, want 20", got.CharCount)
	}
	if got.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", got.WordCount)
	}
	if got.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", got.SentenceCount)
	}
	if got.MostFrequentWord == nil || *got.MostFrequentWord != (WordFrequency{Word: "The", Frequency: 2}) {
		t.Errorf("MostFrequentWord = %+v, want {The 2}", got.MostFrequentWord)
	}
	if got.LongestWord == nil || *got.LongestWord != (WordLength{Word: "sat.", Length: 4}) {
		t.Errorf("LongestWord = %+v, want {sat. 4}", got.LongestWord)
	}
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	_, err := Analyze("")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeCounts(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		chars     int
		words     int
		sentences int
	}{
		{"single word", "hello", 5, 1, 0},
		{"only space", " ", 0, 2, 0},
		{"double spaces", "a  b", 2, 3, 0},
		{"punctuation only", "?!", 0, 1, 0},
		{"ellipsis", "wait...", 7, 1, 3},
		{"newline is not a word break", "one\ntwo", 6, 1, 0},
		{"multibyte runes", "héllo wörld", 10, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Analyze(tt.input)
			if err != nil {
				t.Fatalf("Analyze returned error: %v", err)
			}
			if got.CharCount != tt.chars {
				t.Errorf("CharCount = %d, want %d", got.CharCount, tt.chars)
			}
			if got.WordCount != tt.words {
				t.Errorf("WordCount = %d, want %d", got.WordCount, tt.words)
			}
			if got.SentenceCount != tt.sentences {
				t.Errorf("SentenceCount = %d, want %d", got.SentenceCount, tt.sentences)
			}
		})
	}
}

func TestAnalyzeCountInvariants(t *testing.T) {
	inputs := []string{
		"The cat sat. The dog ran.",
		"  leading and trailing  ",
		"a.b.c. d",
		"¿Qué tal? Bien.",
		"...",
	}
	for _, input := range inputs {
		got, err := Analyze(input)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", input, err)
		}
		if want := strings.Count(input, "."); got.SentenceCount != want {
			t.Errorf("Analyze(%q).SentenceCount = %d, want %d", input, got.SentenceCount, want)
		}
		if want := strings.Count(input, " ") + 1; got.WordCount != want {
			t.Errorf("Analyze(%q).WordCount = %d, want %d", input, got.WordCount, want)
		}
	}
}

func TestAnalyzeCharCountIgnoresExtraSpaceAndPunctuation(t *testing.T) {
	base, err := Analyze("hello, world. again")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	padded, err := Analyze("hello,,,;;   \t world.   !!again")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if base.CharCount != padded.CharCount {
		t.Fatalf("CharCount changed with extra runs: %d vs %d", base.CharCount, padded.CharCount)
	}
}

func TestMostFrequentWord(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  *WordFrequency
	}{
		{"empty", nil, nil},
		{"first casing wins", []string{"dog", "Dog", "DOG"}, &WordFrequency{Word: "dog", Frequency: 3}},
		{"punctuation stripped", []string{"cat,", "cat!", "dog"}, &WordFrequency{Word: "cat", Frequency: 2}},
		{"tie goes to first seen", []string{"b", "a", "a", "b"}, &WordFrequency{Word: "b", Frequency: 2}},
		{"empty tokens count", []string{"", "", "x"}, &WordFrequency{Word: "", Frequency: 2}},
		{"period kept in key", []string{"end.", "end", "end."}, &WordFrequency{Word: "end.", Frequency: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MostFrequentWord(tt.words)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("MostFrequentWord() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("MostFrequentWord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostFrequentWordDominatesOtherTokens(t *testing.T) {
	words := SplitWords("to be or not to be, That is the question: to BE")
	best := MostFrequentWord(words)
	if best == nil {
		t.Fatal("expected a most frequent word")
	}
	counts := map[string]int{}
	for _, word := range words {
		counts[FoldKey(StripPunctuation(word))]++
	}
	for word, count := range counts {
		if count > best.Frequency {
			t.Fatalf("word %q occurs %d times, more than reported best %+v", word, count, best)
		}
	}
}

func TestLongestWord(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  *WordLength
	}{
		{"empty", nil, nil},
		{"reports original token", []string{"a", "(hello)", "hi"}, &WordLength{Word: "(hello)", Length: 5}},
		{"period counts toward length", []string{"ran.", "dogs"}, &WordLength{Word: "ran.", Length: 4}},
		{"tie goes to first occurrence", []string{"abc", "xyz", "ab"}, &WordLength{Word: "abc", Length: 3}},
		{"punctuation only token", []string{"!!!"}, &WordLength{Word: "!!!", Length: 0}},
		{"runes not bytes", []string{"naïve", "abcd"}, &WordLength{Word: "naïve", Length: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestWord(tt.words)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("LongestWord() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("LongestWord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostFrequentWordUsesSimpleCaseFolding(t *testing.T) {
	got := MostFrequentWord(SplitWords("Straße strasse STRASSE x"))
	if got == nil || got.Word != "strasse" || got.Frequency != 2 {
		t.Fatalf("MostFrequentWord() = %+v, want strasse x2", got)
	}
}
