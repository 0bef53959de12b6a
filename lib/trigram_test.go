package lib

import (
	"testing"
)

func TestTrigramsBasic(t *testing.T) {
	set := Trigrams("abc")
	// "  abc " yields "  a", " ab", "abc", "bc "
	expected := []string{"  a", " ab", "abc", "bc "}
	if len(set) != len(expected) {
		t.Fatalf("expected %d trigrams, got %d: %v", len(expected), len(set), set)
	}
	for _, g := range expected {
		if _, ok := set[g]; !ok {
			t.Errorf("missing trigram %q", g)
		}
	}
}

func TestTrigramsEmpty(t *testing.T) {
	if set := Trigrams(""); len(set) != 0 {
		t.Errorf("expected empty set for empty string, got %v", set)
	}
	if set := Trigrams("  !!  "); len(set) != 0 {
		t.Errorf("expected empty set for separator-only string, got %v", set)
	}
}

func TestTrigramsCaseInsensitive(t *testing.T) {
	a := Trigrams("Paracetamol")
	b := Trigrams("paracetamol")
	if len(a) != len(b) {
		t.Fatalf("case should not change trigram count: %d vs %d", len(a), len(b))
	}
	for g := range a {
		if _, ok := b[g]; !ok {
			t.Errorf("trigram %q missing from lowercase set", g)
		}
	}
}

func TestSimilarityIdentical(t *testing.T) {
	if got := Similarity("amoxicillin", "amoxicillin"); got != 1.0 {
		t.Errorf("identical strings should score 1.0, got %f", got)
	}
}

func TestSimilarityEmptyQuery(t *testing.T) {
	if got := Similarity("paracetamol", ""); got != 0.0 {
		t.Errorf("empty side should score 0.0, got %f", got)
	}
	if got := Similarity("", "paracetamol"); got != 0.0 {
		t.Errorf("empty side should score 0.0, got %f", got)
	}
	if got := Similarity("", ""); got != 0.0 {
		t.Errorf("both empty should score 0.0, got %f", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"paracetamol", "paracetmol"},
		{"ibuprofen", "ibuprofin"},
		{"abc", "xyz"},
	}
	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q)=%f but reversed=%f", pair[0], pair[1], ab, ba)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	cases := [][2]string{
		{"paracetamol 500mg", "paracetamol"},
		{"dolo 650", "dolo"},
		{"azithromycin", "zithromax"},
		{"a", "completely different"},
	}
	for _, c := range cases {
		got := Similarity(c[0], c[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Similarity(%q, %q)=%f out of [0,1]", c[0], c[1], got)
		}
	}
}

func TestSimilarityTypoTolerance(t *testing.T) {
	// A one-letter typo should stay well above the 0.3 threshold
	got := Similarity("paracetamol", "paracetmol")
	if got <= 0.3 {
		t.Errorf("one-letter typo scored %f, expected > 0.3", got)
	}

	// Unrelated names should fall below it
	got = Similarity("paracetamol", "insulin")
	if got > 0.3 {
		t.Errorf("unrelated names scored %f, expected <= 0.3", got)
	}
}

func TestSimilarityDisjoint(t *testing.T) {
	if got := Similarity("abc", "xyz"); got != 0.0 {
		t.Errorf("disjoint trigram sets should score 0.0, got %f", got)
	}
}
