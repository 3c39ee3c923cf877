package syllable

import (
	"strings"
	"testing"
)

func composeFor(t *testing.T, syllable string) (string, []string) {
	t.Helper()
	db := testDB(t)
	annotated := NewAnalyzer(db).Analyze(syllable).Components
	return NewComposer(db).Compose(annotated)
}

func TestComposeAssembled(t *testing.T) {
	tests := []struct {
		syllable string
		want     string
	}{
		{"เครื่อง", "khrueang"},
		{"หมา", "ma"},
		{"ใจ", "chai"},
		{"น้ำ", "nam"},
		{"กาง", "kang"},
		{"ครู", "khru"},
		{"เธอ", "thoe"},
	}
	for _, tt := range tests {
		t.Run(tt.syllable, func(t *testing.T) {
			got, _ := composeFor(t, tt.syllable)
			if got != tt.want {
				t.Errorf("Compose(%q) = %q, want %q", tt.syllable, got, tt.want)
			}
		})
	}
}

func TestComposeSilencedKeepsIndividualSound(t *testing.T) {
	db := testDB(t)
	result := NewAnalyzer(db).Analyze("หมา")

	assembled, sounds := NewComposer(db).Compose(result.Components)
	if strings.Contains(assembled, "h") {
		t.Errorf("assembled %q includes the silenced ห", assembled)
	}
	for i, c := range result.Components {
		if c.Grapheme == "ห" && sounds[i] != "h" {
			t.Errorf("per-component sound of silenced ห = %q, want h", sounds[i])
		}
	}
}

func TestComposeThanthakhatExcluded(t *testing.T) {
	assembled, _ := composeFor(t, "สัตว์")
	if strings.Contains(assembled, "w") {
		t.Errorf("assembled %q includes the thanthakhat-silenced ว", assembled)
	}
}

func TestComposeCarrierSoundsOnce(t *testing.T) {
	assembled, _ := composeFor(t, "เครื่อง")
	if strings.Count(assembled, "uea") != 1 {
		t.Errorf("pattern vowel appears %d times in %q, want once", strings.Count(assembled, "uea"), assembled)
	}
}

func TestComposeSoundsPerComponent(t *testing.T) {
	for _, s := range []string{"เครื่อง", "หมา", "สัตว์", "กx"} {
		db := testDB(t)
		components := NewAnalyzer(db).Analyze(s).Components
		_, sounds := NewComposer(db).Compose(components)
		if len(sounds) != len(components) {
			t.Errorf("Compose(%q) returned %d sounds for %d components", s, len(sounds), len(components))
		}
	}
}
