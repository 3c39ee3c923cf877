package syllable

import (
	"reflect"
	"strings"
	"testing"

	"github.com/f3rmion/sara/internal/thai"
)

func TestAnalyzeKhrueang(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))
	result := analyzer.Analyze("เครื่อง")

	if len(result.Components) != 7 {
		t.Fatalf("got %d components, want 7", len(result.Components))
	}
	if result.Romanization != "khrueang" {
		t.Errorf("romanization = %q, want khrueang", result.Romanization)
	}

	tone := result.Tone
	if tone.Class != thai.ClassLow {
		t.Errorf("class = %s, want low", tone.Class)
	}
	if tone.SyllableType != thai.SyllableLive {
		t.Errorf("syllable type = %s, want live", tone.SyllableType)
	}
	if tone.ToneMark != "่" {
		t.Errorf("tone mark = %q, want mai ek", tone.ToneMark)
	}
	if tone.Tone != thai.ToneFalling {
		t.Errorf("tone = %s, want falling", tone.Tone)
	}

	for _, c := range result.Components {
		switch c.Grapheme {
		case "เ", "ื":
			if !c.Silent || c.Vowel == nil || c.Vowel.Carrier {
				t.Errorf("%q should be a silent pattern member", c.Grapheme)
			}
		case "อ":
			if c.Silent || c.Vowel == nil || !c.Vowel.Carrier {
				t.Errorf("อ should be the pronounced pattern carrier")
			}
			if c.Romanization != "uea" {
				t.Errorf("carrier sound = %q, want uea", c.Romanization)
			}
		case "ค", "ร", "ง":
			if c.Silent {
				t.Errorf("%q should be pronounced", c.Grapheme)
			}
		}
	}

	if len(result.Silencings) != 0 {
		t.Errorf("got %d silencings, want none", len(result.Silencings))
	}
}

func TestAnalyzeClusterSilencing(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))
	result := analyzer.Analyze("หมา")

	if len(result.Silencings) != 1 {
		t.Fatalf("got %d silencings, want 1", len(result.Silencings))
	}
	for i, c := range result.Components {
		switch c.Grapheme {
		case "ห":
			if !c.Silent {
				t.Error("ห should be silent")
			}
			if c.SilencedBy < 0 || result.Components[c.SilencedBy].Grapheme != "ม" {
				t.Errorf("ห silenced by component %d, want the ม member", c.SilencedBy)
			}
		case "ม":
			if c.Silent || c.SilencedBy != -1 {
				t.Errorf("ม should be pronounced, got silent=%v silencedBy=%d at %d", c.Silent, c.SilencedBy, i)
			}
		}
	}

	if result.Tone.Tone != thai.ToneRising {
		t.Errorf("tone = %s, want rising from the silent ห's high class", result.Tone.Tone)
	}
	if result.Romanization != "ma" {
		t.Errorf("romanization = %q, want ma", result.Romanization)
	}
}

func TestAnalyzeOAngNam(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))
	result := analyzer.Analyze("อย่า")

	if result.Tone.Class != thai.ClassMid {
		t.Errorf("class = %s, want mid from the silent อ", result.Tone.Class)
	}
	if result.Tone.Tone != thai.ToneLow {
		t.Errorf("tone = %s, want low", result.Tone.Tone)
	}
	if result.Romanization != "ya" {
		t.Errorf("romanization = %q, want ya", result.Romanization)
	}
}

func TestAnalyzeThanthakhat(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))
	result := analyzer.Analyze("สัตว์")

	var silenced *thai.AnnotatedComponent
	for i := range result.Components {
		if result.Components[i].Grapheme == "ว" {
			silenced = &result.Components[i]
		}
	}
	if silenced == nil {
		t.Fatal("ว not found")
	}
	if !silenced.Silent {
		t.Error("ว should be silenced by the thanthakhat")
	}
	if silenced.SilencedBy < 0 || result.Components[silenced.SilencedBy].Grapheme != "์" {
		t.Errorf("ว silenced by component %d, want the ์ mark", silenced.SilencedBy)
	}

	if result.Tone.SyllableType != thai.SyllableDead {
		t.Errorf("syllable type = %s, want dead", result.Tone.SyllableType)
	}
	if strings.Contains(result.Romanization, "w") {
		t.Errorf("romanization %q includes the silenced ว", result.Romanization)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))

	for _, s := range []string{"เครื่อง", "หมา", "สัตว์", "ใจ", "น้ำ", "กx", ""} {
		first := analyzer.Analyze(s)
		second := analyzer.Analyze(s)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) is not deterministic", s)
		}
	}
}

func TestAnalyzeCoverage(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))

	for _, s := range []string{"เครื่อง", "หมา", "สัตว์", "กxา"} {
		result := analyzer.Analyze(s)
		if len(result.Components) != len([]rune(s)) {
			t.Errorf("Analyze(%q) covers %d of %d graphemes", s, len(result.Components), len([]rune(s)))
		}
		if len(result.ComponentSounds) != len(result.Components) {
			t.Errorf("Analyze(%q) returned %d sounds for %d components",
				s, len(result.ComponentSounds), len(result.Components))
		}
	}
}

func TestAnalyzeUnknownGraphemeDegrades(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))
	result := analyzer.Analyze("กx")

	if len(result.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(result.Components))
	}
	for _, c := range result.Components {
		if c.Grapheme == "x" {
			if c.Role != thai.RoleUnknown {
				t.Errorf("role of x = %s, want unknown", c.Role)
			}
			if c.Entry != nil {
				t.Errorf("entry of x = %+v, want nil", c.Entry)
			}
		}
	}
	if result.Tone.Tone == thai.ToneIndeterminate {
		t.Error("the recognized ก should still yield a tone")
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	analyzer := NewAnalyzer(testDB(t))
	result := analyzer.Analyze("")

	if len(result.Components) != 0 {
		t.Errorf("got %d components for empty input", len(result.Components))
	}
	if result.Tone.Tone != thai.ToneIndeterminate {
		t.Errorf("tone = %s, want indeterminate", result.Tone.Tone)
	}
	if result.Romanization != "" {
		t.Errorf("romanization = %q, want empty", result.Romanization)
	}
}
