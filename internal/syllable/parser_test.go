package syllable

import (
	"testing"

	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

func testDB(t *testing.T) *chardb.DB {
	t.Helper()
	db, err := (&chardb.AssetLoader{}).Load()
	if err != nil {
		t.Fatalf("loading bundled asset: %v", err)
	}
	return db
}

func TestParseCoversEveryGrapheme(t *testing.T) {
	parser := NewParser(testDB(t))

	syllables := []string{
		"เครื่อง",
		"หมา",
		"สัตว์",
		"ใจ",
		"ครู",
		"น้ำ",
		"กxา", // unrecognized grapheme in the middle
		"",
	}
	for _, s := range syllables {
		t.Run(s, func(t *testing.T) {
			components := parser.Parse(s)
			if len(components) != len([]rune(s)) {
				t.Fatalf("Parse(%q) returned %d components for %d graphemes", s, len(components), len([]rune(s)))
			}

			seen := make(map[int]bool)
			for i, c := range components {
				if c.WriteOrderIndex != i {
					t.Errorf("component %d has WriteOrderIndex %d", i, c.WriteOrderIndex)
				}
				if seen[c.SourceIndex] {
					t.Errorf("source index %d covered twice", c.SourceIndex)
				}
				seen[c.SourceIndex] = true
			}
		})
	}
}

func TestParseWritingOrder(t *testing.T) {
	parser := NewParser(testDB(t))

	// เครื่อง in writing order: leading vowel, cluster, above vowel,
	// trailing vowel, final consonant, tone mark last.
	want := []struct {
		grapheme string
		role     thai.Role
	}{
		{"เ", thai.RoleBeforeVowel},
		{"ค", thai.RoleInitialConsonant},
		{"ร", thai.RoleClusterMember},
		{"ื", thai.RoleAboveVowel},
		{"อ", thai.RoleAfterVowel},
		{"ง", thai.RoleFinalConsonant},
		{"่", thai.RoleToneMark},
	}

	components := parser.Parse("เครื่อง")
	if len(components) != len(want) {
		t.Fatalf("got %d components, want %d", len(components), len(want))
	}
	for i, w := range want {
		if components[i].Grapheme != w.grapheme || components[i].Role != w.role {
			t.Errorf("component %d = %q %s, want %q %s",
				i, components[i].Grapheme, components[i].Role, w.grapheme, w.role)
		}
	}
}

func TestParseRoles(t *testing.T) {
	parser := NewParser(testDB(t))

	tests := []struct {
		syllable string
		grapheme string
		want     thai.Role
	}{
		{"ครู", "ค", thai.RoleInitialConsonant}, // pronounced cluster
		{"ครู", "ร", thai.RoleClusterMember},
		{"ครู", "ู", thai.RoleBelowVowel},
		{"หมา", "ห", thai.RoleInitialConsonant}, // silencing cluster
		{"หมา", "ม", thai.RoleClusterMember},
		{"ใจ", "ใ", thai.RoleBeforeVowel},
		{"ใจ", "จ", thai.RoleInitialConsonant}, // initial via leading vowel
		{"กาง", "ง", thai.RoleFinalConsonant},
		{"กาง", "า", thai.RoleAfterVowel},
		{"น้ำ", "้", thai.RoleToneMark},
		{"เธอ", "อ", thai.RoleFinalConsonant}, // no above vowel before it
	}
	for _, tt := range tests {
		t.Run(tt.syllable+"/"+tt.grapheme, func(t *testing.T) {
			for _, c := range parser.Parse(tt.syllable) {
				if c.Grapheme == tt.grapheme {
					if c.Role != tt.want {
						t.Errorf("role of %q in %q = %s, want %s", tt.grapheme, tt.syllable, c.Role, tt.want)
					}
					return
				}
			}
			t.Fatalf("grapheme %q not found in parse of %q", tt.grapheme, tt.syllable)
		})
	}
}

func TestParseUnknownGrapheme(t *testing.T) {
	parser := NewParser(testDB(t))

	components := parser.Parse("กx")
	if len(components) != 2 {
		t.Fatalf("got %d components, want 2", len(components))
	}

	var found bool
	for _, c := range components {
		if c.Grapheme == "x" {
			found = true
			if c.Role != thai.RoleUnknown {
				t.Errorf("role of x = %s, want unknown", c.Role)
			}
		}
	}
	if !found {
		t.Fatal("unrecognized grapheme was dropped")
	}
}

// The positional heuristic cannot tell a syllable-final cluster from a
// second onset, so ต in สัตว์ is tagged initial. Pinned, not fixed.
func TestParseFinalClusterApproximation(t *testing.T) {
	parser := NewParser(testDB(t))

	for _, c := range parser.Parse("สัตว์") {
		if c.Grapheme == "ต" && c.Role != thai.RoleInitialConsonant {
			t.Errorf("role of ต = %s, the documented approximation expects initial_consonant", c.Role)
		}
		if c.Grapheme == "ว" && c.Role != thai.RoleFinalConsonant {
			t.Errorf("role of ว = %s, want final_consonant", c.Role)
		}
	}
}
