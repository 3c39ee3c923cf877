// Package chardb holds the static Thai character database: per-grapheme
// linguistic facts, complex vowel patterns, and the pronunciation rule
// tables. The database is loaded once at startup and is read-only
// afterwards, so lookups are safe for concurrent use.
package chardb

import (
	"sort"

	"github.com/f3rmion/sara/internal/thai"
)

// DB is the loaded character database.
type DB struct {
	entries  map[string]*thai.CharacterEntry
	patterns []*thai.ComplexVowelPattern
	rules    *Rules
}

// Rules holds the pronunciation system tables.
type Rules struct {
	// ToneMarkRules maps tone mark grapheme -> consonant class -> tone.
	// The extra "low_dead" key overrides the low-class cell for dead
	// syllables where a mark distinguishes liveness.
	ToneMarkRules map[string]map[string]thai.Tone `json:"tone_mark_rules" yaml:"tone_mark_rules"`

	// DefaultToneRules maps consonant class -> syllable type -> tone,
	// used when no tone mark is present.
	DefaultToneRules map[thai.ConsonantClass]map[thai.SyllableType]thai.Tone `json:"default_tone_rules" yaml:"default_tone_rules"`

	// VowelPositionRules describes where each vowel position is written,
	// for display purposes.
	VowelPositionRules map[string]string `json:"vowel_position_rules" yaml:"vowel_position_rules"`

	// Clusters lists two-grapheme initial consonant clusters where both
	// members are pronounced (e.g. "คร").
	Clusters []string `json:"clusters" yaml:"clusters"`

	// SilentLeaders maps a leading consonant to the consonants it may
	// precede in a silencing cluster. The leader is unpronounced but
	// supplies the cluster's effective consonant class (e.g. ห-nam).
	SilentLeaders map[string][]string `json:"silent_leaders" yaml:"silent_leaders"`
}

// Get returns the entry for a grapheme, or nil if absent. Absence is not
// fatal; callers treat missing graphemes as unknown.
func (db *DB) Get(grapheme string) *thai.CharacterEntry {
	return db.entries[grapheme]
}

// Size returns the number of graphemes in the database.
func (db *DB) Size() int {
	return len(db.entries)
}

// Graphemes returns all graphemes in the database, sorted.
func (db *DB) Graphemes() []string {
	gs := make([]string, 0, len(db.entries))
	for g := range db.entries {
		gs = append(gs, g)
	}
	sort.Strings(gs)
	return gs
}

// ComplexVowelPatterns returns the registered patterns ordered most
// specific first, for greedy matching.
func (db *DB) ComplexVowelPatterns() []*thai.ComplexVowelPattern {
	return db.patterns
}

// Rules returns the pronunciation rule tables.
func (db *DB) Rules() *Rules {
	return db.rules
}

// IsCluster reports whether the two graphemes form a pronounced initial
// consonant cluster.
func (db *DB) IsCluster(first, second string) bool {
	pair := first + second
	for _, c := range db.rules.Clusters {
		if c == pair {
			return true
		}
	}
	return false
}

// SilencingCluster reports whether the two graphemes form a silencing
// cluster. When they do, the leading grapheme is the silent member and
// the source of the cluster's effective consonant class.
func (db *DB) SilencingCluster(first, second string) bool {
	for _, follower := range db.rules.SilentLeaders[first] {
		if follower == second {
			return true
		}
	}
	return false
}

// newDB assembles a DB and orders its patterns most specific first:
// more constituents before fewer, then longer keys, then lexicographic
// for determinism.
func newDB(entries map[string]*thai.CharacterEntry, patterns []*thai.ComplexVowelPattern, rules *Rules) *DB {
	sorted := make([]*thai.ComplexVowelPattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if len(a.Constituents) != len(b.Constituents) {
			return len(a.Constituents) > len(b.Constituents)
		}
		if len(a.Key) != len(b.Key) {
			return len(a.Key) > len(b.Key)
		}
		return a.Key < b.Key
	})
	return &DB{entries: entries, patterns: sorted, rules: rules}
}
