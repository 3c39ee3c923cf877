package syllable

import (
	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

// ComplexVowelDetector identifies multi-grapheme vowel patterns among
// parsed components. Matching is presence-based: a pattern matches when
// every constituent grapheme occurs somewhere in the syllable,
// regardless of contiguity. Patterns are tried most specific first and
// the first match wins, so a grapheme never belongs to two patterns.
type ComplexVowelDetector struct {
	db *chardb.DB
}

// NewComplexVowelDetector creates a detector over the given database.
func NewComplexVowelDetector(db *chardb.DB) *ComplexVowelDetector {
	return &ComplexVowelDetector{db: db}
}

// Detect returns complex vowel memberships keyed by component index.
// Exactly one member of a matched pattern is the carrier and keeps the
// pattern's romanization; the other members are silent placeholders that
// keep their individual romanization for display.
func (d *ComplexVowelDetector) Detect(components []thai.Component) map[int]*thai.ComplexVowelMembership {
	for _, pattern := range d.db.ComplexVowelPatterns() {
		claimed := d.match(pattern, components)
		if claimed == nil {
			continue
		}

		memberships := make(map[int]*thai.ComplexVowelMembership, len(claimed))
		for constituentIdx, componentIdx := range claimed {
			m := &thai.ComplexVowelMembership{Pattern: pattern}
			if constituentIdx == pattern.CarrierIndex {
				m.Carrier = true
				m.Romanization = pattern.Romanization
			} else if entry := d.db.Get(components[componentIdx].Grapheme); entry != nil {
				m.Romanization = entry.Romanization
			}
			memberships[componentIdx] = m
		}
		return memberships
	}
	return nil
}

// match claims one component per pattern constituent, preferring
// components that are not initial consonants so that a pattern tail like
// อ or ย is not stolen from the onset. Returns nil when any constituent
// is missing.
func (d *ComplexVowelDetector) match(pattern *thai.ComplexVowelPattern, components []thai.Component) map[int]int {
	used := make(map[int]bool, len(pattern.Constituents))
	claimed := make(map[int]int, len(pattern.Constituents))

	for ci, constituent := range pattern.Constituents {
		found := -1
		for idx, c := range components {
			if used[idx] || c.Grapheme != constituent {
				continue
			}
			if c.Role == thai.RoleInitialConsonant || c.Role == thai.RoleClusterMember {
				if found < 0 {
					found = idx // fall back to an onset consonant only if nothing else matches
				}
				continue
			}
			found = idx
			break
		}
		if found < 0 {
			return nil
		}
		used[found] = true
		claimed[ci] = found
	}
	return claimed
}
