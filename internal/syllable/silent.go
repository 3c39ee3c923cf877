package syllable

import (
	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

// SilentConsonantDetector finds consonants that are written but not
// pronounced, either because a thanthakhat sits on them or because they
// open a silencing cluster. Both detections are pure functions over the
// component sequence and the static rule tables.
type SilentConsonantDetector struct {
	db *chardb.DB
}

// NewSilentConsonantDetector creates a detector over the given database.
func NewSilentConsonantDetector(db *chardb.DB) *SilentConsonantDetector {
	return &SilentConsonantDetector{db: db}
}

// DetectThanthakhat returns a relation for every silencing diacritic,
// each silencing the nearest preceding consonant in the source string.
// Indexes refer to positions in the component slice.
func (d *SilentConsonantDetector) DetectThanthakhat(components []thai.Component) []thai.SilencingRelation {
	var relations []thai.SilencingRelation
	for i, c := range components {
		entry := d.db.Get(c.Grapheme)
		if entry == nil || !entry.Silencer {
			continue
		}

		silenced := -1
		bestSource := -1
		for j, cand := range components {
			e := d.db.Get(cand.Grapheme)
			if e == nil || e.Category != thai.CategoryConsonant {
				continue
			}
			if cand.SourceIndex < c.SourceIndex && cand.SourceIndex > bestSource {
				bestSource = cand.SourceIndex
				silenced = j
			}
		}
		if silenced >= 0 {
			relations = append(relations, thai.SilencingRelation{SilencerIndex: i, SilencedIndex: silenced})
		}
	}
	return relations
}

// DetectClusterSilencing returns a relation for a silencing initial
// cluster such as ห + sonorant: the leading consonant is silent but
// still supplies the cluster's effective class for tone purposes.
func (d *SilentConsonantDetector) DetectClusterSilencing(components []thai.Component) []thai.SilencingRelation {
	var relations []thai.SilencingRelation
	for i, c := range components {
		if c.Role != thai.RoleInitialConsonant {
			continue
		}
		for j, m := range components {
			if m.Role != thai.RoleClusterMember || m.SourceIndex != c.SourceIndex+1 {
				continue
			}
			if d.db.SilencingCluster(c.Grapheme, m.Grapheme) {
				relations = append(relations, thai.SilencingRelation{SilencerIndex: j, SilencedIndex: i})
			}
		}
	}
	return relations
}
