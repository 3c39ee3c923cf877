package syllable

import (
	"fmt"

	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

// ToneCalculator derives the tone of a syllable from consonant class,
// syllable type, and tone mark using the database rule tables. It never
// fails: when no consonant can be resolved the result is indeterminate.
type ToneCalculator struct {
	db *chardb.DB
}

// NewToneCalculator creates a calculator over the given database.
func NewToneCalculator(db *chardb.DB) *ToneCalculator {
	return &ToneCalculator{db: db}
}

// stopFinals are the final sounds that make a syllable dead.
var stopFinals = map[string]bool{"k": true, "t": true, "p": true}

// ClassifySyllableType decides live or dead. Dead: a stop-class final
// consonant, or a short vowel with no final consonant. Everything else,
// including no final consonant at all, is live.
func (c *ToneCalculator) ClassifySyllableType(components []thai.AnnotatedComponent) thai.SyllableType {
	var lastFinal *thai.AnnotatedComponent
	for i := range components {
		comp := &components[i]
		if comp.Role == thai.RoleFinalConsonant && !comp.Silent && comp.Entry != nil {
			lastFinal = comp
		}
	}
	if lastFinal != nil {
		if stopFinals[lastFinal.Entry.FinalSound] {
			return thai.SyllableDead
		}
		return thai.SyllableLive
	}

	// No final consonant: liveness follows vowel length.
	for i := range components {
		comp := &components[i]
		if comp.Vowel != nil && comp.Vowel.Carrier {
			if comp.Vowel.Pattern.Short {
				return thai.SyllableDead
			}
			return thai.SyllableLive
		}
	}

	short := false
	for i := range components {
		comp := &components[i]
		if comp.Entry == nil || comp.Silent {
			continue
		}
		if comp.Entry.Category == thai.CategoryVowel {
			short = comp.Entry.Short
		}
		if comp.Entry.Shortener {
			short = true
		}
	}
	if short {
		return thai.SyllableDead
	}
	return thai.SyllableLive
}

// ResolveConsonantClass returns the class of the tone-bearing consonant
// after silencing and cluster resolution, along with its grapheme. For a
// silencing cluster the silent leader still supplies the class. Returns
// ClassNone when no consonant can be resolved.
func (c *ToneCalculator) ResolveConsonantClass(components []thai.AnnotatedComponent) (thai.ConsonantClass, string) {
	// Silencing cluster: the leader governs the tone.
	for i := range components {
		lead := &components[i]
		if lead.Role != thai.RoleInitialConsonant || lead.Entry == nil {
			continue
		}
		for j := range components {
			member := &components[j]
			if member.Role == thai.RoleClusterMember && member.SourceIndex == lead.SourceIndex+1 &&
				c.db.SilencingCluster(lead.Grapheme, member.Grapheme) {
				return lead.Entry.Class, lead.Grapheme
			}
		}
	}

	for i := range components {
		comp := &components[i]
		if comp.Role == thai.RoleInitialConsonant && !comp.Silent && comp.Entry != nil {
			return comp.Entry.Class, comp.Grapheme
		}
	}

	// Fall back to any pronounced consonant, e.g. when the heuristic
	// tagged the only consonant as a final.
	for i := range components {
		comp := &components[i]
		if comp.Entry != nil && comp.Entry.Category == thai.CategoryConsonant && !comp.Silent {
			return comp.Entry.Class, comp.Grapheme
		}
	}
	return thai.ClassNone, ""
}

// ComputeTone resolves the tone for a class, syllable type, and optional
// tone mark grapheme. With a mark the [mark][class] table applies, where
// the low-class cell of some marks additionally splits on liveness.
// Without a mark the [class][type] default table applies.
func (c *ToneCalculator) ComputeTone(class thai.ConsonantClass, syllableType thai.SyllableType, toneMark string) thai.ToneResult {
	result := thai.ToneResult{
		Class:        class,
		SyllableType: syllableType,
		ToneMark:     toneMark,
	}

	if class == thai.ClassNone {
		result.Tone = thai.ToneIndeterminate
		result.Explanation = "no consonant found; tone indeterminate"
		return result
	}

	rules := c.db.Rules()

	if toneMark != "" {
		if row, ok := rules.ToneMarkRules[toneMark]; ok {
			tone := row[string(class)]
			if class == thai.ClassLow && syllableType == thai.SyllableDead {
				if special, ok := row["low_dead"]; ok {
					tone = special
				}
			}
			if tone != "" {
				result.Tone = tone
				result.Explanation = fmt.Sprintf("%s class + %s + %s syllable = %s",
					class, c.markName(toneMark), syllableType, tone)
				return result
			}
		}
		// Unrecognized mark: fall through to the default table.
	}

	tone := rules.DefaultToneRules[class][syllableType]
	if tone == "" {
		result.Tone = thai.ToneIndeterminate
		result.Explanation = fmt.Sprintf("no tone rule for %s class %s syllable", class, syllableType)
		return result
	}
	result.Tone = tone
	result.Explanation = fmt.Sprintf("%s class + no mark + %s syllable = %s", class, syllableType, tone)
	return result
}

// markName returns the display name of a tone mark grapheme.
func (c *ToneCalculator) markName(grapheme string) string {
	if entry := c.db.Get(grapheme); entry != nil && entry.Name != "" {
		return entry.Name
	}
	return grapheme
}
