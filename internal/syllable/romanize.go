package syllable

import (
	"strings"

	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

// Composer assembles a romanized rendering from annotated components.
// The assembled string follows phonetic reading order (initials, vowel,
// finals), which differs from the writing order the components are
// stored in.
type Composer struct {
	db *chardb.DB
}

// NewComposer creates a composer over the given database.
func NewComposer(db *chardb.DB) *Composer {
	return &Composer{db: db}
}

// Compose returns the assembled romanization plus one sound per
// component in writing order. Silenced components contribute nothing to
// the assembled string but keep their individual sound in the
// per-component list for display. A complex vowel carrier contributes
// its pattern's romanization exactly once.
func (c *Composer) Compose(components []thai.AnnotatedComponent) (string, []string) {
	sounds := make([]string, len(components))
	for i := range components {
		sounds[i] = c.componentSound(&components[i])
	}

	var initials, vowels, finals []string
	patternVowel := ""

	for i := range components {
		comp := &components[i]
		if comp.Silent || comp.Entry == nil {
			continue
		}
		if comp.Vowel != nil && comp.Vowel.Carrier {
			patternVowel = comp.Vowel.Pattern.Romanization
			continue
		}
		switch comp.Role {
		case thai.RoleInitialConsonant, thai.RoleClusterMember:
			initials = append(initials, comp.Entry.InitialSound)
		case thai.RoleFinalConsonant:
			finals = append(finals, comp.Entry.FinalSound)
		case thai.RoleBeforeVowel, thai.RoleAboveVowel, thai.RoleBelowVowel, thai.RoleAfterVowel:
			if comp.Entry.Category == thai.CategoryVowel {
				vowels = append(vowels, comp.Entry.Romanization)
			} else if comp.Entry.Category == thai.CategoryConsonant {
				// A vowel-tail consonant outside any pattern keeps its
				// own sound, e.g. ว in a bare ◌ัว fragment.
				vowels = append(vowels, comp.Entry.Romanization)
			}
		}
	}

	if patternVowel != "" {
		vowels = []string{patternVowel}
	}

	var b strings.Builder
	for _, s := range initials {
		b.WriteString(s)
	}
	for _, s := range vowels {
		b.WriteString(s)
	}
	for _, s := range finals {
		b.WriteString(s)
	}
	return b.String(), sounds
}

// componentSound is the effective per-component romanization kept for
// display, including for silenced components.
func (c *Composer) componentSound(comp *thai.AnnotatedComponent) string {
	if comp.Entry == nil {
		return ""
	}
	if comp.Vowel != nil {
		return comp.Vowel.Romanization
	}
	switch comp.Role {
	case thai.RoleInitialConsonant, thai.RoleClusterMember:
		return comp.Entry.InitialSound
	case thai.RoleFinalConsonant:
		return comp.Entry.FinalSound
	case thai.RoleToneMark:
		return ""
	default:
		if comp.Entry.Category == thai.CategoryOtherMark {
			return ""
		}
		return comp.Entry.Romanization
	}
}
