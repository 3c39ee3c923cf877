// Package syllable implements the Thai syllable analysis pipeline:
// component parsing, complex vowel detection, silent consonant
// detection, tone calculation, and romanization. Every stage is a pure
// function over the read-only character database, so an Analyzer may be
// shared freely across goroutines.
package syllable

import (
	"golang.org/x/text/unicode/norm"

	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

// Parser segments a syllable into role-tagged components ordered by Thai
// writing order.
type Parser struct {
	db *chardb.DB
}

// NewParser creates a parser over the given character database.
func NewParser(db *chardb.DB) *Parser {
	return &Parser{db: db}
}

// writeOrderBuckets maps each role to its position in Thai writing
// order: leading vowels, initial consonants, above/below vowels,
// trailing vowels, final consonants, marks last.
var writeOrderBuckets = map[thai.Role]int{
	thai.RoleBeforeVowel:      0,
	thai.RoleInitialConsonant: 1,
	thai.RoleClusterMember:    1,
	thai.RoleAboveVowel:       2,
	thai.RoleBelowVowel:       2,
	thai.RoleAfterVowel:       3,
	thai.RoleFinalConsonant:   4,
	thai.RoleUnknown:          5,
	thai.RoleToneMark:         6,
}

// Parse scans the syllable left to right, detects known two-grapheme
// consonant clusters first, then classifies the remaining graphemes.
// Unrecognized graphemes become unknown components; the parse never
// fails. Every input grapheme maps to exactly one component.
func (p *Parser) Parse(syllable string) []thai.Component {
	runes := []rune(norm.NFC.String(syllable))
	n := len(runes)
	graphemes := make([]string, n)
	for i, r := range runes {
		graphemes[i] = string(r)
	}

	roles := make([]thai.Role, n)
	for i := range roles {
		roles[i] = ""
	}

	// Greedy cluster detection before single-grapheme classification.
	// A cluster can only open the initial consonant region, so nothing
	// before it may be a consonant.
	for i := 0; i+1 < n; i++ {
		a, b := p.db.Get(graphemes[i]), p.db.Get(graphemes[i+1])
		if a == nil || b == nil ||
			a.Category != thai.CategoryConsonant || b.Category != thai.CategoryConsonant {
			continue
		}
		if !p.db.IsCluster(graphemes[i], graphemes[i+1]) && !p.db.SilencingCluster(graphemes[i], graphemes[i+1]) {
			continue
		}
		if p.consonantBefore(graphemes, i) {
			break
		}
		roles[i] = thai.RoleInitialConsonant
		roles[i+1] = thai.RoleClusterMember
		break
	}

	for i := 0; i < n; i++ {
		if roles[i] != "" {
			continue
		}
		roles[i] = p.classify(graphemes, i)
	}

	// Re-sequence into writing order. The sort is stable on source
	// position within each bucket.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			a, b := order[j-1], order[j]
			if writeOrderBuckets[roles[a]] > writeOrderBuckets[roles[b]] {
				order[j-1], order[j] = order[j], order[j-1]
			} else {
				break
			}
		}
	}

	components := make([]thai.Component, n)
	for w, src := range order {
		components[w] = thai.Component{
			Grapheme:        graphemes[src],
			Role:            roles[src],
			WriteOrderIndex: w,
			SourceIndex:     src,
		}
	}
	return components
}

// classify assigns a role to the grapheme at index i.
func (p *Parser) classify(graphemes []string, i int) thai.Role {
	entry := p.db.Get(graphemes[i])
	if entry == nil {
		return thai.RoleUnknown
	}

	switch entry.Category {
	case thai.CategoryConsonant:
		return p.classifyConsonant(graphemes, i)
	case thai.CategoryVowel:
		switch entry.Position {
		case thai.PositionBefore, thai.PositionSurrounding:
			return thai.RoleBeforeVowel
		case thai.PositionAbove:
			return thai.RoleAboveVowel
		case thai.PositionBelow:
			return thai.RoleBelowVowel
		default:
			return thai.RoleAfterVowel
		}
	case thai.CategoryToneMark:
		return thai.RoleToneMark
	case thai.CategoryOtherMark:
		// Combining marks sit above the consonant they modify; spacing
		// marks like mai yamok have no role inside a syllable.
		if entry.Silencer || entry.Shortener {
			return thai.RoleAboveVowel
		}
		return thai.RoleUnknown
	default:
		return thai.RoleUnknown
	}
}

// classifyConsonant applies the positional heuristic: a consonant with
// any vowel or consonant phonetically after it is an initial, one with
// nothing after it is a final. อ ย ว directly after an above-vowel sign
// act as complex vowel tails instead. The heuristic can misclassify
// syllables ending in a consonant cluster; see the package tests.
func (p *Parser) classifyConsonant(graphemes []string, i int) thai.Role {
	g := graphemes[i]
	prev := p.previousSounding(graphemes, i)
	if g == "อ" || g == "ย" || g == "ว" {
		if prev != nil && prev.Category == thai.CategoryVowel && prev.Position == thai.PositionAbove {
			return thai.RoleAfterVowel
		}
	}

	// A leading vowel is written before the consonant but pronounced
	// after it, so the consonant it precedes is an initial.
	if prev != nil && prev.Category == thai.CategoryVowel &&
		(prev.Position == thai.PositionBefore || prev.Position == thai.PositionSurrounding) {
		return thai.RoleInitialConsonant
	}

	for j := i + 1; j < len(graphemes); j++ {
		e := p.db.Get(graphemes[j])
		if e == nil {
			continue
		}
		if e.Category == thai.CategoryConsonant || e.Category == thai.CategoryVowel {
			return thai.RoleInitialConsonant
		}
	}
	return thai.RoleFinalConsonant
}

// previousSounding returns the entry of the nearest preceding grapheme
// that is not a tone mark or other mark.
func (p *Parser) previousSounding(graphemes []string, i int) *thai.CharacterEntry {
	for j := i - 1; j >= 0; j-- {
		e := p.db.Get(graphemes[j])
		if e == nil {
			return nil
		}
		if e.Category == thai.CategoryToneMark || e.Category == thai.CategoryOtherMark {
			continue
		}
		return e
	}
	return nil
}

// consonantBefore reports whether any grapheme before index i is a
// consonant.
func (p *Parser) consonantBefore(graphemes []string, i int) bool {
	for j := 0; j < i; j++ {
		if e := p.db.Get(graphemes[j]); e != nil && e.Category == thai.CategoryConsonant {
			return true
		}
	}
	return false
}
