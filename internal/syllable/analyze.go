package syllable

import (
	"github.com/f3rmion/sara/internal/chardb"
	"github.com/f3rmion/sara/internal/thai"
)

// Analyzer runs the full pipeline for one syllable: parse, annotate,
// compute tone, compose romanization. It holds no mutable state, so one
// Analyzer may serve any number of concurrent calls.
type Analyzer struct {
	db       *chardb.DB
	parser   *Parser
	vowels   *ComplexVowelDetector
	silents  *SilentConsonantDetector
	tones    *ToneCalculator
	composer *Composer
}

// NewAnalyzer creates an analyzer over the given database.
func NewAnalyzer(db *chardb.DB) *Analyzer {
	return &Analyzer{
		db:       db,
		parser:   NewParser(db),
		vowels:   NewComplexVowelDetector(db),
		silents:  NewSilentConsonantDetector(db),
		tones:    NewToneCalculator(db),
		composer: NewComposer(db),
	}
}

// Analyze produces the phonological breakdown of one syllable. It never
// fails: unknown graphemes degrade to unknown components and an
// unresolvable consonant yields an indeterminate tone, so the result is
// always renderable.
func (a *Analyzer) Analyze(syllable string) *thai.AnalysisResult {
	components := a.parser.Parse(syllable)
	memberships := a.vowels.Detect(components)

	silencings := a.silents.DetectThanthakhat(components)
	silencings = append(silencings, a.silents.DetectClusterSilencing(components)...)

	silencedBy := make(map[int]int, len(silencings))
	for _, rel := range silencings {
		silencedBy[rel.SilencedIndex] = rel.SilencerIndex
	}

	annotated := make([]thai.AnnotatedComponent, len(components))
	for i, c := range components {
		ac := thai.AnnotatedComponent{
			Component:  c,
			Entry:      a.db.Get(c.Grapheme),
			SilencedBy: -1,
		}
		if m, ok := memberships[i]; ok {
			ac.Vowel = m
			if !m.Carrier {
				ac.Silent = true
			}
		}
		if silencer, ok := silencedBy[i]; ok {
			ac.Silent = true
			ac.SilencedBy = silencer
		}
		annotated[i] = ac
	}

	class, _ := a.tones.ResolveConsonantClass(annotated)
	syllableType := a.tones.ClassifySyllableType(annotated)
	toneResult := a.tones.ComputeTone(class, syllableType, a.toneMark(annotated))

	romanization, sounds := a.composer.Compose(annotated)
	for i := range annotated {
		annotated[i].Romanization = sounds[i]
	}

	return &thai.AnalysisResult{
		Syllable:        syllable,
		Components:      annotated,
		Silencings:      silencings,
		Tone:            toneResult,
		Romanization:    romanization,
		ComponentSounds: sounds,
	}
}

// toneMark returns the grapheme of the syllable's tone mark, or empty.
func (a *Analyzer) toneMark(components []thai.AnnotatedComponent) string {
	for i := range components {
		comp := &components[i]
		if comp.Entry != nil && comp.Entry.Category == thai.CategoryToneMark {
			return comp.Grapheme
		}
	}
	return ""
}
