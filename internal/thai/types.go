// Package thai provides core types for Thai syllable analysis.
package thai

// Category classifies a grapheme by its orthographic function.
type Category string

const (
	CategoryConsonant Category = "consonant"
	CategoryVowel     Category = "vowel"
	CategoryToneMark  Category = "tone_mark"
	CategoryOtherMark Category = "other_mark"
	CategoryUnknown   Category = "unknown"
)

// ConsonantClass determines how tone marks and default tone rules apply.
type ConsonantClass string

const (
	ClassLow  ConsonantClass = "low"
	ClassMid  ConsonantClass = "mid"
	ClassHigh ConsonantClass = "high"
	ClassNone ConsonantClass = "" // non-consonants, or no consonant resolved
)

// VowelPosition describes where a vowel sign is written relative to its
// consonant.
type VowelPosition string

const (
	PositionBefore      VowelPosition = "before"
	PositionAbove       VowelPosition = "above"
	PositionBelow       VowelPosition = "below"
	PositionAfter       VowelPosition = "after"
	PositionSurrounding VowelPosition = "surrounding"
)

// Role is the function a grapheme plays inside one syllable, in Thai
// writing order.
type Role string

const (
	RoleBeforeVowel      Role = "before_vowel"
	RoleInitialConsonant Role = "initial_consonant"
	RoleClusterMember    Role = "cluster_member"
	RoleAboveVowel       Role = "above_vowel"
	RoleBelowVowel       Role = "below_vowel"
	RoleAfterVowel       Role = "after_vowel"
	RoleFinalConsonant   Role = "final_consonant"
	RoleToneMark         Role = "tone_mark"
	RoleUnknown          Role = "unknown"
)

// Tone is one of the five Thai tones, or indeterminate when no consonant
// could be resolved.
type Tone string

const (
	ToneMid           Tone = "mid"
	ToneLow           Tone = "low"
	ToneFalling       Tone = "falling"
	ToneHigh          Tone = "high"
	ToneRising        Tone = "rising"
	ToneIndeterminate Tone = "indeterminate"
)

// SyllableType is the live/dead distinction used by the tone rules.
type SyllableType string

const (
	SyllableLive SyllableType = "live"
	SyllableDead SyllableType = "dead"
)

// CharacterEntry holds the static linguistic facts for one grapheme.
// Entries are loaded once at startup and never mutated.
type CharacterEntry struct {
	Grapheme     string         `json:"grapheme" yaml:"grapheme"`
	Category     Category       `json:"category" yaml:"category"`
	Class        ConsonantClass `json:"class,omitempty" yaml:"class,omitempty"`       // consonants only
	Position     VowelPosition  `json:"position,omitempty" yaml:"position,omitempty"` // vowels only
	InitialSound string         `json:"initial_sound,omitempty" yaml:"initial_sound,omitempty"`
	FinalSound   string         `json:"final_sound,omitempty" yaml:"final_sound,omitempty"`
	Romanization string         `json:"romanization,omitempty" yaml:"romanization,omitempty"`
	EnglishGuide string         `json:"english_guide,omitempty" yaml:"english_guide,omitempty"`
	WritingSteps []string       `json:"writing_steps,omitempty" yaml:"writing_steps,omitempty"`
	Name         string         `json:"name" yaml:"name"`
	Short        bool           `json:"short,omitempty" yaml:"short,omitempty"`         // vowels: short vowel
	Silencer     bool           `json:"silencer,omitempty" yaml:"silencer,omitempty"`   // thanthakhat
	Shortener    bool           `json:"shortener,omitempty" yaml:"shortener,omitempty"` // mai taikhu
}

// ComplexVowelPattern is a vowel sound realized by multiple graphemes
// surrounding the consonant. Key uses "-" as the consonant placeholder,
// e.g. "เ-ือ".
type ComplexVowelPattern struct {
	Key          string   `json:"key" yaml:"key"`
	Constituents []string `json:"constituents" yaml:"constituents"` // graphemes in writing order
	CarrierIndex int      `json:"carrier_index" yaml:"carrier_index"`
	Name         string   `json:"name" yaml:"name"`
	Romanization string   `json:"romanization" yaml:"romanization"`
	EnglishGuide string   `json:"english_guide,omitempty" yaml:"english_guide,omitempty"`
	Short        bool     `json:"short,omitempty" yaml:"short,omitempty"`
}

// Carrier returns the constituent grapheme that carries the pattern's
// romanization.
func (p *ComplexVowelPattern) Carrier() string {
	if p.CarrierIndex < 0 || p.CarrierIndex >= len(p.Constituents) {
		return ""
	}
	return p.Constituents[p.CarrierIndex]
}

// Component is one grapheme of a parsed syllable, tagged with its role.
// Components are produced fresh per parse call and owned by the caller.
type Component struct {
	Grapheme        string `json:"grapheme"`
	Role            Role   `json:"role"`
	WriteOrderIndex int    `json:"write_order_index"` // position in Thai writing order
	SourceIndex     int    `json:"source_index"`      // position in the input string
}

// ComplexVowelMembership annotates a Component that belongs to a complex
// vowel pattern. Exactly one member of a matched pattern is the carrier;
// the others are silent placeholders.
type ComplexVowelMembership struct {
	Pattern      *ComplexVowelPattern `json:"pattern"`
	Carrier      bool                 `json:"carrier"`
	Romanization string               `json:"romanization"` // effective sound for this member
}

// SilencingRelation records that one component silences another. Indexes
// refer to positions in the parsed component slice.
type SilencingRelation struct {
	SilencerIndex int `json:"silencer_index"`
	SilencedIndex int `json:"silenced_index"`
}

// ToneResult is the outcome of tone computation, including a
// human-readable explanation of the rule that fired.
type ToneResult struct {
	Class        ConsonantClass `json:"class"`
	SyllableType SyllableType   `json:"syllable_type"`
	ToneMark     string         `json:"tone_mark,omitempty"` // grapheme, empty if none
	Tone         Tone           `json:"tone"`
	Explanation  string         `json:"explanation"`
}

// AnnotatedComponent is a Component enriched by the detectors: database
// entry (nil on lookup miss), complex vowel membership, silencing state,
// and its effective romanization for display.
type AnnotatedComponent struct {
	Component
	Entry        *CharacterEntry         `json:"entry,omitempty"`
	Vowel        *ComplexVowelMembership `json:"vowel,omitempty"`
	Silent       bool                    `json:"silent"`
	SilencedBy   int                     `json:"silenced_by"` // component index, -1 if not silenced
	Romanization string                  `json:"romanization"`
}

// AnalysisResult is the full phonological breakdown of one syllable.
// Immutable once returned; owned by the caller.
type AnalysisResult struct {
	Syllable        string               `json:"syllable"`
	Components      []AnnotatedComponent `json:"components"`
	Silencings      []SilencingRelation  `json:"silencings,omitempty"`
	Tone            ToneResult           `json:"tone"`
	Romanization    string               `json:"romanization"`
	ComponentSounds []string             `json:"component_sounds"`
}
