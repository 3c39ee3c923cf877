package chardb

import (
	"fmt"

	"github.com/f3rmion/sara/internal/thai"
	"gopkg.in/yaml.v3"
)

// fileSchema mirrors the on-disk YAML layout of the character database.
// Complex vowel patterns live in the vowels section under keys that
// contain the consonant placeholder "-" (e.g. "เ-ือ").
type fileSchema struct {
	Consonants          map[string]consonantSchema `yaml:"consonants"`
	Vowels              map[string]vowelSchema     `yaml:"vowels"`
	ToneMarks           map[string]markSchema      `yaml:"tone_marks"`
	OtherMarks          map[string]markSchema      `yaml:"other_marks"`
	PronunciationSystem pronunciationSchema        `yaml:"pronunciation_system"`
}

type pronunciationSchema struct {
	ToneMarkRules          map[string]map[string]thai.Tone                         `yaml:"tone_mark_rules"`
	DefaultToneRules       map[thai.ConsonantClass]map[thai.SyllableType]thai.Tone `yaml:"default_tone_rules"`
	VowelPositionRules     map[string]string                                       `yaml:"vowel_position_rules"`
	ConsonantPositionRules struct {
		Clusters      []string            `yaml:"clusters"`
		SilentLeaders map[string][]string `yaml:"silent_leaders"`
	} `yaml:"consonant_position_rules"`
}

type consonantSchema struct {
	Name          string              `yaml:"name"`
	Class         thai.ConsonantClass `yaml:"class"`
	Pronunciation struct {
		Initial string `yaml:"initial"`
		Final   string `yaml:"final"`
	} `yaml:"pronunciation"`
	EnglishGuide string   `yaml:"english_guide,omitempty"`
	WritingSteps []string `yaml:"writing_steps,omitempty"`
}

type vowelSchema struct {
	Name          string             `yaml:"name"`
	Position      thai.VowelPosition `yaml:"position,omitempty"`
	Short         bool               `yaml:"short,omitempty"`
	Carrier       string             `yaml:"carrier,omitempty"` // patterns only; defaults to last constituent
	Pronunciation struct {
		Romanization string `yaml:"romanization"`
		EnglishGuide string `yaml:"english_guide,omitempty"`
	} `yaml:"pronunciation"`
	WritingSteps []string `yaml:"writing_steps,omitempty"`
}

type markSchema struct {
	Name               string   `yaml:"name"`
	Function           string   `yaml:"function,omitempty"` // other marks: silencer, shortener, ...
	PronunciationGuide string   `yaml:"pronunciation_guide,omitempty"`
	WritingSteps       []string `yaml:"writing_steps,omitempty"`
}

// parseYAML decodes the on-disk schema and assembles a DB.
func parseYAML(data []byte) (*DB, error) {
	var s fileSchema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing character database: %w", err)
	}
	return s.toDB()
}

func (s *fileSchema) toDB() (*DB, error) {
	entries := make(map[string]*thai.CharacterEntry)
	var patterns []*thai.ComplexVowelPattern

	for g, c := range s.Consonants {
		entries[g] = &thai.CharacterEntry{
			Grapheme:     g,
			Category:     thai.CategoryConsonant,
			Class:        c.Class,
			InitialSound: c.Pronunciation.Initial,
			FinalSound:   c.Pronunciation.Final,
			Romanization: c.Pronunciation.Initial,
			EnglishGuide: c.EnglishGuide,
			WritingSteps: c.WritingSteps,
			Name:         c.Name,
		}
	}

	for key, v := range s.Vowels {
		if isPatternKey(key) {
			p, err := patternFromSchema(key, v)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, p)
			continue
		}
		entries[key] = &thai.CharacterEntry{
			Grapheme:     key,
			Category:     thai.CategoryVowel,
			Position:     v.Position,
			Romanization: v.Pronunciation.Romanization,
			EnglishGuide: v.Pronunciation.EnglishGuide,
			WritingSteps: v.WritingSteps,
			Name:         v.Name,
			Short:        v.Short,
		}
	}

	for g, m := range s.ToneMarks {
		entries[g] = &thai.CharacterEntry{
			Grapheme:     g,
			Category:     thai.CategoryToneMark,
			EnglishGuide: m.PronunciationGuide,
			WritingSteps: m.WritingSteps,
			Name:         m.Name,
		}
	}

	for g, m := range s.OtherMarks {
		entries[g] = &thai.CharacterEntry{
			Grapheme:     g,
			Category:     thai.CategoryOtherMark,
			EnglishGuide: m.PronunciationGuide,
			WritingSteps: m.WritingSteps,
			Name:         m.Name,
			Silencer:     m.Function == "silencer",
			Shortener:    m.Function == "shortener",
		}
	}

	rules := &Rules{
		ToneMarkRules:      s.PronunciationSystem.ToneMarkRules,
		DefaultToneRules:   s.PronunciationSystem.DefaultToneRules,
		VowelPositionRules: s.PronunciationSystem.VowelPositionRules,
		Clusters:           s.PronunciationSystem.ConsonantPositionRules.Clusters,
		SilentLeaders:      s.PronunciationSystem.ConsonantPositionRules.SilentLeaders,
	}
	return newDB(entries, patterns, rules), nil
}

// isPatternKey reports whether a vowels key is a complex vowel pattern
// (contains the consonant placeholder).
func isPatternKey(key string) bool {
	for _, r := range key {
		if r == '-' {
			return true
		}
	}
	return false
}

// patternFromSchema expands a pattern key into its constituent graphemes.
// The placeholder marks the consonant slot and is not a constituent.
func patternFromSchema(key string, v vowelSchema) (*thai.ComplexVowelPattern, error) {
	var constituents []string
	for _, r := range key {
		if r == '-' {
			continue
		}
		constituents = append(constituents, string(r))
	}
	if len(constituents) == 0 {
		return nil, fmt.Errorf("pattern %q has no constituents", key)
	}

	carrier := len(constituents) - 1
	if v.Carrier != "" {
		carrier = -1
		for i, c := range constituents {
			if c == v.Carrier {
				carrier = i
				break
			}
		}
		if carrier < 0 {
			return nil, fmt.Errorf("pattern %q: carrier %q is not a constituent", key, v.Carrier)
		}
	}

	return &thai.ComplexVowelPattern{
		Key:          key,
		Constituents: constituents,
		CarrierIndex: carrier,
		Name:         v.Name,
		Romanization: v.Pronunciation.Romanization,
		EnglishGuide: v.Pronunciation.EnglishGuide,
		Short:        v.Short,
	}, nil
}
