package chardb

import "github.com/f3rmion/sara/internal/thai"

// builtinDB is the last-resort database: a reduced set of common
// graphemes with no writing steps or sound guides. The bundled asset is
// the authoritative table; this tier only keeps the engine functional
// when no asset can be read.
func builtinDB() *DB {
	entries := make(map[string]*thai.CharacterEntry)

	type cons struct {
		g, name, initial, final string
		class                   thai.ConsonantClass
	}
	consonants := []cons{
		{"ก", "ko kai", "k", "k", thai.ClassMid},
		{"ข", "kho khai", "kh", "k", thai.ClassHigh},
		{"ค", "kho khwai", "kh", "k", thai.ClassLow},
		{"ง", "ngo ngu", "ng", "ng", thai.ClassLow},
		{"จ", "cho chan", "ch", "t", thai.ClassMid},
		{"ช", "cho chang", "ch", "t", thai.ClassLow},
		{"ซ", "so so", "s", "t", thai.ClassLow},
		{"ด", "do dek", "d", "t", thai.ClassMid},
		{"ต", "to tao", "t", "t", thai.ClassMid},
		{"ถ", "tho thung", "th", "t", thai.ClassHigh},
		{"ท", "tho thahan", "th", "t", thai.ClassLow},
		{"น", "no nu", "n", "n", thai.ClassLow},
		{"บ", "bo baimai", "b", "p", thai.ClassMid},
		{"ป", "po pla", "p", "p", thai.ClassMid},
		{"ผ", "pho phueng", "ph", "p", thai.ClassHigh},
		{"ฝ", "fo fa", "f", "p", thai.ClassHigh},
		{"พ", "pho phan", "ph", "p", thai.ClassLow},
		{"ฟ", "fo fan", "f", "p", thai.ClassLow},
		{"ม", "mo ma", "m", "m", thai.ClassLow},
		{"ย", "yo yak", "y", "y", thai.ClassLow},
		{"ร", "ro ruea", "r", "n", thai.ClassLow},
		{"ล", "lo ling", "l", "n", thai.ClassLow},
		{"ว", "wo waen", "w", "w", thai.ClassLow},
		{"ส", "so suea", "s", "t", thai.ClassHigh},
		{"ห", "ho hip", "h", "", thai.ClassHigh},
		{"อ", "o ang", "", "", thai.ClassMid},
		{"ฮ", "ho nokhuk", "h", "", thai.ClassLow},
	}
	for _, c := range consonants {
		entries[c.g] = &thai.CharacterEntry{
			Grapheme:     c.g,
			Category:     thai.CategoryConsonant,
			Class:        c.class,
			InitialSound: c.initial,
			FinalSound:   c.final,
			Romanization: c.initial,
			Name:         c.name,
		}
	}

	type vow struct {
		g, name, rom string
		pos          thai.VowelPosition
		short        bool
	}
	vowels := []vow{
		{"ะ", "sara a", "a", thai.PositionAfter, true},
		{"ั", "mai han akat", "a", thai.PositionAbove, true},
		{"า", "sara aa", "a", thai.PositionAfter, false},
		{"ำ", "sara am", "am", thai.PositionAfter, false},
		{"ิ", "sara i", "i", thai.PositionAbove, true},
		{"ี", "sara ii", "i", thai.PositionAbove, false},
		{"ึ", "sara ue", "ue", thai.PositionAbove, true},
		{"ื", "sara uee", "ue", thai.PositionAbove, false},
		{"ุ", "sara u", "u", thai.PositionBelow, true},
		{"ู", "sara uu", "u", thai.PositionBelow, false},
		{"เ", "sara e", "e", thai.PositionBefore, false},
		{"แ", "sara ae", "ae", thai.PositionBefore, false},
		{"โ", "sara o", "o", thai.PositionBefore, false},
		{"ใ", "sara ai mai muan", "ai", thai.PositionBefore, false},
		{"ไ", "sara ai mai malai", "ai", thai.PositionBefore, false},
	}
	for _, v := range vowels {
		entries[v.g] = &thai.CharacterEntry{
			Grapheme:     v.g,
			Category:     thai.CategoryVowel,
			Position:     v.pos,
			Romanization: v.rom,
			Name:         v.name,
			Short:        v.short,
		}
	}

	toneMarks := map[string]string{
		"่": "mai ek",
		"้": "mai tho",
		"๊": "mai tri",
		"๋": "mai chattawa",
	}
	for g, name := range toneMarks {
		entries[g] = &thai.CharacterEntry{
			Grapheme: g,
			Category: thai.CategoryToneMark,
			Name:     name,
		}
	}

	entries["์"] = &thai.CharacterEntry{
		Grapheme: "์",
		Category: thai.CategoryOtherMark,
		Name:     "thanthakhat",
		Silencer: true,
	}
	entries["็"] = &thai.CharacterEntry{
		Grapheme:  "็",
		Category:  thai.CategoryOtherMark,
		Name:      "mai taikhu",
		Shortener: true,
	}

	type pat struct {
		key, name, rom string
		carrier        int
		short          bool
	}
	pats := []pat{
		{"เ-ือ", "sara uea", "uea", 2, false},
		{"เ-ีย", "sara ia", "ia", 2, false},
		{"เ-าะ", "sara o (short)", "o", 1, true},
		{"เ-า", "sara ao", "ao", 1, false},
		{"เ-อ", "sara oe", "oe", 1, false},
		{"เ-ะ", "sara e (short)", "e", 1, true},
		{"แ-ะ", "sara ae (short)", "ae", 1, true},
		{"โ-ะ", "sara o (short)", "o", 1, true},
		{"-ัว", "sara ua", "ua", 1, false},
	}
	var patterns []*thai.ComplexVowelPattern
	for _, p := range pats {
		var constituents []string
		for _, r := range p.key {
			if r != '-' {
				constituents = append(constituents, string(r))
			}
		}
		patterns = append(patterns, &thai.ComplexVowelPattern{
			Key:          p.key,
			Constituents: constituents,
			CarrierIndex: p.carrier,
			Name:         p.name,
			Romanization: p.rom,
			Short:        p.short,
		})
	}

	return newDB(entries, patterns, builtinRules())
}

// builtinRules is the canonical Thai tone and cluster rule set.
func builtinRules() *Rules {
	return &Rules{
		ToneMarkRules: map[string]map[string]thai.Tone{
			"่": {"mid": thai.ToneLow, "high": thai.ToneLow, "low": thai.ToneFalling, "low_dead": thai.ToneHigh},
			"้": {"mid": thai.ToneFalling, "high": thai.ToneFalling, "low": thai.ToneHigh},
			"๊": {"mid": thai.ToneHigh, "high": thai.ToneHigh, "low": thai.ToneHigh},
			"๋": {"mid": thai.ToneRising, "high": thai.ToneRising, "low": thai.ToneRising},
		},
		DefaultToneRules: map[thai.ConsonantClass]map[thai.SyllableType]thai.Tone{
			thai.ClassMid:  {thai.SyllableLive: thai.ToneMid, thai.SyllableDead: thai.ToneLow},
			thai.ClassHigh: {thai.SyllableLive: thai.ToneRising, thai.SyllableDead: thai.ToneLow},
			thai.ClassLow:  {thai.SyllableLive: thai.ToneMid, thai.SyllableDead: thai.ToneHigh},
		},
		VowelPositionRules: map[string]string{
			"before":      "written left of the initial consonant, pronounced after it",
			"above":       "written above the initial consonant",
			"below":       "written below the initial consonant",
			"after":       "written right of the initial consonant",
			"surrounding": "written on more than one side of the initial consonant",
		},
		Clusters: []string{
			"กร", "กล", "กว",
			"ขร", "ขล", "ขว",
			"คร", "คล", "คว",
			"ตร",
			"ปร", "ปล",
			"ผล",
			"พร", "พล",
		},
		SilentLeaders: map[string][]string{
			"ห": {"ง", "ญ", "น", "ม", "ย", "ร", "ล", "ว"},
			"อ": {"ย"},
		},
	}
}
