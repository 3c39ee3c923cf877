package cmd

import (
	"fmt"
	"sort"

	"github.com/f3rmion/sara/internal/syllable"
	"github.com/f3rmion/sara/internal/thai"
	"github.com/spf13/cobra"
)

var tonesCmd = &cobra.Command{
	Use:   "tones",
	Short: "Show the tone rule table or resolve a single rule",
	Long: `Without flags, enumerate the canonical tone table: every
consonant class crossed with every tone mark and syllable type. With
flags, resolve one cell.

Examples:
  sara tones
  sara tones --class low --type live --mark "่"`,
	RunE: runTones,
}

var (
	tonesClass string
	tonesType  string
	tonesMark  string
)

func init() {
	rootCmd.AddCommand(tonesCmd)
	tonesCmd.Flags().StringVar(&tonesClass, "class", "", "consonant class: low, mid, high")
	tonesCmd.Flags().StringVar(&tonesType, "type", "", "syllable type: live, dead")
	tonesCmd.Flags().StringVar(&tonesMark, "mark", "", "tone mark grapheme, empty for no mark")
}

func runTones(cmd *cobra.Command, args []string) error {
	db, err := loadDatabase()
	if err != nil {
		return err
	}
	calc := syllable.NewToneCalculator(db)

	if tonesClass != "" {
		syllableType := thai.SyllableType(tonesType)
		if syllableType == "" {
			syllableType = thai.SyllableLive
		}
		result := calc.ComputeTone(thai.ConsonantClass(tonesClass), syllableType, tonesMark)
		fmt.Println(result.Explanation)
		return nil
	}

	classes := []thai.ConsonantClass{thai.ClassMid, thai.ClassHigh, thai.ClassLow}
	types := []thai.SyllableType{thai.SyllableLive, thai.SyllableDead}

	var markGraphemes []string
	for mark := range db.Rules().ToneMarkRules {
		markGraphemes = append(markGraphemes, mark)
	}
	sort.Strings(markGraphemes)
	marks := append([]string{""}, markGraphemes...)

	for _, class := range classes {
		for _, mark := range marks {
			for _, syllableType := range types {
				result := calc.ComputeTone(class, syllableType, mark)
				fmt.Println(result.Explanation)
			}
		}
	}
	return nil
}
