package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/f3rmion/sara/internal/syllable"
	"github.com/f3rmion/sara/internal/thai"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <syllable>...",
	Short: "Analyze a Thai syllable into components, tone, and romanization",
	Long: `Analyze one or more Thai syllables and display:
  - each grapheme with its role in writing order
  - complex vowel membership (carrier vs. silent members)
  - silenced consonants
  - the tone with the rule that produced it
  - the assembled romanization in phonetic order

Examples:
  sara analyze เครื่อง
  sara analyze หมา มาก
  sara analyze --json ใจ`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var analyzeJSON bool

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the raw analysis result as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	db, err := loadDatabase()
	if err != nil {
		return err
	}
	analyzer := syllable.NewAnalyzer(db)

	for i, arg := range args {
		if i > 0 {
			fmt.Println()
		}
		result := analyzer.Analyze(arg)

		if analyzeJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			fmt.Println(string(out))
			continue
		}

		printAnalysis(result)
	}
	return nil
}

func printAnalysis(result *thai.AnalysisResult) {
	fmt.Printf("Syllable: %s\n\n", result.Syllable)

	for _, c := range result.Components {
		fmt.Printf("  %s %s %s %s\n",
			runewidth.FillRight(c.Grapheme, 4),
			runewidth.FillRight(string(c.Role), 18),
			runewidth.FillRight(soundOrDash(c.Romanization), 6),
			componentNotes(&c))
	}

	fmt.Println()
	fmt.Printf("  Tone: %s\n", result.Tone.Tone)
	fmt.Printf("  Rule: %s\n", result.Tone.Explanation)
	fmt.Printf("  Romanization: %s\n", result.Romanization)
}

func soundOrDash(sound string) string {
	if sound == "" {
		return "-"
	}
	return sound
}

func componentNotes(c *thai.AnnotatedComponent) string {
	notes := ""
	if c.Entry != nil && c.Entry.Name != "" {
		notes = c.Entry.Name
	} else if c.Entry == nil {
		notes = "(unknown)"
	}
	if c.Vowel != nil {
		if c.Vowel.Carrier {
			notes += fmt.Sprintf(" [%s carrier]", c.Vowel.Pattern.Name)
		} else {
			notes += fmt.Sprintf(" [%s member, silent]", c.Vowel.Pattern.Name)
		}
	} else if c.Silent {
		notes += " [silent]"
	}
	return notes
}
