package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/sara/internal/thai"
	"github.com/spf13/cobra"
)

var charsCmd = &cobra.Command{
	Use:   "chars <grapheme>...",
	Short: "Show the character database card for each grapheme",
	Long: `Show the stored linguistic facts for each grapheme: name,
category, consonant class, initial and final sounds, English sound
guide, and writing steps.

Examples:
  sara chars ก
  sara chars เครื่อง`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChars,
}

func init() {
	rootCmd.AddCommand(charsCmd)
}

func runChars(cmd *cobra.Command, args []string) error {
	db, err := loadDatabase()
	if err != nil {
		return err
	}

	first := true
	for _, arg := range args {
		for _, r := range arg {
			if !first {
				fmt.Println()
			}
			first = false

			grapheme := string(r)
			entry := db.Get(grapheme)
			fmt.Printf("Grapheme: %s\n", grapheme)
			if entry == nil {
				fmt.Println("  (not in the character database)")
				continue
			}
			printEntry(entry)
		}
	}
	return nil
}

func printEntry(entry *thai.CharacterEntry) {
	fmt.Printf("  Name:     %s\n", entry.Name)
	fmt.Printf("  Category: %s\n", entry.Category)
	switch entry.Category {
	case thai.CategoryConsonant:
		fmt.Printf("  Class:    %s\n", entry.Class)
		fmt.Printf("  Initial:  %s\n", soundOrDash(entry.InitialSound))
		fmt.Printf("  Final:    %s\n", soundOrDash(entry.FinalSound))
	case thai.CategoryVowel:
		fmt.Printf("  Position: %s\n", entry.Position)
		length := "long"
		if entry.Short {
			length = "short"
		}
		fmt.Printf("  Length:   %s\n", length)
		fmt.Printf("  Sound:    %s\n", soundOrDash(entry.Romanization))
	}
	if entry.EnglishGuide != "" {
		fmt.Printf("  Guide:    %s\n", entry.EnglishGuide)
	}
	if len(entry.WritingSteps) > 0 {
		fmt.Printf("  Writing:  %s\n", strings.Join(entry.WritingSteps, "; "))
	}
}
