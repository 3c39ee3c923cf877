// Package cmd contains all CLI commands for the sara tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/sara/internal/chardb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sara",
	Short: "Thai syllable analyzer - breakdown, tone rules, and romanization",
	Long: `sara analyzes a single Thai syllable and explains how it is read:

  - which graphemes are consonants, vowels, tone marks, or other marks
  - how multi-grapheme vowel patterns combine around the consonant
  - which consonants are silenced (thanthakhat, ห-nam)
  - the resulting tone from consonant class, live/dead type, and tone mark
  - a romanized rendering in phonetic reading order

Syllables must already be segmented; sara does not split words.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/sara)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.Set("config_dir", filepath.Join(home, ".config", "sara"))
	}

	viper.SetEnvPrefix("SARA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadDatabase runs the loader chain: sqlite cache, user file, bundled
// asset, builtin defaults. First success wins.
func loadDatabase() (*chardb.DB, error) {
	db, source, err := chardb.Load(chardb.DefaultLoaders(getConfigDir())...)
	if err != nil {
		return nil, fmt.Errorf("loading character database: %w", err)
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Character database: %d graphemes from %s\n", db.Size(), source)
	}
	return db, nil
}
