package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/sara/internal/chardb"
	"github.com/spf13/cobra"
)

var initcacheCmd = &cobra.Command{
	Use:   "initcache",
	Short: "Build the sqlite character database cache",
	Long: `Build the sqlite cache in the config directory from the best
available source (user characters.yaml, bundled asset, or builtin
defaults). Subsequent runs load the cache first.`,
	RunE: runInitcache,
}

func init() {
	rootCmd.AddCommand(initcacheCmd)
}

func runInitcache(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Skip the cache tier so a stale cache never seeds itself.
	loaders := chardb.DefaultLoaders(configDir)[1:]
	db, source, err := chardb.Load(loaders...)
	if err != nil {
		return fmt.Errorf("loading character database: %w", err)
	}

	path := chardb.CachePath(configDir)
	if err := chardb.SaveCache(path, db); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	fmt.Printf("Cached %d graphemes from %s to %s\n", db.Size(), source, path)
	return nil
}
