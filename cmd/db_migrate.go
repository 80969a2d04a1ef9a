package cmd

import (
	"fmt"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/spf13/cobra"
)

// pair snapshots, events & keeper checkpoints register their tables in init
var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Aliases: []string{"setdb"},
	Short:   "create or update the pair, event & property tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.FromContext(cmd.Context())

		database := provideDatabase()
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		log.Infoln("database migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
