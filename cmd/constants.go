package cmd

import (
	"encoding/json"

	"fraxlend/pkg/fraxlend"

	"github.com/spf13/cobra"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "print the precision constants of a pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(fraxlend.GetConstants(), "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}
