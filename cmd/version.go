package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rnwolfe/planr/internal/version"
	"github.com/spf13/cobra"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		info := version.Get()
		if versionJSON {
			return json.NewEncoder(os.Stdout).Encode(info)
		}
		fmt.Printf("planr %s\n", info)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
}
