package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosmd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosmd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosmd v%s\n", version.Version)
		fmt.Println("Cantilever Shear and Moment Diagram Tool")
		fmt.Printf("Commit: %s  Built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
