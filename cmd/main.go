// @title        agrimoga advisory API
// @version      1.0
// @description  Irrigation, disease risk, fertilization and pricing advice for small berry and avocado farms.
// @BasePath     /
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "agrimoga/docs"
)

func main() {
	var cfgDir string

	rootCmd := &cobra.Command{
		Use:          "agrimoga",
		Short:        "Farm advisory service: irrigation, disease risk, fertilization and pricing",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgDir, "config", "c", "configs", "directory holding config.yml")

	rootCmd.AddCommand(serveCmd(&cfgDir))
	rootCmd.AddCommand(validateCatalogCmd())
	rootCmd.AddCommand(adviseCmd(&cfgDir))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
