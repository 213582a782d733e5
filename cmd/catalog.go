package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"melodex/catalog"
	"melodex/config"
	"melodex/core/recommend"
	"melodex/model"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [csv-path]",
	Short: "Validate a catalog CSV and print its statistics",
	Long: `Load a catalog CSV the same way the server does, report how many
rows survive validation, and print the observed feature ranges the
normalization profile would use.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Load().CatalogPath
		if len(args) > 0 {
			path = args[0]
		}

		cat, err := catalog.LoadCSV(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog check failed: %v\n", err)
			os.Exit(1)
		}
		profile, err := recommend.Fit(cat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog check failed: %v\n", err)
			os.Exit(1)
		}

		artists := make(map[string]struct{})
		for _, s := range cat.Songs() {
			artists[s.Artist] = struct{}{}
		}

		fmt.Printf("catalog: %s\n", path)
		fmt.Printf("songs:   %d\n", cat.Len())
		fmt.Printf("artists: %d\n", len(artists))
		fmt.Printf("genres:  %d\n", len(cat.Genres()))
		fmt.Println("feature ranges:")
		for i, name := range model.FeatureDimensions {
			fmt.Printf("  %-16s min=%.3f max=%.3f\n", name, profile.Min[i], profile.Max[i])
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
