package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/menuquiz/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Inspect and validate menu datasets",
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and items",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds, err := menu.Load(cfg.Dataset)
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		showIngredients, _ := cmd.Flags().GetBool("ingredients")

		categories := ds.Categories()
		if category != "" {
			if !ds.HasCategory(category) {
				return fmt.Errorf("unknown category %q (have %s)", category, strings.Join(categories, ", "))
			}
			categories = []string{category}
		}

		for _, c := range categories {
			items := ds.Items(c)
			fmt.Printf("%s (%d items)\n", c, len(items))
			for _, it := range items {
				name := it.Name
				if it.Subcategory != "" {
					name = it.Subcategory + " / " + it.Name
				}
				if showIngredients {
					fmt.Printf("  %-32s  %s\n", name, strings.Join(it.Ingredients, ", "))
				} else {
					fmt.Printf("  %-32s  %d ingredients\n", name, len(it.Ingredients))
				}
			}
		}
		return nil
	},
}

var menuValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a dataset file (default: the configured dataset)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.Dataset
		}

		ds, err := menu.Load(path)
		if err != nil {
			return err
		}
		if path == "" {
			path = "embedded dataset"
		}
		fmt.Printf("%s: ok (%d categories, %d items)\n", path, len(ds.Categories()), ds.Len())
		return nil
	},
}

func init() {
	menuListCmd.Flags().String("category", "", "Only list this category")
	menuListCmd.Flags().Bool("ingredients", false, "Show ingredient lists")

	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuValidateCmd)
}
