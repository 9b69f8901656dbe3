package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/llm"
	"github.com/abhisek/menuquiz/internal/logger"
	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/menugen"
)

var draftCmd = &cobra.Command{
	Use:   "draft <item>",
	Short: "Draft an item's ingredient list with an LLM",
	Long: `Draft asks the configured LLM provider for the ingredients of a new menu
item and prints a dataset fragment. With --merge the item is added to a
dataset file instead.

The provider is taken from llm.provider, or from the first API key found in
ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("provider"); p != "" {
			cfg.LLM.Provider = p
		}
		if m, _ := cmd.Flags().GetString("model"); m != "" {
			cfg.LLM.Model = m
		}

		category, _ := cmd.Flags().GetString("category")
		subcategory, _ := cmd.Flags().GetString("subcategory")
		description, _ := cmd.Flags().GetString("description")
		mergePath, _ := cmd.Flags().GetString("merge")
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		formatName, _ := cmd.Flags().GetString("format")

		log, err := logger.New(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		// Examples come from the file being merged into when there is one.
		source := cfg.Dataset
		if mergePath != "" {
			source = mergePath
		}
		ds, err := menu.Load(source)
		if err != nil {
			return err
		}

		retry := llm.DefaultRetry()
		retry.MaxAttempts = cfg.LLM.MaxRetries
		llmCfg, err := llm.Config{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			Retry:    retry,
		}.Resolve()
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, llmCfg, log)
		if err != nil {
			return err
		}

		mcfg := menugen.DefaultConfig()
		mcfg.MaxTokens = cfg.LLM.MaxTokens
		mcfg.Temperature = cfg.LLM.Temperature
		mcfg.Timeout = cfg.LLM.Timeout

		d, err := menugen.New(provider, mcfg, log).Draft(ctx, menugen.Input{
			Item:        args[0],
			Category:    category,
			Subcategory: subcategory,
			Description: description,
			Examples:    menugen.ExamplesFrom(ds, category, subcategory),
		})
		if err != nil {
			return fmt.Errorf("draft %q: %w", args[0], err)
		}

		if mergePath == "" {
			out, err := menugen.Encode(menugen.Fragment(*d), menu.Format(formatName))
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		}

		format, err := menu.FormatFromPath(mergePath)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(mergePath)
		if err != nil {
			return fmt.Errorf("read dataset: %w", err)
		}
		out, err := menugen.Merge(data, format, *d, overwrite)
		if err != nil {
			return err
		}
		if err := os.WriteFile(mergePath, out, 0o644); err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}
		log.Info("item merged",
			zap.String("path", mergePath),
			zap.String("item", d.Item),
			zap.Int("ingredients", len(d.Ingredients)))
		fmt.Printf("Added %q to %s/%s\n", d.Item, mergePath, d.Category)
		return nil
	},
}

func init() {
	draftCmd.Flags().String("category", "", "Category to add the item to")
	draftCmd.Flags().String("subcategory", "", "Optional subcategory within the category")
	draftCmd.Flags().String("description", "", "Short description to guide the model")
	draftCmd.Flags().String("merge", "", "Dataset file (.json/.yaml) to add the item to")
	draftCmd.Flags().Bool("overwrite", false, "Replace the item if it already exists")
	draftCmd.Flags().String("format", string(menu.FormatJSON), "Fragment format when not merging (json or yaml)")
	draftCmd.Flags().String("provider", "", "LLM provider (anthropic, openai, gemini, openrouter)")
	draftCmd.Flags().String("model", "", "Model name or alias")
	_ = draftCmd.MarkFlagRequired("category")
}
