package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/newsmind/config"
	srv "github.com/mohammad-safakhou/newsmind/internal/server"
)

func serveCMD() *cobra.Command {
	var cfgPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run the news Q&A HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)

			logger := log.New(log.Writer(), "[NEWSMIND] ", log.LstdFlags)
			logger.Printf("max_tokens=%d temperature=%.2f", cfg.LLM.MaxTokens, cfg.LLM.Temperature)
			logger.Printf("max_results=%d max_chars_per_source=%d", cfg.Search.MaxResults, cfg.Answer.MaxCharsPerSource)

			return srv.Run(cfg)
		},
	}
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return serve
}
