/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/llm-api/internal/config"
	"github.com/valpere/llm-api/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the translation HTTP API",
	Long: `Start the HTTP API.

Endpoint:
  POST /translate/   {"input_str": "..."} -> {"translated_text": "..."}

The provider credential is read from OPENAI_API_KEY (or a .env file).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("host") {
			cfg.Server.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		ctx := cmd.Context()

		tr, closeTranslator, err := buildTranslator(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeTranslator()

		return server.New(cfg.Server, tr).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Address to bind")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Port to listen on")
}
