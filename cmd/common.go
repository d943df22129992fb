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
	"context"
	"fmt"

	"github.com/valpere/llm-api/internal/config"
	"github.com/valpere/llm-api/internal/translator"
)

// buildTranslator constructs the configured provider once. The returned
// close function releases provider resources and is never nil.
func buildTranslator(ctx context.Context, cfg *config.Config) (translator.Translator, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Translator.Provider {
	case "", "openai":
		return translator.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Organization), noop, nil
	case "google":
		svc, err := translator.NewGoogleService(ctx, cfg.Google.Credentials)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create Google client: %w", err)
		}
		return svc, svc.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown translator provider: %s", cfg.Translator.Provider)
	}
}
