package translator

import (
	"context"
	"errors"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService translates through Google Cloud Translation instead of a
// completion model. The language pair is the same fixed en -> ta.
type GoogleService struct {
	client *translate.Client
	source language.Tag
	target language.Tag
}

// NewGoogleService opens one client for the lifetime of the process.
// credentials is an optional path to a service account file; extra options
// are appended after it.
func NewGoogleService(ctx context.Context, credentials string, opts ...option.ClientOption) (*GoogleService, error) {
	var clientOpts []option.ClientOption
	if credentials != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentials))
	}
	clientOpts = append(clientOpts, opts...)

	client, err := translate.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	return &GoogleService{
		client: client,
		source: language.MustParse(SourceLang),
		target: language.MustParse(TargetLang),
	}, nil
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, input string) (string, error) {
	translations, err := s.client.Translate(ctx, []string{input}, s.target, &translate.Options{
		Source: s.source,
		Format: translate.Text,
	})
	if err != nil {
		return "", err
	}

	if len(translations) == 0 {
		return "", errors.New("no translation returned")
	}

	return translations[0].Text, nil
}

func (s *GoogleService) Close() error {
	return s.client.Close()
}
