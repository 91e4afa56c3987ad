package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize builds an HTTP client authorized for the Google Sheets API from
// an OAuth2 credentials file. Tokens are cached in a '<credentials>.tokens'
// file next to the credentials; when the cache is missing or stale the user
// is walked through the console authorization flow.
func authorize(ctx context.Context, credentials string, scope string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file %s: %w", credentials, err)
	}

	cfg, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file %s: %w", credentials, err)
	}

	dir, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))
	tokens := filepath.Join(dir, name+".tokens")

	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = tokenFromConsole(ctx, cfg); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return cfg.Client(ctx, token), nil
}

func tokenFromConsole(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("reading authorization code: %w", err)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return token, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("caching oauth token to %s: %w", file, err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
