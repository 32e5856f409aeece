package youtube

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
)

// Authorizer obtains an OAuth token: from the cache file, from a refresh
// token, or by asking the user to paste an authorization code. The prompt
// blocks on In with no timeout.
type Authorizer struct {
	Config       *oauth2.Config
	TokenPath    string
	RefreshToken string
	In           io.Reader
	Out          io.Writer
}

// Client returns an HTTP client that refreshes the token as needed.
func (a *Authorizer) Client(ctx context.Context) (*http.Client, error) {
	tok, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return a.Config.Client(ctx, tok), nil
}

func (a *Authorizer) Token(ctx context.Context) (*oauth2.Token, error) {
	if tok, err := LoadToken(a.TokenPath); err == nil {
		return tok, nil
	}

	if a.RefreshToken != "" {
		log.Printf("📄 Using refresh token from environment variable")
		tok, err := a.Config.TokenSource(ctx, &oauth2.Token{RefreshToken: a.RefreshToken}).Token()
		if err != nil {
			return nil, fmt.Errorf("failed to refresh token: %w", err)
		}
		a.store(tok)
		return tok, nil
	}

	authURL := a.Config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(a.Out, "🔐 Authorize this app by visiting:\n\n%s\n\n", authURL)
	fmt.Fprint(a.Out, "Enter the code from that page here: ")

	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := a.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	a.store(tok)
	fmt.Fprintf(a.Out, "✅ Token stored to %s\n", a.TokenPath)
	return tok, nil
}

func (a *Authorizer) store(tok *oauth2.Token) {
	if err := SaveToken(a.TokenPath, tok); err != nil {
		log.Printf("⚠️ Warning: failed to save token to cache: %v", err)
	}
}

func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return tok, nil
}

func SaveToken(path string, tok *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
