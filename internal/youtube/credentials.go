package youtube

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// CredentialsHelp explains how to obtain credentials.json.
const CredentialsHelp = `To create credentials:
1. Go to https://console.cloud.google.com
2. Create/select project
3. Enable YouTube Data API v3
4. Create OAuth 2.0 credentials
5. Download as credentials.json
6. Place in this directory`

// LoadCredentials reads a Google Cloud Console client file ("installed" or
// "web" section) and returns a read-only YouTube OAuth config.
func LoadCredentials(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, path)
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	cfg, err := google.ConfigFromJSON(data, youtube.YoutubeReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = "urn:ietf:wg:oauth:2.0:oob"
	}
	return cfg, nil
}
