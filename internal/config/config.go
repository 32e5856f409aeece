package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

// App locates config.json, the record of where the personal data root lives.
type App struct {
	AppRoot string `env:"APP_ROOT" envDefault:"."`
}

type Database struct {
	URL        string `env:"DATABASE_URL"`
	SchemaPath string `env:"SCHEMA_PATH"`
}

type YouTube struct {
	CredentialsPath string `env:"YOUTUBE_CREDENTIALS_PATH" envDefault:"credentials.json"`
	TokenPath       string `env:"YOUTUBE_TOKEN_PATH" envDefault:"youtube-token.json"`
	OutputPath      string `env:"YOUTUBE_OUTPUT_PATH" envDefault:"recent-videos.json"`
	MaxResults      int    `env:"YOUTUBE_MAX_RESULTS" envDefault:"50"`
	// Used instead of the interactive code prompt when no token is cached.
	RefreshToken string `env:"YOUTUBE_REFRESH_TOKEN"`
}

type LLM struct {
	Provider         LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	RequestsPerMinute int     `env:"LLM_REQUESTS_PER_MINUTE" envDefault:"30"`
	CostPer1KTokens   float64 `env:"COST_PER_1K_TOKENS" envDefault:"0.0006"`
	InputPath         string  `env:"RECENT_VIDEOS_PATH" envDefault:"recent-videos.json"`
}

// Telegram notifications are disabled when BotToken is empty.
type Telegram struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}

// Scheduler specs are standard 5-field cron expressions evaluated in UTC.
type Scheduler struct {
	Consolidate string `env:"SCHEDULE_CONSOLIDATE" envDefault:"0 3 * * *"`
	Backup      string `env:"SCHEDULE_BACKUP" envDefault:"30 3 * * *"`
	Summary     string `env:"SCHEDULE_SUMMARY" envDefault:"0 21 * * *"`
}

// LoadDotEnv loads .env from the working directory if there is one.
func LoadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
}

// Parse fills cfg, a pointer to one of the structs above, from the environment.
func Parse(cfg any) error {
	return env.Parse(cfg)
}

// MustParse is Parse for main packages: it exits on error.
func MustParse(cfg any) {
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
}
