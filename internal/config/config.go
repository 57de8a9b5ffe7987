package config

import (
	"fmt"
	"os"
	"strconv"
)

// Databases maps each content collection to its Notion database ID.
type Databases struct {
	Blog       string
	Reading    string
	Projects   string
	Experience string
	Quotes     string
	Settings   string
	Tweets     string
}

// API describes HTTP-layer configuration.
type API struct {
	BindAddr    string
	NotionToken string
	Databases   Databases
	TweetLimit  int
}

// LoadAPI builds an API config from environment variables.
//
// A missing NOTION_TOKEN is not an error here: the service still starts and
// every resolver degrades to its category default when the store rejects the
// unauthenticated calls.
func LoadAPI() (*API, error) {
	c := &API{
		BindAddr:    getEnv("API_BIND_ADDR", "0.0.0.0:8080"),
		NotionToken: os.Getenv("NOTION_TOKEN"),
		Databases: Databases{
			Blog:       getEnv("NOTION_DB_BLOG", "075c9918de77404687ea02e706f2c16f"),
			Reading:    getEnv("NOTION_DB_READING", "a900e239d97742f48fd5fe8c50c6c064"),
			Projects:   getEnv("NOTION_DB_PROJECTS", "a2ce496fa726459aa7b693dc2cb88e05"),
			Experience: getEnv("NOTION_DB_EXPERIENCE", "a0edb5c3967546f1b6f53009a1e02927"),
			Quotes:     getEnv("NOTION_DB_QUOTES", "242e3bcf0b3c4db3a823388c5bffb66a"),
			Settings:   getEnv("NOTION_DB_SETTINGS", "6f4329b39f13403a9e6996bc0dcade29"),
			Tweets:     getEnv("NOTION_DB_TWEETS", "5a7553b800bd43438c4a64fd2fc21ed0"),
		},
		TweetLimit: getInt("API_TWEET_LIMIT", 100),
	}

	if c.BindAddr == "" {
		return nil, fmt.Errorf("API_BIND_ADDR must not be empty")
	}
	if c.TweetLimit <= 0 {
		return nil, fmt.Errorf("API_TWEET_LIMIT must be positive")
	}

	for name, id := range map[string]string{
		"NOTION_DB_BLOG":       c.Databases.Blog,
		"NOTION_DB_READING":    c.Databases.Reading,
		"NOTION_DB_PROJECTS":   c.Databases.Projects,
		"NOTION_DB_EXPERIENCE": c.Databases.Experience,
		"NOTION_DB_QUOTES":     c.Databases.Quotes,
		"NOTION_DB_SETTINGS":   c.Databases.Settings,
		"NOTION_DB_TWEETS":     c.Databases.Tweets,
	} {
		if id == "" {
			return nil, fmt.Errorf("%s must not be empty", name)
		}
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
