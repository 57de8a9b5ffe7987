package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avasin/notion-folio/backend/internal/config"
)

func TestLoadAPIDefaults(t *testing.T) {
	t.Setenv("API_BIND_ADDR", "")
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("NOTION_DB_BLOG", "")
	t.Setenv("API_TWEET_LIMIT", "")

	cfg, err := config.LoadAPI()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.BindAddr)
	require.Empty(t, cfg.NotionToken)
	require.Equal(t, "075c9918de77404687ea02e706f2c16f", cfg.Databases.Blog)
	require.Equal(t, "5a7553b800bd43438c4a64fd2fc21ed0", cfg.Databases.Tweets)
	require.Equal(t, 100, cfg.TweetLimit)
}

func TestLoadAPIOverrides(t *testing.T) {
	t.Setenv("API_BIND_ADDR", ":9090")
	t.Setenv("NOTION_TOKEN", "secret_abc")
	t.Setenv("NOTION_DB_BLOG", "blog-db")
	t.Setenv("NOTION_DB_READING", "reading-db")
	t.Setenv("NOTION_DB_PROJECTS", "projects-db")
	t.Setenv("NOTION_DB_EXPERIENCE", "experience-db")
	t.Setenv("NOTION_DB_QUOTES", "quotes-db")
	t.Setenv("NOTION_DB_SETTINGS", "settings-db")
	t.Setenv("NOTION_DB_TWEETS", "tweets-db")
	t.Setenv("API_TWEET_LIMIT", "25")

	cfg, err := config.LoadAPI()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.BindAddr)
	require.Equal(t, "secret_abc", cfg.NotionToken)
	require.Equal(t, "blog-db", cfg.Databases.Blog)
	require.Equal(t, "reading-db", cfg.Databases.Reading)
	require.Equal(t, "projects-db", cfg.Databases.Projects)
	require.Equal(t, "experience-db", cfg.Databases.Experience)
	require.Equal(t, "quotes-db", cfg.Databases.Quotes)
	require.Equal(t, "settings-db", cfg.Databases.Settings)
	require.Equal(t, "tweets-db", cfg.Databases.Tweets)
	require.Equal(t, 25, cfg.TweetLimit)
}

func TestLoadAPIRejectsBadTweetLimit(t *testing.T) {
	t.Setenv("API_TWEET_LIMIT", "-3")

	_, err := config.LoadAPI()
	require.Error(t, err)
}
