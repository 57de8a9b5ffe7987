package content

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

var (
	tweetContent = normalize.Shape("",
		normalize.Cand("Content", normalize.KindTitle),
		normalize.Cand("content", normalize.KindTitle),
		normalize.Cand("Text", normalize.KindText),
		normalize.Cand("text", normalize.KindText),
	)
	tweetURL = normalize.Shape("",
		normalize.Cand("Tweet URL", normalize.KindURL),
		normalize.Cand("URL", normalize.KindURL),
		normalize.Cand("url", normalize.KindURL),
	)
	tweetID = normalize.Shape("",
		normalize.Cand("Tweet ID", normalize.KindText),
		normalize.Cand("tweet id", normalize.KindText),
		normalize.Cand("ID", normalize.KindText),
	)
	tweetDate = normalize.Shape("",
		normalize.Cand("Date", normalize.KindDate),
		normalize.Cand("date", normalize.KindDate),
	)
)

// Tweets returns the visible posts, optionally restricted to featured ones
// and capped at limit. Records with neither displayable text nor a post
// identifier are dropped: the embed widget has nothing to render for them.
func (s *Service) Tweets(ctx context.Context, featuredOnly bool, limit int) ([]models.Tweet, error) {
	var filter notionapi.Filter = showFilter
	if featuredOnly {
		filter = notionapi.AndCompoundFilter{
			showFilter,
			notionapi.PropertyFilter{
				Property: "Featured",
				Checkbox: &notionapi.CheckboxFilterCondition{Equals: true},
			},
		}
	}

	pages, err := s.store.Query(ctx, s.dbs.Tweets, filter, orderAscending)
	if err != nil {
		return nil, fmt.Errorf("tweets: %w", err)
	}

	tweets := make([]models.Tweet, 0, len(pages))
	for _, page := range pages {
		props := page.Properties

		date := normalize.Field(props, tweetDate)
		if date == "" {
			date = page.CreatedTime.UTC().Format(time.RFC3339)
		}

		t := models.Tweet{
			ID:       page.ID.String(),
			Content:  normalize.Field(props, tweetContent),
			TweetURL: normalize.Field(props, tweetURL),
			TweetID:  strings.TrimSpace(normalize.Field(props, tweetID)),
			Date:     date,
			Featured: normalize.Checked(props, "Featured", "featured"),
			Order:    normalize.NumberOr(props, "Order", unsetOrder),
		}

		if t.Content == "" && t.TweetID == "" {
			continue
		}
		tweets = append(tweets, t)
	}

	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].Order < tweets[j].Order
	})

	if limit > 0 && len(tweets) > limit {
		tweets = tweets[:limit]
	}

	return tweets, nil
}
