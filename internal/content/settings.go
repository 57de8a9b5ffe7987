package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jomei/notionapi"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

// settingsRecordName identifies the single active settings record.
const settingsRecordName = "Main"

var (
	settingsTitle = normalize.Shape("Personal Archive",
		normalize.Cand("Site Title", normalize.KindText),
		normalize.Cand("Title", normalize.KindTitle),
	)
	settingsDescription = normalize.Shape("",
		normalize.Cand("Description", normalize.KindText),
	)
	settingsTagline = normalize.Shape("A living collection of thoughts, works, and inspirations.",
		normalize.Cand("Tagline", normalize.KindText),
	)
	settingsPhoto    = normalize.Shape("", normalize.Cand("Photo", normalize.KindURL))
	settingsEmail    = normalize.Shape("",
		normalize.Cand("Email", normalize.KindEmail),
		normalize.Cand("Email", normalize.KindURL),
	)
	settingsGithub   = normalize.Shape("", normalize.Cand("GitHub", normalize.KindURL))
	settingsLinkedin = normalize.Shape("",
		normalize.Cand("LinkedIn", normalize.KindURL),
		normalize.Cand("LinkedInURL", normalize.KindURL),
	)
	settingsTwitter = normalize.Shape("",
		normalize.Cand("Twitter", normalize.KindURL),
		normalize.Cand("TwitterURL", normalize.KindURL),
	)
)

// Settings fetches the site-wide settings record, nil when none exists. The
// store-side title filter degrades to an unfiltered query with post-hoc
// matching when the Title property drifted.
func (s *Service) Settings(ctx context.Context) (*models.SiteSettings, error) {
	filter := notionapi.PropertyFilter{
		Property: "Title",
		RichText: &notionapi.TextFilterCondition{Equals: settingsRecordName},
	}

	pages, err := s.store.Query(ctx, s.dbs.Settings, filter, nil)
	if err != nil {
		s.log.Warn("settings query failed, retrying unfiltered", slog.Any("err", err))
		pages, err = s.store.Query(ctx, s.dbs.Settings, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
		pages = matchSettingsRecord(pages)
	}

	if len(pages) == 0 {
		return nil, nil
	}

	props := pages[0].Properties

	return &models.SiteSettings{
		ID:          pages[0].ID.String(),
		Title:       normalize.Field(props, settingsTitle),
		Description: normalize.Field(props, settingsDescription),
		Tagline:     normalize.Field(props, settingsTagline),
		Photo:       normalize.Field(props, settingsPhoto),
		Email:       normalize.Field(props, settingsEmail),
		Github:      normalize.Field(props, settingsGithub),
		Linkedin:    normalize.Field(props, settingsLinkedin),
		Twitter:     normalize.Field(props, settingsTwitter),
	}, nil
}

// matchSettingsRecord narrows an unfiltered result to the record titled
// "Main", keeping the full set when no title matches so one record still
// renders.
func matchSettingsRecord(pages []notionapi.Page) []notionapi.Page {
	titleOnly := normalize.Shape("", normalize.Cand("Title", normalize.KindTitle))
	for _, page := range pages {
		if normalize.Field(page.Properties, titleOnly) == settingsRecordName {
			return []notionapi.Page{page}
		}
	}
	return pages
}
