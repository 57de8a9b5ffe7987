package content

import (
	"context"
	"log/slog"
	"strings"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

// FallbackQuote is served whenever the store is unreachable or yields no
// usable quote. The section must never come up empty.
var FallbackQuote = models.Quote{
	ID:       "default",
	Text:     "It is not the critic who counts; not the man who points out how the strong man stumbles, or where the doer of deeds could have done them better. The credit belongs to the man who is actually in the arena, whose face is marred by dust and sweat and blood; who strives valiantly; who errs, who comes short again and again, because there is no effort without error and shortcoming; but who does actually strive to do the deeds; who knows great enthusiasms, the great devotions; who spends himself in a worthy cause; who at the best knows in the end the triumph of high achievement, and who at the worst, if he fails, at least fails while daring greatly, so that his place shall never be with those cold and timid souls who neither know victory nor defeat.",
	Author:   "Theodore Roosevelt",
	Source:   "Citizenship in a Republic, 1910",
	Featured: true,
}

// Quote text, author and source each drift between title- and
// rich-text-typed properties across deployments, and between casings.
var (
	quoteText   = titleOrText("Text", "text", "Quote", "quote", "Content")
	quoteAuthor = titleOrText("Author", "author", "By")
	quoteSource = titleOrText("Source", "source", "From")
)

func titleOrText(names ...string) normalize.FieldShape {
	cands := make([]normalize.Candidate, 0, 2*len(names))
	for _, name := range names {
		cands = append(cands,
			normalize.Cand(name, normalize.KindTitle),
			normalize.Cand(name, normalize.KindText),
		)
	}
	return normalize.FieldShape{Candidates: cands}
}

// Quotes returns the visible quotes plus the featured pick: first record
// flagged featured, else the first in collection order. It never fails;
// every degraded path lands on FallbackQuote.
func (s *Service) Quotes(ctx context.Context) ([]models.Quote, models.Quote) {
	pages, err := s.store.Query(ctx, s.dbs.Quotes, showFilter, nil)
	if err != nil {
		s.log.Warn("quotes query failed, serving fallback", slog.Any("err", err))
		return []models.Quote{FallbackQuote}, FallbackQuote
	}

	quotes := make([]models.Quote, 0, len(pages))
	for _, page := range pages {
		props := page.Properties
		q := models.Quote{
			ID:       page.ID.String(),
			Text:     normalize.Field(props, quoteText),
			Author:   normalize.Field(props, quoteAuthor),
			Source:   normalize.Field(props, quoteSource),
			Featured: normalize.Checked(props, "Featured", "featured", "Pinned"),
		}
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return []models.Quote{FallbackQuote}, FallbackQuote
	}

	featured := quotes[0]
	for _, q := range quotes {
		if q.Featured {
			featured = q
			break
		}
	}

	return quotes, featured
}
