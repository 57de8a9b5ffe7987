package content

import (
	"context"
	"fmt"
	"sort"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

var (
	bookTitle = normalize.Shape("Untitled",
		normalize.Cand("Title", normalize.KindTitle),
		normalize.Cand("Name", normalize.KindTitle),
		normalize.Cand("Book", normalize.KindTitle),
	)
	bookAuthor = normalize.Shape("",
		normalize.Cand("Author", normalize.KindText),
		normalize.Cand("Writer", normalize.KindText),
		normalize.Cand("By", normalize.KindText),
	)
	bookCover = normalize.Shape("",
		normalize.Cand("Cover", normalize.KindFiles),
		normalize.Cand("Cover Image", normalize.KindFiles),
		normalize.Cand("Image", normalize.KindFiles),
		normalize.Cand("Photo", normalize.KindFiles),
		normalize.Cand("CoverURL", normalize.KindURL),
		normalize.Cand("URL", normalize.KindURL),
		normalize.Cand("Link", normalize.KindURL),
	)
	bookDescription = normalize.Shape("",
		normalize.Cand("Description", normalize.KindText),
		normalize.Cand("Summary", normalize.KindText),
		normalize.Cand("Notes", normalize.KindText),
	)
	bookLink = normalize.Shape("",
		normalize.Cand("Link", normalize.KindURL),
		normalize.Cand("URL", normalize.KindURL),
	)
	bookStatus = normalize.Shape("Reading",
		normalize.Cand("Status", normalize.KindSelect),
		normalize.Cand("State", normalize.KindSelect),
	)
)

// ReadingList returns the visible books. The store sorts by Order, but that
// sort is unreliable for records without the property, so the resolver
// re-sorts with unset orders pushed to the end.
func (s *Service) ReadingList(ctx context.Context) ([]models.Book, error) {
	pages, err := s.store.Query(ctx, s.dbs.Reading, showFilter, orderAscending)
	if err != nil {
		return nil, fmt.Errorf("reading list: %w", err)
	}

	books := make([]models.Book, 0, len(pages))
	for _, page := range pages {
		props := page.Properties

		link := normalize.Field(props, bookLink)
		if link == "" {
			link = page.URL
		}

		books = append(books, models.Book{
			ID:          page.ID.String(),
			Title:       normalize.Field(props, bookTitle),
			Author:      normalize.Field(props, bookAuthor),
			CoverImage:  normalize.Field(props, bookCover),
			Description: normalize.Field(props, bookDescription),
			Link:        link,
			Status:      normalize.Field(props, bookStatus),
			Order:       normalize.NumberOr(props, "Order", unsetOrder),
		})
	}

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Order < books[j].Order
	})

	return books, nil
}
