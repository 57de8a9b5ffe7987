package content

import (
	"context"
	"fmt"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

var (
	experienceRole        = normalize.Shape("", normalize.Cand("Role", normalize.KindTitle))
	experienceCompany     = normalize.Shape("", normalize.Cand("Company", normalize.KindText))
	experienceDates       = normalize.Shape("", normalize.Cand("Dates", normalize.KindText))
	experienceLocation    = normalize.Shape("", normalize.Cand("Location", normalize.KindText))
	experienceDescription = normalize.Shape("", normalize.Cand("Description", normalize.KindText))
)

// Experience returns the visible work-history entries in display order.
func (s *Service) Experience(ctx context.Context) ([]models.Experience, error) {
	pages, err := s.store.Query(ctx, s.dbs.Experience, showFilter, orderAscending)
	if err != nil {
		return nil, fmt.Errorf("experience: %w", err)
	}

	experiences := make([]models.Experience, 0, len(pages))
	for _, page := range pages {
		props := page.Properties
		experiences = append(experiences, models.Experience{
			ID:          page.ID.String(),
			Role:        normalize.Field(props, experienceRole),
			Company:     normalize.Field(props, experienceCompany),
			Dates:       normalize.Field(props, experienceDates),
			Location:    normalize.Field(props, experienceLocation),
			Description: normalize.Field(props, experienceDescription),
		})
	}

	return experiences, nil
}
