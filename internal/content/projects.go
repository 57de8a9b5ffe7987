package content

import (
	"context"
	"fmt"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

var (
	projectName        = normalize.Shape("Untitled", normalize.Cand("Name", normalize.KindTitle))
	projectDescription = normalize.Shape("", normalize.Cand("Description", normalize.KindText))
	projectYear        = normalize.Shape("", normalize.Cand("Year", normalize.KindNumber))
	projectGithubURL   = normalize.Shape("", normalize.Cand("GitHub", normalize.KindURL))
	projectLiveURL     = normalize.Shape("", normalize.Cand("Live", normalize.KindURL))
	projectPaperURL    = normalize.Shape("", normalize.Cand("Paper", normalize.KindURL))
	projectImage       = normalize.Shape("", normalize.Cand("Image", normalize.KindFiles))
)

// Projects returns the visible projects in explicit display order.
func (s *Service) Projects(ctx context.Context) ([]models.Project, error) {
	pages, err := s.store.Query(ctx, s.dbs.Projects, showFilter, orderAscending)
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}

	projects := make([]models.Project, 0, len(pages))
	for _, page := range pages {
		props := page.Properties
		projects = append(projects, models.Project{
			ID:          page.ID.String(),
			Name:        normalize.Field(props, projectName),
			Description: normalize.Field(props, projectDescription),
			Year:        normalize.Field(props, projectYear),
			GithubURL:   normalize.Field(props, projectGithubURL),
			LiveURL:     normalize.Field(props, projectLiveURL),
			PaperURL:    normalize.Field(props, projectPaperURL),
			Tags:        orEmpty(normalize.Tags(props, "Tags")),
			Image:       normalize.Field(props, projectImage),
		})
	}

	return projects, nil
}
