package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jomei/notionapi"

	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/normalize"
)

var (
	postTitle = normalize.Shape("Untitled",
		normalize.Cand("Title", normalize.KindTitle),
		normalize.Cand("Name", normalize.KindTitle),
		normalize.Cand("Post Title", normalize.KindTitle),
	)
	postExcerpt = normalize.Shape("",
		normalize.Cand("Excerpt", normalize.KindText),
		normalize.Cand("Summary", normalize.KindText),
		normalize.Cand("Description", normalize.KindText),
		normalize.Cand("Preview", normalize.KindText),
	)
	postSlug = normalize.Shape("",
		normalize.Cand("Slug", normalize.KindText),
		normalize.Cand("URL", normalize.KindText),
	)
	postDate = normalize.Shape("",
		normalize.Cand("Date", normalize.KindDate),
		normalize.Cand("Published", normalize.KindDate),
		normalize.Cand("Publish Date", normalize.KindDate),
	)
	postStatus = normalize.Shape("",
		normalize.Cand("Status", normalize.KindSelect),
		normalize.Cand("Status", normalize.KindStatus),
	)
)

// isPublished is the visibility rule for blog records: a published status
// value (select- or status-typed), or either opt-in checkbox.
func isPublished(props notionapi.Properties) bool {
	if normalize.Field(props, postStatus) == publishedSentinel {
		return true
	}
	return normalize.Checked(props, "Published", "Show")
}

// blogFilters is the fixed three-tier degrade order for the listing query:
// status-as-select, then status-as-status, then no filter at all.
func blogFilters() []notionapi.Filter {
	published := notionapi.PropertyFilter{
		Property: "Status",
		Select:   &notionapi.SelectFilterCondition{Equals: publishedSentinel},
	}
	publishedStatus := notionapi.PropertyFilter{
		Property: "Status",
		Status:   &notionapi.StatusFilterCondition{Equals: publishedSentinel},
	}
	return []notionapi.Filter{
		notionapi.AndCompoundFilter{published, showFilter},
		notionapi.AndCompoundFilter{publishedStatus, showFilter},
		nil,
	}
}

// BlogPosts returns the published posts, newest first.
func (s *Service) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	pages, storeFiltered, err := s.queryBlog(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog posts: %w", err)
	}

	posts := make([]models.BlogPost, 0, len(pages))
	for _, page := range pages {
		posts = append(posts, normalizeBlogPost(page))
	}

	published := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Published {
			published = append(published, post)
		}
	}

	// Display-something policy: with no store-level filter in effect and
	// nothing passing the visibility rule, show everything rather than an
	// empty page. Can mask an all-unpublished database; intentional.
	if len(published) == 0 && !storeFiltered {
		return posts, nil
	}

	return published, nil
}

func (s *Service) queryBlog(ctx context.Context) ([]notionapi.Page, bool, error) {
	var lastErr error
	for _, filter := range blogFilters() {
		pages, err := s.store.Query(ctx, s.dbs.Blog, filter, createdDescending)
		if err != nil {
			lastErr = err
			s.log.Warn("blog query failed, degrading filter", slog.Any("err", err))
			continue
		}
		return pages, filter != nil, nil
	}
	return nil, false, lastErr
}

func normalizeBlogPost(page notionapi.Page) models.BlogPost {
	props := page.Properties

	slug := normalize.Field(props, postSlug)
	if slug == "" {
		slug = page.ID.String()
	}

	date := normalize.Field(props, postDate)
	if date == "" {
		date = page.CreatedTime.UTC().Format(time.RFC3339)
	}

	return models.BlogPost{
		ID:        page.ID.String(),
		Title:     normalize.Field(props, postTitle),
		Excerpt:   normalize.Field(props, postExcerpt),
		Slug:      slug,
		Tags:      orEmpty(normalize.Tags(props, "Tags", "Category", "Categories")),
		Date:      date,
		Published: isPublished(props),
	}
}

// BlogPost fetches one post with its rendered body. A record that cannot be
// retrieved maps to models.ErrNotFound.
func (s *Service) BlogPost(ctx context.Context, id string) (*models.BlogPostDetail, error) {
	page, err := s.store.GetRecord(ctx, id)
	if err != nil {
		s.log.Warn("blog post lookup failed", slog.String("id", id), slog.Any("err", err))
		return nil, fmt.Errorf("blog post %s: %w", id, models.ErrNotFound)
	}

	blocks, err := s.store.GetChildBlocks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog post %s blocks: %w", id, err)
	}

	props := page.Properties

	date := normalize.Field(props, postDate)
	if date == "" {
		date = page.CreatedTime.UTC().Format(time.RFC3339)
	}

	return &models.BlogPostDetail{
		ID:      page.ID.String(),
		Title:   normalize.Field(props, postTitle),
		Excerpt: normalize.Field(props, postExcerpt),
		Content: normalize.RenderBlocks(blocks),
		Tags:    orEmpty(normalize.Tags(props, "Tags", "Categories")),
		Date:    date,
	}, nil
}
