package content

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/avasin/notion-folio/backend/internal/models"
)

// Home assembles every landing-page section. The fetches run concurrently
// with no ordering dependency; a failed section is logged and left at its
// zero value so the rest still renders. Home itself never fails.
func (s *Service) Home(ctx context.Context, tweetLimit int) models.Home {
	var home models.Home

	var g errgroup.Group

	g.Go(func() error {
		settings, err := s.Settings(ctx)
		if err != nil {
			s.log.Warn("home: settings section degraded", slog.Any("err", err))
			return nil
		}
		home.Settings = settings
		return nil
	})

	g.Go(func() error {
		projects, err := s.Projects(ctx)
		if err != nil {
			s.log.Warn("home: projects section degraded", slog.Any("err", err))
			return nil
		}
		home.Projects = projects
		return nil
	})

	g.Go(func() error {
		experiences, err := s.Experience(ctx)
		if err != nil {
			s.log.Warn("home: experience section degraded", slog.Any("err", err))
			return nil
		}
		home.Experiences = experiences
		return nil
	})

	g.Go(func() error {
		posts, err := s.BlogPosts(ctx)
		if err != nil {
			s.log.Warn("home: blog section degraded", slog.Any("err", err))
			return nil
		}
		home.Posts = posts
		return nil
	})

	g.Go(func() error {
		books, err := s.ReadingList(ctx)
		if err != nil {
			s.log.Warn("home: reading section degraded", slog.Any("err", err))
			return nil
		}
		home.Books = books
		return nil
	})

	g.Go(func() error {
		quotes, featured := s.Quotes(ctx)
		home.Quotes = quotes
		home.Featured = &featured
		return nil
	})

	g.Go(func() error {
		tweets, err := s.Tweets(ctx, false, tweetLimit)
		if err != nil {
			s.log.Warn("home: tweets section degraded", slog.Any("err", err))
			return nil
		}
		home.Tweets = tweets
		return nil
	})

	_ = g.Wait()

	return home
}
