// Package notion wraps the Notion SDK with the narrow read-only surface the
// resolvers consume: one database query, child-block listing, and a single
// record fetch. No cursor following happens here; every call maps to exactly
// one round-trip to the store.
package notion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jomei/notionapi"
)

// Client wraps the Notion API client with project helpers.
type Client struct {
	api *notionapi.Client
	log *slog.Logger
}

// New instantiates the store client. An empty token is tolerated with a
// warning so the service can still start and degrade per resolver policy.
func New(token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if token == "" {
		logger.Warn("NOTION_TOKEN is not set, store calls will fail")
	}

	return &Client{
		api: notionapi.NewClient(notionapi.Token(token)),
		log: logger,
	}
}

// Query runs one database query. The filter may reference properties absent
// from the live schema, in which case the store rejects the call; callers
// own the fallback chain.
func (c *Client) Query(ctx context.Context, databaseID string, filter notionapi.Filter, sorts []notionapi.SortObject) ([]notionapi.Page, error) {
	qid := uuid.NewString()
	start := time.Now()

	resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
		Filter: filter,
		Sorts:  sorts,
	})
	if err != nil {
		c.log.Debug("database query failed",
			slog.String("query_id", qid),
			slog.String("database", databaseID),
			slog.Any("err", err),
		)
		return nil, fmt.Errorf("query database %s: %w", databaseID, err)
	}

	c.log.Debug("database query",
		slog.String("query_id", qid),
		slog.String("database", databaseID),
		slog.Int("results", len(resp.Results)),
		slog.Duration("took", time.Since(start)),
	)

	return resp.Results, nil
}

// GetChildBlocks lists the content blocks of one record in store order.
func (c *Client) GetChildBlocks(ctx context.Context, pageID string) ([]notionapi.Block, error) {
	resp, err := c.api.Block.GetChildren(ctx, notionapi.BlockID(pageID), &notionapi.Pagination{PageSize: 100})
	if err != nil {
		return nil, fmt.Errorf("get blocks of %s: %w", pageID, err)
	}
	return resp.Results, nil
}

// GetRecord fetches a single record by identifier.
func (c *Client) GetRecord(ctx context.Context, pageID string) (*notionapi.Page, error) {
	page, err := c.api.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return nil, fmt.Errorf("get page %s: %w", pageID, err)
	}
	return page, nil
}
