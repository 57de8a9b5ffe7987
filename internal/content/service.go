// Package content resolves each portfolio collection from the external
// store into its normalized shape. Every resolver is a stateless
// request/response cycle: query (with fallback where the schema is known to
// drift), normalize per record, apply the category's visibility policy.
package content

import (
	"context"
	"io"
	"log/slog"

	"github.com/jomei/notionapi"

	"github.com/avasin/notion-folio/backend/internal/config"
)

// Store is the read-only contract against the external content store.
type Store interface {
	Query(ctx context.Context, databaseID string, filter notionapi.Filter, sorts []notionapi.SortObject) ([]notionapi.Page, error)
	GetChildBlocks(ctx context.Context, pageID string) ([]notionapi.Block, error)
	GetRecord(ctx context.Context, pageID string) (*notionapi.Page, error)
}

// Service bundles the collection resolvers.
type Service struct {
	store Store
	dbs   config.Databases
	log   *slog.Logger
}

// NewService builds the resolver service.
func NewService(store Store, dbs config.Databases, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, dbs: dbs, log: logger}
}

// publishedSentinel is the status value that marks a record visible.
const publishedSentinel = "Published"

// unsetOrder sorts records without an explicit Order value last.
const unsetOrder = 999

// showFilter selects records with the Show checkbox ticked.
var showFilter = notionapi.PropertyFilter{
	Property: "Show",
	Checkbox: &notionapi.CheckboxFilterCondition{Equals: true},
}

var orderAscending = []notionapi.SortObject{
	{Property: "Order", Direction: notionapi.SortOrderASC},
}

var createdDescending = []notionapi.SortObject{
	{Timestamp: notionapi.TimestampCreated, Direction: notionapi.SortOrderDESC},
}

func orEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
