package content_test

import (
	"context"
	"sync"
	"time"

	"github.com/jomei/notionapi"

	"github.com/avasin/notion-folio/backend/internal/config"
	"github.com/avasin/notion-folio/backend/internal/content"
)

var testDatabases = config.Databases{
	Blog:       "blog-db",
	Reading:    "reading-db",
	Projects:   "projects-db",
	Experience: "experience-db",
	Quotes:     "quotes-db",
	Settings:   "settings-db",
	Tweets:     "tweets-db",
}

type queryCall struct {
	database string
	filter   notionapi.Filter
}

// fakeStore scripts the external content store: the i-th query call fails
// with queryErrs[i] when set, otherwise returns pages.
type fakeStore struct {
	mu        sync.Mutex
	pages     []notionapi.Page
	queryErrs []error
	calls     []queryCall

	record    *notionapi.Page
	recordErr error

	blocks    []notionapi.Block
	blocksErr error
}

func (f *fakeStore) Query(ctx context.Context, databaseID string, filter notionapi.Filter, sorts []notionapi.SortObject) ([]notionapi.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := len(f.calls)
	f.calls = append(f.calls, queryCall{database: databaseID, filter: filter})
	if idx < len(f.queryErrs) && f.queryErrs[idx] != nil {
		return nil, f.queryErrs[idx]
	}
	return f.pages, nil
}

func (f *fakeStore) GetChildBlocks(ctx context.Context, pageID string) ([]notionapi.Block, error) {
	if f.blocksErr != nil {
		return nil, f.blocksErr
	}
	return f.blocks, nil
}

func (f *fakeStore) GetRecord(ctx context.Context, pageID string) (*notionapi.Page, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	return f.record, nil
}

func newTestService(store *fakeStore) *content.Service {
	return newTestServiceWith(store)
}

func newTestServiceWith(store content.Store) *content.Service {
	return content.NewService(store, testDatabases, nil)
}

var testCreated = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func page(id string, props notionapi.Properties) notionapi.Page {
	return notionapi.Page{
		ID:          notionapi.ObjectID(id),
		CreatedTime: testCreated,
		URL:         "https://www.notion.so/" + id,
		Properties:  props,
	}
}

func rich(parts ...string) []notionapi.RichText {
	rt := make([]notionapi.RichText, 0, len(parts))
	for _, p := range parts {
		rt = append(rt, notionapi.RichText{PlainText: p})
	}
	return rt
}

func titleProp(text string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{Title: rich(text)}
}

func textProp(text string) *notionapi.RichTextProperty {
	return &notionapi.RichTextProperty{RichText: rich(text)}
}

func checkProp(v bool) *notionapi.CheckboxProperty {
	return &notionapi.CheckboxProperty{Checkbox: v}
}

func numberProp(v float64) *notionapi.NumberProperty {
	return &notionapi.NumberProperty{Number: v}
}

func urlProp(u string) *notionapi.URLProperty {
	return &notionapi.URLProperty{URL: u}
}

func selectProp(name string) *notionapi.SelectProperty {
	return &notionapi.SelectProperty{Select: notionapi.Option{Name: name}}
}

func multiProp(names ...string) *notionapi.MultiSelectProperty {
	opts := make([]notionapi.Option, 0, len(names))
	for _, n := range names {
		opts = append(opts, notionapi.Option{Name: n})
	}
	return &notionapi.MultiSelectProperty{MultiSelect: opts}
}

func filesProp(url string) *notionapi.FilesProperty {
	return &notionapi.FilesProperty{
		Files: []notionapi.File{{External: &notionapi.FileObject{URL: url}}},
	}
}
