package content_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/require"
)

func TestTweetsDropsRecordsWithNothingToRender(t *testing.T) {
	store := &fakeStore{
		pages: []notionapi.Page{
			page("t1", notionapi.Properties{"Content": titleProp("a post")}),
			page("t2", notionapi.Properties{"Tweet ID": textProp("17290")}),
			page("t3", notionapi.Properties{"Tweet URL": urlProp("https://x.com/u/status/1")}),
		},
	}

	tweets, err := newTestService(store).Tweets(context.Background(), false, 0)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	require.Equal(t, "t1", tweets[0].ID)
	require.Equal(t, "17290", tweets[1].TweetID)
}

func TestTweetsOrderingWithUnsetOrder(t *testing.T) {
	store := &fakeStore{
		pages: []notionapi.Page{
			page("t1", notionapi.Properties{"Content": titleProp("two"), "Order": numberProp(2)}),
			page("t2", notionapi.Properties{"Content": titleProp("unset")}),
			page("t3", notionapi.Properties{"Content": titleProp("one"), "Order": numberProp(1)}),
		},
	}

	tweets, err := newTestService(store).Tweets(context.Background(), false, 0)
	require.NoError(t, err)
	require.Len(t, tweets, 3)
	require.Equal(t, []float64{1, 2, 999}, []float64{tweets[0].Order, tweets[1].Order, tweets[2].Order})
	require.Equal(t, "one", tweets[0].Content)
}

func TestTweetsLimit(t *testing.T) {
	store := &fakeStore{
		pages: []notionapi.Page{
			page("t1", notionapi.Properties{"Content": titleProp("a")}),
			page("t2", notionapi.Properties{"Content": titleProp("b")}),
			page("t3", notionapi.Properties{"Content": titleProp("c")}),
		},
	}

	tweets, err := newTestService(store).Tweets(context.Background(), false, 2)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
}

func TestTweetsFeaturedOnlyFilter(t *testing.T) {
	store := &fakeStore{}

	_, err := newTestService(store).Tweets(context.Background(), true, 0)
	require.NoError(t, err)
	require.Len(t, store.calls, 1)

	and, ok := store.calls[0].filter.(notionapi.AndCompoundFilter)
	require.True(t, ok)
	require.Len(t, and, 2)
	require.Equal(t, "Featured", and[1].(notionapi.PropertyFilter).Property)
}

func TestTweetsQueryError(t *testing.T) {
	store := &fakeStore{queryErrs: []error{errors.New("boom")}}

	_, err := newTestService(store).Tweets(context.Background(), false, 0)
	require.Error(t, err)
}

func TestTweetsTrimsID(t *testing.T) {
	store := &fakeStore{
		pages: []notionapi.Page{
			page("t1", notionapi.Properties{"Tweet ID": textProp("  42  ")}),
		},
	}

	tweets, err := newTestService(store).Tweets(context.Background(), false, 0)
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	require.Equal(t, "42", tweets[0].TweetID)
	require.Equal(t, "2024-01-15T12:00:00Z", tweets[0].Date)
}
