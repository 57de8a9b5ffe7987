package content_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/require"
)

func TestExperienceMapping(t *testing.T) {
	store := &fakeStore{
		pages: []notionapi.Page{
			page("e1", notionapi.Properties{
				"Role":        titleProp("Backend Engineer"),
				"Company":     textProp("Acme"),
				"Dates":       textProp("2021 — 2024"),
				"Location":    textProp("Berlin"),
				"Description": textProp("Built the content pipeline."),
			}),
			page("e2", notionapi.Properties{}),
		},
	}

	experiences, err := newTestService(store).Experience(context.Background())
	require.NoError(t, err)
	require.Len(t, experiences, 2)

	first := experiences[0]
	require.Equal(t, "Backend Engineer", first.Role)
	require.Equal(t, "Acme", first.Company)
	require.Equal(t, "2021 — 2024", first.Dates)
	require.Equal(t, "Berlin", first.Location)
	require.Equal(t, "Built the content pipeline.", first.Description)

	// A record with every property missing still maps, all empty.
	require.Empty(t, experiences[1].Role)
	require.Empty(t, experiences[1].Company)
}

func TestExperienceQueryError(t *testing.T) {
	store := &fakeStore{queryErrs: []error{errors.New("boom")}}

	_, err := newTestService(store).Experience(context.Background())
	require.Error(t, err)
}
