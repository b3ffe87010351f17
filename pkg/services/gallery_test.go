package services

import (
	"testing"

	"github.com/autoflowai/autoflow/pkg/catalog"
	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGallery_ListTemplates(t *testing.T) {
	t.Parallel()

	gallery := NewGallery(catalog.DefaultSource())

	tests := []struct {
		name        string
		req         ListTemplatesRequest
		expectErr   error
		expectCount int
		expectFirst string
	}{
		{
			name:        "defaults to popular sort",
			req:         ListTemplatesRequest{},
			expectCount: 9,
			expectFirst: "8", // most recent popular template
		},
		{
			name:        "recent sort",
			req:         ListTemplatesRequest{Sort: models.SortModeRecent},
			expectCount: 9,
			expectFirst: "8", // Jan 22 is newest overall too
		},
		{
			name:        "query filters before sorting",
			req:         ListTemplatesRequest{Query: "lead"},
			expectCount: 1,
			expectFirst: "1",
		},
		{
			name:        "no matches is empty not error",
			req:         ListTemplatesRequest{Query: "zzz"},
			expectCount: 0,
		},
		{
			name:      "invalid sort mode",
			req:       ListTemplatesRequest{Sort: "newest"},
			expectErr: ErrInvalidSortMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := gallery.ListTemplates(tt.req)

			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				assert.True(t, IsValidationError(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectCount, result.TotalCount)
			assert.Len(t, result.Templates, tt.expectCount)

			if tt.expectFirst != "" {
				require.NotEmpty(t, result.Templates)
				assert.Equal(t, tt.expectFirst, result.Templates[0].ID)
			}
		})
	}
}

func TestGallery_FetchByID(t *testing.T) {
	t.Parallel()

	gallery := NewGallery(catalog.DefaultSource())

	template, err := gallery.FetchByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Lead Scoring Automation", template.Title)

	_, err = gallery.FetchByID("no-such-id")
	require.ErrorIs(t, err, ErrTemplateNotFound)
	assert.True(t, IsTemplateNotFound(err))
}

func TestGallery_Preview(t *testing.T) {
	t.Parallel()

	gallery := NewGallery(catalog.DefaultSource())

	preview, err := gallery.Preview("2")
	require.NoError(t, err)

	assert.Equal(t, "2", preview.Template.ID)
	require.NotNil(t, preview.Graph)
	assert.Len(t, preview.Graph.Nodes, 4)
	assert.Len(t, preview.Graph.Edges, 3)

	_, err = gallery.Preview("no-such-id")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
