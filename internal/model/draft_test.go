package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/deck"
)

func TestDraftSlidesRoundTrip(t *testing.T) {
	draft := &Draft{Title: "季度汇报", ThemeSlug: "executive"}

	slides := []deck.Slide{
		{ID: "a", Type: deck.TypeTitle, Title: "季度汇报", Position: 5},
		{ID: "b", Type: deck.TypeContent, Title: "要点", Content: deck.TextItems("增长", "风险"), Position: 9},
	}
	require.NoError(t, draft.SetSlides(slides))

	decoded, err := draft.DecodeSlides()
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	// 写入时位置已重排
	assert.Equal(t, 0, decoded[0].Position)
	assert.Equal(t, 1, decoded[1].Position)
	assert.Equal(t, "季度汇报", decoded[0].Title)
	assert.Len(t, decoded[1].Content, 2)
}

func TestDraftDecodeEmpty(t *testing.T) {
	draft := &Draft{}
	slides, err := draft.DecodeSlides()
	require.NoError(t, err)
	assert.Nil(t, slides)
}

func TestDraftDecodeInvalid(t *testing.T) {
	draft := &Draft{Slides: []byte(`{not json`)}
	_, err := draft.DecodeSlides()
	assert.Error(t, err)
}
