package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSlides(ids ...string) []Slide {
	slides := make([]Slide, 0, len(ids))
	for i, id := range ids {
		slides = append(slides, Slide{ID: id, Type: TypeContent, Position: i})
	}
	return slides
}

func assertPositions(t *testing.T, slides []Slide) {
	t.Helper()
	for i, s := range slides {
		assert.Equal(t, i, s.Position, "slide %s", s.ID)
	}
}

func TestInsertAt(t *testing.T) {
	slides := makeSlides("a", "b", "c")

	result := InsertAt(slides, Slide{ID: "x"}, 1)
	require.Len(t, result, 4)
	assert.Equal(t, "x", result[1].ID)
	assertPositions(t, result)

	// 越界位置收敛到两端
	result = InsertAt(slides, Slide{ID: "y"}, -5)
	assert.Equal(t, "y", result[0].ID)
	assertPositions(t, result)

	result = InsertAt(slides, Slide{ID: "z"}, 99)
	assert.Equal(t, "z", result[len(result)-1].ID)
	assertPositions(t, result)
}

func TestRemoveByID(t *testing.T) {
	slides := makeSlides("a", "b", "c")

	result, ok := RemoveByID(slides, "b")
	assert.True(t, ok)
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
	assertPositions(t, result)

	_, ok = RemoveByID(slides, "missing")
	assert.False(t, ok)
}

func TestReorder(t *testing.T) {
	slides := makeSlides("a", "b", "c")

	result, err := Reorder(slides, []string{"c", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "c", result[0].ID)
	assert.Equal(t, "a", result[1].ID)
	assert.Equal(t, "b", result[2].ID)
	assertPositions(t, result)

	_, err = Reorder(slides, []string{"a", "b"})
	assert.Error(t, err)

	_, err = Reorder(slides, []string{"a", "b", "missing"})
	assert.Error(t, err)

	_, err = Reorder(slides, []string{"a", "a", "b"})
	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	slides := makeSlides("a", "b")

	s, ok := FindByID(slides, "b")
	require.True(t, ok)
	assert.Equal(t, "b", s.ID)

	// 返回的是切片内元素的指针，可原地修改
	s.Title = "changed"
	assert.Equal(t, "changed", slides[1].Title)

	_, ok = FindByID(slides, "missing")
	assert.False(t, ok)
}

func TestDefaultSlide(t *testing.T) {
	for _, typ := range AllTypes {
		s := DefaultSlide("id-1", typ, 3)
		assert.Equal(t, "id-1", s.ID)
		assert.Equal(t, typ, s.Type)
		assert.Equal(t, 3, s.Position)
		assert.NotEmpty(t, s.Title)
	}

	s := DefaultSlide("id-2", TypeStats, 0)
	assert.Len(t, s.Stats, 3)
	s = DefaultSlide("id-3", TypeQuote, 0)
	require.NotNil(t, s.Quote)
	assert.NotEmpty(t, s.Quote.Text)
}
