package pptgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/theme"
)

func readEntry(t *testing.T, r *zip.Reader, name string) string {
	t.Helper()
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("压缩包中缺少 %s", name)
	return ""
}

func TestGenerate(t *testing.T) {
	cfg, ok := theme.Get("executive")
	require.True(t, ok)

	slides := []deck.Slide{
		{ID: "a", Type: deck.TypeTitle, Title: "季度汇报", Subtitle: "2026 Q2"},
		{ID: "b", Type: deck.TypeContent, Title: "要点", Content: deck.TextItems("营收增长", "成本下降")},
		{ID: "c", Type: deck.TypeQuote, Title: "引用", Quote: &deck.Quote{Text: "质量就是生命", Author: "某人"}},
		{ID: "d", Type: deck.TypeClosing, Title: "谢谢"},
	}

	data, err := NewGenerator().Generate(slides, cfg, "季度汇报")
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	// 每页一个slideN.xml加对应rels
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
		"ppt/slides/slide4.xml",
		"ppt/slides/_rels/slide4.xml.rels",
	} {
		readEntry(t, r, name)
	}

	presentation := readEntry(t, r, "ppt/presentation.xml")
	assert.Equal(t, 4, strings.Count(presentation, "<p:sldId "))

	// 标题页带主题主色与标题文本
	slide1 := readEntry(t, r, "ppt/slides/slide1.xml")
	assert.Contains(t, slide1, "季度汇报")
	assert.Contains(t, slide1, "3D2E5C")
	assert.Contains(t, slide1, "Montserrat")

	// 引用页斜体
	slide3 := readEntry(t, r, "ppt/slides/slide3.xml")
	assert.Contains(t, slide3, `i="1"`)
	assert.Contains(t, slide3, "质量就是生命")

	// 主题XML嵌入配色
	themeXML := readEntry(t, r, "ppt/theme/theme1.xml")
	assert.Contains(t, themeXML, "FFD700")
}

func TestGenerateEscapesXML(t *testing.T) {
	cfg, ok := theme.Get("darkModern")
	require.True(t, ok)

	slides := []deck.Slide{
		{ID: "a", Type: deck.TypeContent, Title: "A & B <测试>", Content: deck.TextItems(`"引号"`)},
	}
	data, err := NewGenerator().Generate(slides, cfg, "t")
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	slide1 := readEntry(t, r, "ppt/slides/slide1.xml")
	assert.Contains(t, slide1, "A &amp; B &lt;测试&gt;")
	assert.NotContains(t, slide1, "A & B <测试>")
}

func TestGenerateEmptyDeck(t *testing.T) {
	cfg, ok := theme.Get("executive")
	require.True(t, ok)
	data, err := NewGenerator().Generate(nil, cfg, "空")
	require.NoError(t, err)
	_, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)
}
