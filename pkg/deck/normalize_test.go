package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItem(t *testing.T, raw string) ContentItem {
	t.Helper()
	var item ContentItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	return item
}

func TestRenderItemText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"纯文本", `"Hello"`, "Hello"},
		{"数字", `42`, "42"},
		{"布尔", `true`, "true"},
		{"null为空", `null`, ""},
		{"标题加要点", `{"title":"Risks","points":["A","B"]}`, "Risks: A, B"},
		{"无标题要点", `{"points":["A","B","C"]}`, "A, B, C"},
		{"标题加描述", `{"title":"背景","description":"项目概况"}`, "背景: 项目概况"},
		{"仅标题", `{"title":"背景"}`, "背景"},
		{"仅描述", `{"description":"项目概况"}`, "项目概况"},
		{"时间轴", `{"year":"2020","event":"Launch"}`, "2020 — Launch"},
		{"对比行", `{"aspect":"Battery","samsung":"5000mAh","apple":"4300mAh"}`, "Battery: 5000mAh vs 4300mAh"},
		{"无aspect对比行", `{"samsung":"5000mAh","apple":"4300mAh"}`, "5000mAh vs 4300mAh"},
		{"仅aspect", `{"aspect":"Battery"}`, "Battery"},
		{"未识别形状", `{"foo":{"bar":1}}`, `{"foo":{"bar":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := decodeItem(t, tt.raw)
			assert.Equal(t, tt.want, RenderItemText(item))
		})
	}
}

// 零值条目不应让布局层崩溃
func TestRenderItemTextZeroValues(t *testing.T) {
	assert.Equal(t, "", RenderItemText(ContentItem{}))
	assert.Equal(t, "", RenderItemText(ContentItem{Kind: KindSection}))
	assert.Equal(t, "", RenderItemText(ContentItem{Kind: KindTimeline}))
	assert.Equal(t, "", RenderItemText(ContentItem{Kind: KindComparison}))
	assert.Equal(t, "", RenderItemText(ContentItem{Kind: KindOpaque}))
}

func TestRenderItems(t *testing.T) {
	items := []ContentItem{
		TextItem("a"),
		SectionItem(Section{Title: "b", Points: []string{"c"}}),
	}
	assert.Equal(t, []string{"a", "b: c"}, RenderItems(items))
}
