package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentItemDecodePriority(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ItemKind
	}{
		{"字符串", `"hi"`, KindText},
		{"数字", `3.14`, KindText},
		{"null", `null`, KindEmpty},
		{"points优先于year", `{"year":"2020","event":"x","points":["a"]}`, KindSection},
		{"时间轴", `{"year":"2020","event":"x"}`, KindTimeline},
		{"空event不算时间轴", `{"year":"2020","event":""}`, KindComparison},
		{"title退化为Section", `{"title":"t"}`, KindSection},
		{"aspect压过title", `{"aspect":"a","title":"t"}`, KindComparison},
		{"空points数组继续向下判定", `{"points":[],"title":"t"}`, KindSection},
		{"扁平标量对象", `{"left":"a","right":"b"}`, KindComparison},
		{"嵌套对象不可识别", `{"foo":{"bar":1}}`, KindOpaque},
		{"数组不可识别", `[1,2,3]`, KindOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := decodeItem(t, tt.raw)
			assert.Equal(t, tt.kind, item.Kind)
		})
	}
}

// 对比行的列顺序必须跟随JSON文档顺序而非字典序
func TestComparisonColumnOrder(t *testing.T) {
	item := decodeItem(t, `{"aspect":"价格","zebra":"低","alpha":"高"}`)
	require.Equal(t, KindComparison, item.Kind)
	require.Len(t, item.Comparison.Columns, 2)
	assert.Equal(t, "zebra", item.Comparison.Columns[0].Key)
	assert.Equal(t, "alpha", item.Comparison.Columns[1].Key)
	assert.Equal(t, "价格: 低 vs 高", RenderItemText(item))
}

// 解码后再编码必须保留原始字节，编辑往返不丢字段
func TestContentItemRoundTrip(t *testing.T) {
	raws := []string{
		`"hello"`,
		`{"title":"t","points":["a","b"],"extra":"kept"}`,
		`{"year":"2020","event":"launch","note":"kept"}`,
	}
	for _, raw := range raws {
		item := decodeItem(t, raw)
		out, err := json.Marshal(item)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}
}

// 程序内构造的对比行按列序回写
func TestMarshalConstructedComparison(t *testing.T) {
	item := ComparisonItem("续航",
		ComparisonColumn{Key: "b", Value: "1"},
		ComparisonColumn{Key: "a", Value: "2"},
	)
	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t, `{"aspect":"续航","b":"1","a":"2"}`, string(out))
}

func TestSlideDecode(t *testing.T) {
	raw := `{
		"id": "s1",
		"type": "content",
		"title": "要点",
		"content": ["a", {"title":"b","points":["c"]}],
		"position": 0
	}`
	var s Slide
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, TypeContent, s.Type)
	require.Len(t, s.Content, 2)
	assert.Equal(t, KindText, s.Content[0].Kind)
	assert.Equal(t, KindSection, s.Content[1].Kind)
}
