package aigen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/deck"
)

func TestGenerateSlides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "年度总结", req.Topic)
		assert.Equal(t, "zh", req.Language)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "2026年度总结",
			"slides": [
				{"type": "title", "title": "2026年度总结", "subtitle": "回顾与展望"},
				{"type": "content", "title": "要点", "content": ["增长", "挑战"]},
				{"type": "unknown_layout", "title": "兜底"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)
	title, slides, err := client.GenerateSlides(context.Background(), &GenerateRequest{
		Topic:    "年度总结",
		Language: "zh",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026年度总结", title)
	require.Len(t, slides, 3)

	assert.Equal(t, deck.TypeTitle, slides[0].Type)
	assert.Equal(t, "回顾与展望", slides[0].Subtitle)
	assert.Equal(t, deck.TypeContent, slides[1].Type)

	// 未知布局类型降级为content
	assert.Equal(t, deck.TypeContent, slides[2].Type)

	// 服务端ID不可信，本地重新生成且位置连续
	for i, s := range slides {
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, i, s.Position)
	}
}

func TestGenerateSlidesErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message": "模型服务不可用"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, _, err := client.GenerateSlides(context.Background(), &GenerateRequest{Topic: "x"})
	require.Error(t, err)
	assert.EqualError(t, err, "模型服务不可用")
}

func TestGenerateSlidesStatusFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, _, err := client.GenerateSlides(context.Background(), &GenerateRequest{Topic: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
