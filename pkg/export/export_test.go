package export

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/deck"
)

// 导出严格按切片顺序出页，position字段不参与排序
func TestGeneratePDFArrayOrder(t *testing.T) {
	slides := []deck.Slide{
		{ID: "c", Type: deck.TypeClosing, Title: "谢谢", Position: 2},
		{ID: "a", Type: deck.TypeTitle, Title: "开场", Position: 0},
		{ID: "b", Type: deck.TypeContent, Title: "要点", Content: deck.TextItems("x"), Position: 1},
	}
	data, err := GeneratePDF(slides, "executive", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 4, bytes.Count(data, []byte("/Type /Page")))
}

// 未知主题时每页都出占位页，导出绝不短路为零输出
func TestGeneratePDFUnknownThemePlaceholders(t *testing.T) {
	slides := []deck.Slide{
		{ID: "a", Type: deck.TypeTitle, Title: "t"},
		{ID: "b", Type: deck.TypeContent, Title: "c", Content: deck.TextItems("x", "y", "z")},
		{ID: "c", Type: deck.TypeClosing, Title: "谢"},
	}
	data, err := GeneratePDF(slides, "doesNotExist", "")
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count(data, []byte("/Type /Page")))
}

func TestGeneratePDFEmptyDeck(t *testing.T) {
	data, err := GeneratePDF(nil, "executive", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestConvertPDFSuccess(t *testing.T) {
	var gotDraftID, gotTitle, gotAuth string
	var gotDocument []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotDraftID = r.FormValue("draftId")
		gotTitle = r.FormValue("title")
		gotAuth = r.Header.Get("Authorization")

		file, _, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		gotDocument, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"downloadUrl":"https://cdn.example.com/deck.pptx","presentation":{"pages":3}}`))
	}))
	defer srv.Close()

	client := NewConverterClient(srv.URL, "secret-token", 10*time.Second)
	result, err := client.ConvertPDF(context.Background(), []byte("%PDF-fake"), "draft-1", "季度汇报")
	require.NoError(t, err)

	assert.Equal(t, "draft-1", gotDraftID)
	assert.Equal(t, "季度汇报", gotTitle)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, []byte("%PDF-fake"), gotDocument)
	assert.Equal(t, "https://cdn.example.com/deck.pptx", result.DownloadURL)
	assert.JSONEq(t, `{"pages":3}`, string(result.Presentation))
}

// 非2xx时必须透出服务端的message原文
func TestConvertPDFErrorMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"LibreOffice worker pool exhausted"}`))
	}))
	defer srv.Close()

	client := NewConverterClient(srv.URL, "", time.Second)
	_, err := client.ConvertPDF(context.Background(), []byte("x"), "d", "t")
	require.Error(t, err)
	assert.EqualError(t, err, "LibreOffice worker pool exhausted")
}

func TestConvertPDFErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewConverterClient(srv.URL, "", time.Second)
	_, err := client.ConvertPDF(context.Background(), []byte("x"), "d", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
