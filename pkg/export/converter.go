package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/yockii/deck_tools/pkg/logger"
)

// ConvertResult 转换服务的成功响应
type ConvertResult struct {
	DownloadURL  string
	Presentation []byte
}

// ConverterClient 调用外部文档转换服务，把PDF转成演示文稿格式。
// 转换是慢操作，超时放宽到分钟级。
type ConverterClient struct {
	baseUrl    string
	apiSecret  string
	httpClient *http.Client
}

func NewConverterClient(baseUrl, apiSecret string, timeout time.Duration) *ConverterClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &ConverterClient{
		baseUrl:   baseUrl,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ConvertPDF 上传PDF并等待转换完成。非2xx时原样透出服务端的
// message字段，调用方看到的是服务的真实报错而非笼统失败。
func (c *ConverterClient) ConvertPDF(ctx context.Context, pdf []byte, draftID, title string) (*ConvertResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("document", "presentation.pdf")
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(pdf); err != nil {
		return nil, err
	}
	if err = writer.WriteField("draftId", draftID); err != nil {
		return nil, err
	}
	if err = writer.WriteField("title", title); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseUrl+"/convert", &body)
	if err != nil {
		logger.Error("创建转换请求失败", logger.F("err", err))
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiSecret != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("转换请求失败", logger.F("draftID", draftID), logger.F("err", err))
		return nil, err
	}
	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("读取转换响应失败", logger.F("err", err))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := gjson.GetBytes(response, "message").String()
		if message == "" {
			message = fmt.Sprintf("转换服务返回状态码 %d", resp.StatusCode)
		}
		logger.Error("转换服务报错",
			logger.F("draftID", draftID),
			logger.F("status", resp.StatusCode),
			logger.F("message", message))
		return nil, fmt.Errorf("%s", message)
	}

	j := gjson.ParseBytes(response)
	result := &ConvertResult{
		DownloadURL: j.Get("downloadUrl").String(),
	}
	if presentation := j.Get("presentation"); presentation.Exists() {
		result.Presentation = []byte(presentation.Raw)
	}
	return result, nil
}
