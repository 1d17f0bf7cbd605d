package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/util"
)

// Client 调用外部AI起草服务生成整套幻灯片
type Client struct {
	baseUrl    string
	apiSecret  string
	httpClient *http.Client
}

func NewClient(baseUrl, apiSecret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseUrl:    baseUrl,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type GenerateRequest struct {
	Topic      string `json:"topic"`
	Language   string `json:"language"`
	SlideCount int    `json:"slideCount"`
}

// GenerateSlides 生成幻灯片序列，返回服务建议的标题与各页内容
func (c *Client) GenerateSlides(ctx context.Context, request *GenerateRequest) (string, []deck.Slide, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseUrl+"/generate", bytes.NewReader(body))
	if err != nil {
		logger.Error("创建请求失败", logger.F("err", err))
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiSecret != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("请求失败", logger.F("err", err))
		return "", nil, err
	}
	defer resp.Body.Close()

	response := gjson.Parse(readAll(resp))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := response.Get("message").String()
		if message == "" {
			message = fmt.Sprintf("生成服务返回状态码 %d", resp.StatusCode)
		}
		logger.Error("生成幻灯片失败",
			logger.F("status", resp.StatusCode),
			logger.F("message", message),
		)
		return "", nil, fmt.Errorf("%s", message)
	}

	title := response.Get("title").String()
	var slides []deck.Slide
	for _, item := range response.Get("slides").Array() {
		var slide deck.Slide
		if err := json.Unmarshal([]byte(item.Raw), &slide); err != nil {
			logger.Error("解析幻灯片失败", logger.F("err", err))
			return "", nil, err
		}
		if !slide.Type.Valid() {
			slide.Type = deck.TypeContent
		}
		slide.ID = util.NewSlideID()
		slides = append(slides, slide)
	}
	deck.NormalizePositions(slides)
	return title, slides, nil
}

func readAll(resp *http.Response) string {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		logger.Error("读取响应失败", logger.F("err", err))
		return ""
	}
	return buf.String()
}
