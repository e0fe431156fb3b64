package repository_tryon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_interface"
)

// ErrUnusableResponse 生成服务返回了所有已知形状都解析不出结果图的载荷
var ErrUnusableResponse = errors.New("试穿服务返回了无法解析的结果")

type generationRepository struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewGenerationRepository(endpoint, apiKey string, timeout time.Duration) tryon_interface.GenerationRepository {
	return &generationRepository{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (r *generationRepository) Generate(ctx context.Context, humanImageRef, garmentImageRef string) (string, error) {
	body := map[string]string{
		"human_image":   humanImageRef,
		"garment_image": garmentImageRef,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("构建生成请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("构建生成请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("生成请求失败: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取生成响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("生成服务返回状态码 %d: %w", resp.StatusCode, ErrUnusableResponse)
	}

	return ParseResultRef(raw)
}

// shapeParser 单个已知响应形状的解析器；ok为false表示形状不匹配
type shapeParser func(raw []byte) (string, bool)

// 不同托管服务商的响应形状，按优先级排列
var shapeParsers = []shapeParser{
	parseResultURL,
	parseOutputImageURL,
	parseImagesArray,
	parseDataArray,
}

// ParseResultRef 依次尝试各已知形状，全部不匹配时报ErrUnusableResponse
func ParseResultRef(raw []byte) (string, error) {
	for _, parse := range shapeParsers {
		if ref, ok := parse(raw); ok {
			return ref, nil
		}
	}
	return "", ErrUnusableResponse
}

func parseResultURL(raw []byte) (string, bool) {
	var v struct {
		ResultURL string `json:"result_url"`
	}
	if err := json.Unmarshal(raw, &v); err != nil || v.ResultURL == "" {
		return "", false
	}
	return v.ResultURL, true
}

func parseOutputImageURL(raw []byte) (string, bool) {
	var v struct {
		Output struct {
			ImageURL string `json:"image_url"`
		} `json:"output"`
	}
	if err := json.Unmarshal(raw, &v); err != nil || v.Output.ImageURL == "" {
		return "", false
	}
	return v.Output.ImageURL, true
}

func parseImagesArray(raw []byte) (string, bool) {
	var v struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(raw, &v); err != nil || len(v.Images) == 0 || v.Images[0] == "" {
		return "", false
	}
	return v.Images[0], true
}

func parseDataArray(raw []byte) (string, bool) {
	var v struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &v); err != nil || len(v.Data) == 0 || v.Data[0].URL == "" {
		return "", false
	}
	return v.Data[0].URL, true
}
