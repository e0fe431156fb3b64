package repository_outfit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_interface"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

// searchResultItem 搜索后端返回的原始记录
// 字段经常缺失或换名，解析时双名兼容
type searchResultItem struct {
	ID          string   `json:"id"`
	Image       string   `json:"image"`
	ImageURL    string   `json:"image_url"`
	Title       string   `json:"title"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Patterns    []string `json:"patterns"`
	Occasions   []string `json:"occasions"`
	Fit         string   `json:"fit"`
}

type searchResponse struct {
	Outfits []searchResultItem `json:"outfits"`
	Error   string             `json:"error"`
}

type searchRepository struct {
	baseURL string
	client  *http.Client
}

func NewSearchRepository(baseURL string, timeout time.Duration) outfit_interface.SearchRepository {
	return &searchRepository{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *searchRepository) Search(ctx context.Context, query, category string, limit int) ([]outfit_models.OutfitRecord, error) {
	if query == "" {
		return nil, fmt.Errorf("query参数是必需的")
	}
	if limit <= 0 {
		limit = 20
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	if category != "" {
		params.Set("category", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("构建搜索请求失败: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("搜索请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("搜索后端返回状态码 %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析搜索结果失败: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("搜索后端返回错误: %s", payload.Error)
	}

	outfits := make([]outfit_models.OutfitRecord, 0, len(payload.Outfits))
	for _, item := range payload.Outfits {
		outfits = append(outfits, toOutfitRecord(item))
	}
	return outfits, nil
}

func toOutfitRecord(item searchResultItem) outfit_models.OutfitRecord {
	record := outfit_models.OutfitRecord{
		OutfitID:    item.ID,
		ImageRef:    item.Image,
		Title:       item.Title,
		Brand:       item.Brand,
		Description: item.Description,
		Category:    item.Category,
		Colors:      item.Colors,
		Patterns:    item.Patterns,
		Occasions:   item.Occasions,
		Fit:         item.Fit,
	}
	if record.ImageRef == "" {
		record.ImageRef = item.ImageURL
	}
	if record.Title == "" {
		record.Title = item.Name
	}
	outfit_models.ApplySearchDefaults(&record)
	return record
}
