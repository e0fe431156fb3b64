package usecase_outfit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_interface"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

// 相关度打分权重：经验值，当作配置常量维护
const (
	weightCategory  = 2.0
	weightColor     = 1.0
	weightOccasion  = 1.5
	perturbationMax = 2.0
)

const preferenceKeyPrefix = "style_preference:"

type PreferenceUsecase struct {
	catalogRepo outfit_interface.CatalogRepository
	prefRepo    outfit_interface.PreferenceRepository
	timeout     time.Duration

	// rand.Rand非并发安全，打分时串行取样
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPreferenceUsecase(
	catalogRepo outfit_interface.CatalogRepository,
	prefRepo outfit_interface.PreferenceRepository,
	rng *rand.Rand,
	timeout time.Duration,
) *PreferenceUsecase {
	return &PreferenceUsecase{
		catalogRepo: catalogRepo,
		prefRepo:    prefRepo,
		rng:         rng,
		timeout:     timeout,
	}
}

// FilterByPreferences 按偏好做硬过滤
// 全空偏好返回原目录（用户尚未表达偏好时不做过滤）；
// 非空字段之间取AND，字段内取值之间取OR；保持目录原序
func (uc *PreferenceUsecase) FilterByPreferences(
	catalog []outfit_models.OutfitRecord,
	prefs outfit_models.StylePreference,
) []outfit_models.OutfitRecord {
	if prefs.IsEmpty() {
		return catalog
	}

	filtered := make([]outfit_models.OutfitRecord, 0, len(catalog))
	for _, outfit := range catalog {
		if matchesPreferences(outfit, prefs) {
			filtered = append(filtered, outfit)
		}
	}
	return filtered
}

func matchesPreferences(o outfit_models.OutfitRecord, prefs outfit_models.StylePreference) bool {
	if len(prefs.Categories) > 0 && !contains(prefs.Categories, o.Category) {
		return false
	}
	if len(prefs.Colors) > 0 && intersectCount(o.Colors, prefs.Colors) == 0 {
		return false
	}
	if len(prefs.Patterns) > 0 && intersectCount(o.Patterns, prefs.Patterns) == 0 {
		return false
	}
	if len(prefs.Occasions) > 0 && intersectCount(o.Occasions, prefs.Occasions) == 0 {
		return false
	}
	if len(prefs.Brands) > 0 && !contains(prefs.Brands, o.Brand) {
		return false
	}
	if len(prefs.Fit) > 0 && !contains(prefs.Fit, o.Fit) {
		return false
	}
	return true
}

// Rank 按相关度降序排序
// score = 2·[品类命中] + 1·|色彩交集| + 1.5·|场合交集| + random(0,2)
// 随机扰动每次调用重新取样：同输入多次调用近分项顺序不同（保鲜行为，刻意保留）
func (uc *PreferenceUsecase) Rank(
	catalog []outfit_models.OutfitRecord,
	prefs outfit_models.StylePreference,
) []outfit_models.OutfitRecord {
	ranked := make([]outfit_models.OutfitRecord, len(catalog))
	copy(ranked, catalog)

	uc.mu.Lock()
	for i := range ranked {
		score := 0.0
		if contains(prefs.Categories, ranked[i].Category) {
			score += weightCategory
		}
		score += weightColor * float64(intersectCount(ranked[i].Colors, prefs.Colors))
		score += weightOccasion * float64(intersectCount(ranked[i].Occasions, prefs.Occasions))
		score += uc.rng.Float64() * perturbationMax
		ranked[i].Score = score
	}
	uc.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Recommend 加载偏好→取目录→过滤→排序→截断
func (uc *PreferenceUsecase) Recommend(ctx context.Context, userID string, limit int) ([]outfit_models.OutfitRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit参数必须大于0")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	catalog, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取服装目录失败: %w", err)
	}

	prefs := uc.LoadPreference(ctx, userID)
	ranked := uc.Rank(uc.FilterByPreferences(catalog, prefs), prefs)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// SavePreference 归一化后序列化落库
func (uc *PreferenceUsecase) SavePreference(ctx context.Context, userID string, prefs outfit_models.StylePreference) error {
	if userID == "" {
		return fmt.Errorf("user_id参数是必需的")
	}

	prefs.Normalize()
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("序列化偏好记录失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.prefRepo.Set(ctx, preferenceKeyPrefix+userID, string(payload)); err != nil {
		return fmt.Errorf("保存偏好记录失败: %w", err)
	}
	return nil
}

// LoadPreference 读取失败或数据损坏时回落到全空默认记录，不向调用方报错
func (uc *PreferenceUsecase) LoadPreference(ctx context.Context, userID string) outfit_models.StylePreference {
	if userID == "" {
		return outfit_models.EmptyStylePreference()
	}

	value, err := uc.prefRepo.Get(ctx, preferenceKeyPrefix+userID)
	if err != nil {
		log.Printf("读取偏好记录失败，使用默认值: %v", err)
		return outfit_models.EmptyStylePreference()
	}

	var prefs outfit_models.StylePreference
	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		log.Printf("偏好记录损坏，使用默认值: %v", err)
		return outfit_models.EmptyStylePreference()
	}
	prefs.Normalize()
	return prefs
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func intersectCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	count := 0
	for _, v := range a {
		if set[v] {
			count++
		}
	}
	return count
}
