package usecase_tryon

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_interface"
	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_models"
)

type TryOnUsecase struct {
	generator tryon_interface.GenerationRepository
	tasks     tryon_interface.TryOnTaskRepository
	uploadDir string
	timeout   time.Duration
}

func NewTryOnUsecase(
	generator tryon_interface.GenerationRepository,
	tasks tryon_interface.TryOnTaskRepository,
	uploadDir string,
	timeout time.Duration,
) *TryOnUsecase {
	return &TryOnUsecase{
		generator: generator,
		tasks:     tasks,
		uploadDir: uploadDir,
		timeout:   timeout,
	}
}

// SaveUpload 校验并保存用户照片，返回后续生成调用使用的引用
func (uc *TryOnUsecase) SaveUpload(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("上传内容为空")
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return "", fmt.Errorf("仅支持图片文件")
	}

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	name := uuid.NewString() + "." + kind.Extension
	path := filepath.Join(uc.uploadDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("保存上传文件失败: %w", err)
	}
	return path, nil
}

// Generate 调用第三方试穿服务
// 任何失败（网络、非2xx、载荷不可解析）都替换成按品类固定的兜底效果图，
// 不把失败作为硬错误抛给用户
func (uc *TryOnUsecase) Generate(ctx context.Context, userID string, req tryon_models.TryOnRequest) (tryon_models.TryOnResult, error) {
	if req.HumanImageRef == "" || req.GarmentImageRef == "" {
		return tryon_models.TryOnResult{}, fmt.Errorf("human_image_ref和garment_image_ref参数都是必需的")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	result := tryon_models.TryOnResult{
		TaskID: uuid.NewString(),
		Status: tryon_models.StatusCompleted,
	}

	resultRef, err := uc.generator.Generate(ctx, req.HumanImageRef, req.GarmentImageRef)
	if err != nil {
		log.Printf("试穿生成失败，替换兜底效果图: %v", err)
		result.ResultRef = tryon_models.FallbackImageFor(req.Category)
		result.Fallback = true
	} else {
		result.ResultRef = resultRef
	}

	uc.persistTask(userID, req, result)
	return result, nil
}

// GetHistory 用户试穿历史，按时间倒序
func (uc *TryOnUsecase) GetHistory(ctx context.Context, userID string, limit int64) ([]tryon_models.TryOnTask, error) {
	if uc.tasks == nil {
		return []tryon_models.TryOnTask{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	tasks, err := uc.tasks.GetByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("获取试穿历史失败: %w", err)
	}
	return tasks, nil
}

func (uc *TryOnUsecase) persistTask(userID string, req tryon_models.TryOnRequest, result tryon_models.TryOnResult) {
	if uc.tasks == nil {
		return
	}
	task := &tryon_models.TryOnTask{
		TaskID:          result.TaskID,
		UserID:          userID,
		HumanImageRef:   req.HumanImageRef,
		GarmentImageRef: req.GarmentImageRef,
		ResultRef:       result.ResultRef,
		Status:          result.Status,
		Fallback:        result.Fallback,
		CreatedAt:       time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.tasks.Save(ctx, task); err != nil {
			log.Printf("试穿任务落库失败: %v", err)
		}
	}()
}
