package outfit_interface

import "context"

// PreferenceRepository 键值式持久偏好存储
// 仅保证last-write-wins，读取不存在的键返回错误由上层兜底
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
