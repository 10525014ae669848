package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService Redis 缓存服务接口
type InterfaceRedisService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// RedisService 提供 Redis 缓存相关的服务
type RedisService struct {
	Client *redis.Client
	Config *config.Config
}

// NewRedisService 创建一个新的 Redis 服务
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warning("Redis 连接失败，缓存降级为直接查库: %v", err)
	}

	return &RedisService{
		Client: client,
		Config: cfg,
	}
}

// 1 Set 写入缓存，值序列化为 JSON
func (s *RedisService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, data, expiration).Err()
}

// 2 Get 读取缓存并反序列化到 dest，缓存未命中时返回 false
func (s *RedisService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// 3 Delete 删除一个或多个缓存键
func (s *RedisService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(ctx, keys...).Err()
}

// 4 Ping 检查 Redis 连接状态
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
