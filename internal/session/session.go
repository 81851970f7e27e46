// File: internal/session/session.go
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"microblog/internal/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// ErrNotFound 表示該 token 無對應的有效 session（不存在、過期或簽章不符）
var ErrNotFound = errors.New("session not found")

// Session 為登入時寫入的負載，登入後不再更新
// （例如升級管理員後，既有 session 的 IsAdmin 仍為舊值，需重新登入）
type Session struct {
	UserID  int    `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Store 定義 session 操作介面
// Create 回傳不透明 token；Get 以 token 取回負載；Destroy 使 token 立即失效
type Store interface {
	Create(ctx context.Context, sess Session) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
}

type FakeStore struct {
	CreateFn  func(ctx context.Context, sess Session) (string, error)
	GetFn     func(ctx context.Context, token string) (*Session, error)
	DestroyFn func(ctx context.Context, token string) error
}

// Create 執行 Fake 設定或 panic
func (f *FakeStore) Create(ctx context.Context, sess Session) (string, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, sess)
	}
	panic("unexpected Create")
}

// Get 執行 Fake 設定或 panic
func (f *FakeStore) Get(ctx context.Context, token string) (*Session, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, token)
	}
	panic("unexpected Get")
}

// Destroy 執行 Fake 設定或 panic
func (f *FakeStore) Destroy(ctx context.Context, token string) error {
	if f.DestroyFn != nil {
		return f.DestroyFn(ctx, token)
	}
	panic("unexpected Destroy")
}

// newSessionID 用來產生 session ID，測試可覆寫此變數。
var newSessionID = uuid.NewString

type redisStore struct {
	cache  cache.Cache
	secret []byte
	ttl    time.Duration
}

// NewRedisStore 建立 Redis 實作的 session store
// token 格式為 "<id>.<HMAC-SHA256(id)>"，負載以 JSON 存於 "session:<id>"，TTL 到期自動失效
func NewRedisStore(c cache.Cache, secret string, ttl time.Duration) Store {
	return &redisStore{cache: c, secret: []byte(secret), ttl: ttl}
}

func (s *redisStore) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}

// verify 拆解 token 並比對簽章，回傳 session ID
func (s *redisStore) verify(token string) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", ErrNotFound
	}
	if !hmac.Equal([]byte(parts[1]), []byte(s.sign(parts[0]))) {
		return "", ErrNotFound
	}
	return parts[0], nil
}

func (s *redisStore) Create(ctx context.Context, sess Session) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	id := newSessionID()
	if err := s.cache.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	return id + "." + s.sign(id), nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	id, err := s.verify(token)
	if err != nil {
		return nil, err
	}
	data, err := s.cache.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	sess := &Session{}
	if err := json.Unmarshal([]byte(data), sess); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return sess, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	id, err := s.verify(token)
	if err != nil {
		return err
	}
	if err := s.cache.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("Destroy: %w", err)
	}
	return nil
}
