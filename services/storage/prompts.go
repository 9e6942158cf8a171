// File: services/storage/prompts.go
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const greetingURLKey = "asset:greeting:url"

// PromptStore manages the hosted greeting audio the voice turns Play instead
// of synthesized speech. The resolved URL is cached in Redis so the hot
// webhook path never touches Cloudinary.
type PromptStore struct {
	storage StorageService
	cache   *redis.Client
}

func NewPromptStore(storage StorageService, cache *redis.Client) *PromptStore {
	return &PromptStore{storage: storage, cache: cache}
}

// SetGreeting uploads a greeting audio file and caches its public URL.
func (p *PromptStore) SetGreeting(ctx context.Context, localFilePath string) (string, error) {
	publicID, err := p.storage.UploadFile(ctx, localFilePath, "prompts")
	if err != nil {
		return "", fmt.Errorf("prompt store: upload greeting: %w", err)
	}
	url, err := p.storage.GetDownloadURL(ctx, publicID, 0)
	if err != nil {
		return "", fmt.Errorf("prompt store: resolve greeting URL: %w", err)
	}
	if err := p.cache.Set(ctx, greetingURLKey, url, 0).Err(); err != nil {
		return "", fmt.Errorf("prompt store: cache greeting URL: %w", err)
	}
	return url, nil
}

// GreetingURL returns the cached greeting URL, or "" when none is set.
func (p *PromptStore) GreetingURL(ctx context.Context) string {
	if p == nil || p.cache == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	url, err := p.cache.Get(ctx, greetingURLKey).Result()
	if err != nil {
		// redis.Nil (no greeting configured) and transient errors both
		// degrade to synthesized speech.
		return ""
	}
	return url
}
