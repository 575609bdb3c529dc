package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"marvel-backend/internal/cache"
	"marvel-backend/internal/utils"
)

const defaultUpstreamTimeout = 10 * time.Second

// UpstreamError - сбой запроса к API каталога. Текст ошибки отдаётся клиенту как есть.
type UpstreamError struct {
	Path string
	Err  error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type CatalogConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// CatalogService проксирует запросы к API каталога и возвращает JSON без изменений.
type CatalogService struct {
	client   *fasthttp.Client
	baseURL  string
	apiKey   string
	timeout  time.Duration
	cache    ResponseCache
	cacheTTL time.Duration
}

func NewCatalogService(client *fasthttp.Client, cfg CatalogConfig) *CatalogService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}

	utils.LogSuccess("CatalogService", fmt.Sprintf("Инициализирован прокси каталога: %s (таймаут: %v)", cfg.BaseURL, timeout))
	return &CatalogService{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
	}
}

func NewCatalogServiceWithCache(client *fasthttp.Client, cfg CatalogConfig, c ResponseCache) *CatalogService {
	s := NewCatalogService(client, cfg)
	s.cache = c
	s.cacheTTL = cfg.CacheTTL
	if s.cacheTTL <= 0 {
		s.cacheTTL = cache.DefaultCatalogTTL
	}
	utils.LogInfo("CatalogService", fmt.Sprintf("Кеш ответов каталога включён (TTL: %v)", s.cacheTTL))
	return s
}

func (s *CatalogService) ListCharacters(ctx context.Context) (json.RawMessage, error) {
	return s.fetch(ctx, "characters")
}

func (s *CatalogService) ListComics(ctx context.Context) (json.RawMessage, error) {
	return s.fetch(ctx, "comics")
}

func (s *CatalogService) GetCharacterByID(ctx context.Context, characterID string) (json.RawMessage, error) {
	return s.fetch(ctx, "character/"+url.PathEscape(characterID))
}

func (s *CatalogService) GetComicsByCharacterID(ctx context.Context, characterID string) (json.RawMessage, error) {
	return s.fetch(ctx, "comics/"+url.PathEscape(characterID))
}

func (s *CatalogService) GetComicByID(ctx context.Context, comicID string) (json.RawMessage, error) {
	return s.fetch(ctx, "comic/"+url.PathEscape(comicID))
}

func (s *CatalogService) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	key := cache.CatalogKey(path)

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		if err == nil {
			utils.LogSuccess("Cache", fmt.Sprintf("HIT: %s", key))
			return json.RawMessage(data), nil
		} else if errors.Is(err, cache.ErrMiss) {
			utils.LogInfo("Cache", fmt.Sprintf("MISS: %s", key))
		} else {
			utils.LogWarning("Cache", fmt.Sprintf("Ошибка чтения из кеша: %v", err))
		}
	}

	body, err := s.get(ctx, path)
	if err != nil {
		utils.LogError("CatalogService", fmt.Sprintf("Ошибка запроса к каталогу /%s", path), err)
		return nil, &UpstreamError{Path: path, Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, body, s.cacheTTL); err != nil {
			utils.LogWarning("Cache", fmt.Sprintf("Не удалось сохранить в кеш: %v", err))
		}
	}

	return json.RawMessage(body), nil
}

func (s *CatalogService) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/%s?apiKey=%s", s.baseURL, path, url.QueryEscape(s.apiKey)))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	startTime := time.Now()
	if err := s.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	status := resp.StatusCode()
	utils.LogDebug("CatalogService", fmt.Sprintf("GET /%s -> %d за %v", path, status, time.Since(startTime)))

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, fmt.Errorf("request failed with status code %d", status)
	}

	raw, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("decode upstream body: %w", err)
	}

	// Тело принадлежит resp и будет переиспользовано после ReleaseResponse.
	body := append([]byte(nil), raw...)
	if !json.Valid(body) {
		return nil, errors.New("upstream returned invalid JSON")
	}

	return body, nil
}
