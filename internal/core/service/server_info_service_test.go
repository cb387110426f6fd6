package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubSettingsRepo struct {
	info  *domain.ServerInfo
	err   error
	calls int
}

func (r *stubSettingsRepo) FindServerInfo(_ context.Context) (*domain.ServerInfo, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.info == nil {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *r.info
	return &clone, nil
}

type stubInfoCache struct {
	stored  *domain.ServerInfo
	getErr  error
	setErr  error
	setCall int
}

func (c *stubInfoCache) Get(_ context.Context) (*domain.ServerInfo, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubInfoCache) Set(_ context.Context, info domain.ServerInfo) error {
	c.setCall++
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = &info
	return nil
}

var testDefaults = domain.ServerInfo{
	WebName:    "Env Name",
	TgChannel:  "@env_channel",
	TgUsername: "@env_owner",
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestServerInfoService_Get_StoredOverridesDefaults(t *testing.T) {
	repo := &stubSettingsRepo{info: &domain.ServerInfo{WebName: "Stored", TgBot: "@stored_bot"}}
	cache := &stubInfoCache{}
	svc := NewServerInfoService(repo, cache, testDefaults, "", zerolog.Nop())

	info, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if info.WebName != "Stored" || info.TgBot != "@stored_bot" || info.TgChannel != "@env_channel" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if cache.setCall != 1 {
		t.Fatalf("expected result cached once, got %d", cache.setCall)
	}
}

func TestServerInfoService_Get_DefaultsWhenNothingStored(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewServerInfoService(repo, nil, testDefaults, "", zerolog.Nop())

	info, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if info != testDefaults {
		t.Fatalf("expected defaults, got %+v", info)
	}
}

func TestServerInfoService_Get_CacheHit(t *testing.T) {
	repo := &stubSettingsRepo{}
	cache := &stubInfoCache{stored: &domain.ServerInfo{WebName: "Cached"}}
	svc := NewServerInfoService(repo, cache, testDefaults, "", zerolog.Nop())

	info, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if info.WebName != "Cached" {
		t.Fatalf("expected cached value, got %+v", info)
	}
	if repo.calls != 0 {
		t.Fatalf("settings must not be read on a cache hit")
	}
}

func TestServerInfoService_Get_CacheFailuresIgnored(t *testing.T) {
	repo := &stubSettingsRepo{}
	cache := &stubInfoCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewServerInfoService(repo, cache, testDefaults, "", zerolog.Nop())

	info, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the call: %v", err)
	}
	if info.WebName != "Env Name" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestServerInfoService_Get_StoreError(t *testing.T) {
	storeErr := errors.New("mongo down")
	repo := &stubSettingsRepo{err: storeErr}
	cache := &stubInfoCache{}
	svc := NewServerInfoService(repo, cache, testDefaults, "", zerolog.Nop())

	if _, err := svc.Get(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if cache.setCall != 0 {
		t.Fatalf("failures must not be cached")
	}
}

func TestServerInfoService_ContactLinks(t *testing.T) {
	repo := &stubSettingsRepo{info: &domain.ServerInfo{WebName: ""}}
	svc := NewServerInfoService(repo, nil, domain.ServerInfo{TgChannel: "@news"}, "Study Hub", zerolog.Nop())

	links, err := svc.ContactLinks(context.Background())
	if err != nil {
		t.Fatalf("ContactLinks returned error: %v", err)
	}
	if links.AppName != "Study Hub" {
		t.Errorf("expected fallback app name, got %q", links.AppName)
	}
	if links.Channel.Href != "https://t.me/news" {
		t.Errorf("unexpected channel link: %+v", links.Channel)
	}
	if links.Bot.Available {
		t.Errorf("bot link must be unavailable")
	}
}
