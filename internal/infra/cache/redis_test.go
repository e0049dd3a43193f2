package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/mysavings/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if client.Options().Addr != mr.Addr() {
		t.Errorf("expected addr %s, got %s", mr.Addr(), client.Options().Addr)
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient(&config.RedisConfig{URL: "not a url"}); err == nil {
		t.Error("expected an error for an invalid url")
	}
}
