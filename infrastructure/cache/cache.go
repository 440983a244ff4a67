package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cache guarda as projeções de leitura do dashboard por conta.
// Falhas de cache nunca devem impedir a leitura do banco.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Get decodifica o valor em dest e informa se a chave existia
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// InvalidateAccount remove todas as projeções da conta
	InvalidateAccount(ctx context.Context, accountID string) error
	Close() error
}

// Key monta chaves no formato <tipo>:<conta>:<partes...>
func Key(kind, accountID string, parts ...string) string {
	return strings.Join(append([]string{kind, accountID}, parts...), ":")
}

func accountPattern(accountID string) string {
	return fmt.Sprintf("*:%s:*", accountID)
}

// Noop é usado quando REDIS_URL não está configurada
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) InvalidateAccount(context.Context, string) error       { return nil }
func (Noop) Close() error                                          { return nil }
