// Package bootstrap собирает клиентский стек: REST-клиент поверх ServerURL
// из конфигурации и кэш с однократной гидрацией.
package bootstrap

import (
	"context"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/cache"
	"CartKeeper/internal/config"
)

// OpenCache создаёт кэш и выполняет начальную загрузку коллекции с сервера.
func OpenCache(ctx context.Context, cfg *config.Config) (*cache.Cache, error) {
	c := cache.New(api.New(cfg.ServerURL))
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
