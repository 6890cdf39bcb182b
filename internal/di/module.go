package di

import (
	"go.uber.org/fx"

	"github.com/fadheel-alt/resi-checker/internal/app"
	"github.com/fadheel-alt/resi-checker/internal/config"
	"github.com/fadheel-alt/resi-checker/internal/logger"
	"github.com/fadheel-alt/resi-checker/internal/server/http/handlers"
	"github.com/fadheel-alt/resi-checker/internal/server/http/router"
	"github.com/fadheel-alt/resi-checker/internal/storage/postgres"
	"github.com/fadheel-alt/resi-checker/internal/usecase"
)

// Module assembles the full application graph. Extra options allow tests
// to replace storage-backed pieces with fakes.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.WarehouseFacade) handlers.WarehouseFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
