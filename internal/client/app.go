package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/unlock"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
)

type App struct {
	services   *service.ClientServices
	keeper     *unlock.Keeper
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

// NewApp assembles the client runtime from its wired dependencies.
func NewApp(services *service.ClientServices, keeper *unlock.Keeper, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || keeper == nil {
		return nil, errors.New("client app requires services and an unlock keeper")
	}

	return &App{
		services:   services,
		keeper:     keeper,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

// Run starts the background workers and blocks until the process receives an
// interrupt. Sections are relocked before exit so no passphrase material
// survives the session.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workers.NewWorkers(
		workers.NewAutoLockWorker(ctx, a.keeper, a.workersCfg.AutoLockInterval, a.logger),
		workers.NewOTPSweepWorker(ctx, a.services.Reset, a.workersCfg.OTPSweepInterval, a.logger),
	).Run()

	a.logger.Info().Msg("document vault client started")

	<-ctx.Done()

	a.keeper.LockAll()
	a.logger.Info().Msg("document vault client stopped")
	return nil
}

// Services exposes the wired client services to embedding frontends.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Keeper exposes the unlock keeper to embedding frontends.
func (a *App) Keeper() *unlock.Keeper {
	return a.keeper
}
