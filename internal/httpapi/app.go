package httpapi

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studyhub/internal/app"
	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/logging"
)

// App runs the JSON API process.
type App struct {
	core   *app.App
	logger logging.Logger
}

// NewApp opens the store named by c. The API has no interactive prompter, so
// a missing key surfaces as 428.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	core, err := app.New(ctx, c, logger, nil)
	if err != nil {
		return nil, err
	}
	return &App{core: core, logger: logger}, nil
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (a *App) Run(ctx context.Context) {
	defer a.core.Close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.logger.Info(ctx, "Starting app...")

	a.initSignalHandler(cancelFunc)

	if err := NewServer(a.core, a.logger).Run(ctx); err != nil {
		a.logger.Error(ctx, err.Error())
	}
}
