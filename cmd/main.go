package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sameday-trips/cmd/bootstrap"
	"sameday-trips/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// batch commands may be stopped mid-destination; the destination in flight
// gets this long to finish and checkpoint
const batchStopTimeout = 5 * time.Minute

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           sameday-trips
// @version         1.0
// @description     Same-day round trip discovery and multi-source pricing.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 サーバーを起動します", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return nil
		},
	})
}

func options(command string) (fx.Option, error) {
	switch command {
	case "", "serve":
		return fx.Options(
			bootstrap.ServeModule,
			fx.Provide(func() *gin.Engine {
				return gin.New()
			}),
			fx.Invoke(startServer),
		), nil
	case "discover":
		return fx.Options(bootstrap.DiscoverModule, fx.StopTimeout(batchStopTimeout)), nil
	case "price":
		return fx.Options(bootstrap.PriceModule, fx.StopTimeout(batchStopTimeout)), nil
	}
	return nil, fmt.Errorf("unknown command %q (want serve, discover or price)", command)
}

func main() {
	command := ""
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	opts, err := options(command)
	if err != nil {
		slog.Error("コマンドが不正です", "error", err)
		os.Exit(2)
	}

	app := fx.New(opts)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	// SIGINT/SIGTERM or a finished batch command
	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}
	cancel()

	slog.Info("アプリケーションが正常に停止しました", "exit_code", sig.ExitCode)
	if sig.ExitCode != 0 {
		os.Exit(sig.ExitCode)
	}
}
