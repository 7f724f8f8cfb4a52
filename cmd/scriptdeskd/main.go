// Command scriptdeskd runs the scriptdesk state daemon. It owns the
// task registry, the loaded script document, and the preferences
// store, and serves them to the CLI over a Unix socket.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"scriptdesk/internal/config"
	"scriptdesk/internal/daemon"
	"scriptdesk/internal/ipc"
	"scriptdesk/internal/logging"
	"scriptdesk/internal/preflight"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	results := preflight.RunAll(ctx, cfg)
	for _, result := range results {
		if result.Passed {
			logger.Debug("preflight check passed", logging.String("check", result.Name), logging.String("detail", result.Detail))
			continue
		}
		logger.Error("preflight check failed", logging.String("check", result.Name), logging.String("detail", result.Detail))
	}
	if !preflight.AllPassed(results) {
		logger.Error("preflight failed, refusing to start")
		os.Exit(1)
	}

	d, err := daemon.New(cfg, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	if err := d.Start(); err != nil {
		logger.Error("start daemon", logging.Error(err))
		os.Exit(1)
	}
	defer d.Stop()

	ipcServer, err := ipc.NewServer(ctx, cfg.SocketPath(), d, logger)
	if err != nil {
		logger.Error("start IPC server", logging.Error(err))
		os.Exit(1)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	logger.Info("scriptdeskd ready", logging.String("socket", cfg.SocketPath()))

	<-ctx.Done()
	logger.Info("scriptdeskd shutting down")
}
