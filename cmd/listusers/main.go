// Lista os usuários do banco (diagnóstico).
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/config"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/db"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/diagnostics"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/repository"
)

func main() {
	cfg := config.Load()
	log := config.InitLogger(cfg.LogLevel).With("svc", "listusers")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("list_users_failed", "err", err)
		os.Exit(1)
	}
}

// run sempre libera a conexão, inclusive nos caminhos de erro.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	gdb, err := db.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Warn("db_close_error", "err", err)
		}
	}()

	qctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()

	n, err := diagnostics.ListUsers(qctx, os.Stdout, repository.NewUserRepository(gdb))
	if err != nil {
		return err
	}
	log.Info("list_users_done", "count", n)
	return nil
}
