package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/admin"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/broker"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/config"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/db"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/registration"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/repository"
)

// cmd/admin/main.go - tarefas one-off: migrate | rollback | version | seed
func main() {
	task := flag.String("task", "", "admin task: migrate | rollback | version | seed")
	steps := flag.Int("steps", 1, "rollback: quantidade de migrations a desfazer")
	flag.Parse()

	cfg := config.Load() // .env
	log := config.InitLogger(cfg.LogLevel).With("svc", "admin")

	ctx := context.Background()
	var err error
	switch *task {
	case "migrate":
		err = db.RunMigrations(ctx, cfg.DatabaseURL)
	case "rollback":
		err = db.RollbackMigrations(ctx, cfg.DatabaseURL, *steps)
	case "version":
		var v int64
		if v, err = db.MigrationVersion(ctx, cfg.DatabaseURL); err == nil {
			fmt.Println(v)
		}
	case "seed":
		err = seed(ctx, cfg, log)
	default:
		log.Error("unknown_admin_task", "task", *task)
		os.Exit(2)
	}

	if err != nil {
		log.Error("admin_task_failed", "task", *task, "err", err)
		os.Exit(1)
	}
	log.Info("admin_task_done", "task", *task)
}

func seed(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	gdb, err := db.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	opts := []registration.Option{
		registration.WithBcryptCost(cfg.BcryptCost),
		registration.WithLogger(log),
		registration.WithQueryTimeout(cfg.QueryTimeout),
	}
	// eventos só quando houver RabbitMQ configurado
	if cfg.RabbitURI != "" {
		pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
		if err != nil {
			return err
		}
		defer pub.Close()
		opts = append(opts, registration.WithNotifier(pub))
	}

	svc := registration.NewService(repository.NewCompanyRepository(gdb), opts...)
	return admin.SeedCompanies(ctx, svc, log)
}
