package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mbraun22/privatechef/internal/config"
	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/observability"
	"github.com/mbraun22/privatechef/internal/persistence"
	"github.com/mbraun22/privatechef/internal/repository"
)

// Promotes an existing account to admin. Usage: makeadmin <email>
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: makeadmin <email>")
		os.Exit(1)
	}
	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer pg.Close()

	users := repository.NewUserRepository(pg.PoolHandle())
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("user %s not found: %v", email, err)
	}
	if err := users.UpdateRole(ctx, user.ID, domain.RoleAdmin); err != nil {
		log.Fatalf("failed to update role: %v", err)
	}

	fmt.Printf("%s is now an admin\n", email)
}
