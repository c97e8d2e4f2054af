// seedadmin crea el admin por defecto si no existe todavía.
//
// Uso: go run ./cmd/seedadmin
// Credenciales: SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD (por defecto admin / admin123).
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gimnasio-api/pkg/config"
	"github.com/jhoicas/Gimnasio-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	adminRepo := postgres.NewAdminRepository(pool)

	existing, err := adminRepo.GetByUsername(cfg.Seed.AdminUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin existente")
	}
	if existing != nil {
		log.Info().Str("username", cfg.Seed.AdminUsername).Msg("el admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := adminRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}

	log.Info().Str("username", admin.Username).Msg("admin por defecto creado")
}
