package main

import (
	"context"
	"log"
	"os"

	"nightrun/internal"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := internal.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin"
		log.Println("WARNING: ADMIN_PASSWORD is not set, admin/admin is active")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	db := internal.MustDB(cfg.DatabaseURL)
	defer db.Close()

	ctx := context.Background()
	if err := internal.InitSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	store := internal.NewPGStore(db)
	if err := internal.SeedAdmin(ctx, store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	r := internal.SetupRouter(store, cfg)

	log.Printf("Listening on :%s", cfg.Port)
	_ = r.Run(":" + cfg.Port)
}
