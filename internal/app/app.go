package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"eagles-events/go_backend/internal/app/config"
	apphttp "eagles-events/go_backend/internal/app/http"
	"eagles-events/go_backend/internal/app/http/handlers"
	"eagles-events/go_backend/internal/domain/quote/pdf"
	"eagles-events/go_backend/internal/domain/quote/pdf/gofpdf"
	"eagles-events/go_backend/internal/infra/cache/redis"
	"eagles-events/go_backend/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()
	ctx := context.Background()

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	quotes := postgres.NewRepository(db)
	if err := quotes.Migrate(ctx); err != nil {
		log.Fatalf("db: %v", err)
	}

	var cache handlers.DocumentCache
	if cfg.RedisAddr != "" {
		c, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.PDFCacheTTL)
		if err != nil {
			log.Printf("pdf cache: disabled: %v", err)
		} else {
			defer c.Close()
			cache = c
		}
	}

	gen := gofpdf.New(Company(cfg))
	router := apphttp.NewRouter(cfg, handlers.New(quotes, cache, gen, cfg))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

// Company applies the COMPANY_* overrides to the built-in branding.
func Company(cfg config.Config) pdf.Company {
	co := pdf.DefaultCompany()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&co.Name, cfg.CompanyName)
	set(&co.Tagline, cfg.CompanyTagline)
	set(&co.Address, cfg.CompanyAddress)
	set(&co.Phones, cfg.CompanyPhone)
	set(&co.Email, cfg.CompanyEmail)
	return co
}
