// cmd/web/main.go
//
// webcore – HTTP entry point for the three brand sites and their admin
// API.
//
// Boot sequence
// -------------
//
//  1. Load env vars (server-wide file → .env fallback).
//
//  2. Optional Vault client for `vault:` secret references.
//
//  3. Load and validate config (YAML + WEBCORE_ env overrides).
//
//  4. Start daily rotating logger (tees to console when running in a
//     TTY).
//
//  5. Open MariaDB, load the fallback bundle, eagerly load the site
//     registry (a closed three-brand set; boot fails when empty), and
//     start its refresh ticker.
//
//  6. Wire the content resolver, sessions, audit recorder, and the
//     translation provider (skipped when no API key is configured).
//
//  7. Assemble middleware: security headers → request enrichment →
//     routes, with optional HTTPS enforcement outermost.
//
//  8. Serve with hardened timeouts until SIGINT/SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments
// use a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/api"
	"github.com/nessdigital/webcore/internal/auth"
	"github.com/nessdigital/webcore/internal/config"
	"github.com/nessdigital/webcore/internal/content"
	"github.com/nessdigital/webcore/internal/database"
	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/logger"
	"github.com/nessdigital/webcore/internal/middleware"
	"github.com/nessdigital/webcore/internal/requestinfo"
	"github.com/nessdigital/webcore/internal/server"
	"github.com/nessdigital/webcore/internal/site"
	"github.com/nessdigital/webcore/internal/translate"
	"github.com/nessdigital/webcore/internal/vault"
)

const serverEnvPath = "/usr/local/etc/webcore/global.env"

// loadEnv prefers the server-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx := context.Background()

	//
	// ── 1.  Secrets and config ─────────────────────────────────────────
	//
	var secrets config.SecretResolver
	if os.Getenv("VAULT_ADDR") != "" {
		vc, err := vault.New(ctx)
		if err != nil {
			log.Fatalf("vault client: %v", err)
		}
		secrets = vc
	}

	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Logger ─────────────────────────────────────────────────────
	//
	logOut, err := logger.New(cfg.Paths.Root, cfg.Logging.FileEnabled, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 3.  Database ───────────────────────────────────────────────────
	//
	logOut.Info("connecting to database …")
	db, err := database.Open(ctx, cfg.DatabaseDSN())
	if err != nil {
		logOut.Fatalf("connect database: %v", err)
	}
	defer db.Close()
	logOut.Info("database online")

	//
	// ── 4.  Locale bundle and GeoIP ────────────────────────────────────
	//
	bundle, err := locale.LoadBundle(cfg.Locale.BundlePath)
	if err != nil {
		logOut.Fatalf("load fallback bundle: %v", err)
	}
	if err := requestinfo.InitGeo(cfg.Locale.GeoIPPath); err != nil {
		// Detection degrades to Accept-Language and site defaults.
		logOut.Warnw("GeoIP disabled", "error", err)
	}

	//
	// ── 5.  Site registry (eager, closed set) ──────────────────────────
	//
	registry, err := site.NewRegistry(ctx, db)
	if err != nil {
		logOut.Fatalf("load site registry: %v", err)
	}
	registry.StartRefresh(ctx, cfg.Sites.RefreshInterval)
	logOut.Infow("site registry online", "sites", len(registry.AllRecords()))

	//
	// ── 6.  Services ───────────────────────────────────────────────────
	//
	var provider translate.Translator
	if cfg.Translate.APIKey != "" {
		p, err := translate.NewProvider(
			cfg.Translate.BaseURL, cfg.Translate.APIKey,
			cfg.Translate.Model, cfg.Translate.Timeout)
		if err != nil {
			logOut.Fatalf("translate provider: %v", err)
		}
		provider = p
	} else {
		logOut.Info("translate assist disabled (no API key)")
	}

	handler := &api.Handler{
		DB:        db,
		Registry:  registry,
		Resolver:  content.NewResolver(db, bundle, content.ResolverOptions{}),
		Sessions:  auth.NewSessions(cfg.Session.Key),
		Recorder:  activity.NewRecorder(db),
		Translate: translate.New(provider),
	}

	//
	// ── 7.  Middleware chain and server ────────────────────────────────
	//
	var root http.Handler = handler.Routes()
	root = requestinfo.Enrich(root)
	root = middleware.Security(root)
	if cfg.HTTP.ForceHTTPS {
		root = middleware.ForceHTTPS(registry, root)
	}

	srv := server.New(cfg.HTTP.ListenAddr, root)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.Run(srv); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	zap.S().Info("shutdown complete")
}
