package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/auth"
	"github.com/nikhitha4605/storefront-api/cart"
	"github.com/nikhitha4605/storefront-api/catalog"
	"github.com/nikhitha4605/storefront-api/checkout"
	checkoutControllers "github.com/nikhitha4605/storefront-api/controllers/checkout"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/pricing"
	"github.com/nikhitha4605/storefront-api/routes"
	"github.com/nikhitha4605/storefront-api/store"
	"github.com/nikhitha4605/storefront-api/wishlist"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting storefront API")

	st := openStore(log)
	defer st.Close()

	products := loadCatalog(log)
	log.Info("catalog loaded", zap.Int("products", products.Len()))

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	hub := notify.NewHub(log)
	notifier := notify.Multi{notify.NewLogNotifier(log), hub}

	carts := cart.NewService(st, log, notifier)
	identities := auth.NewProvider(st, log, notifier, secret)
	wishlists := wishlist.NewService(st, log, notifier)

	policy := pricing.PolicyFromEnv()
	orchestrator := checkout.NewOrchestrator(policy, identities, log, notifier,
		checkout.WithBroadcast(hub.BroadcastOrder))
	checkoutCtl := checkoutControllers.New(orchestrator, carts, policy)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, &routes.App{
		Carts:      carts,
		Catalog:    products,
		Identities: identities,
		Wishlists:  wishlists,
		Checkout:   checkoutCtl,
		Hub:        hub,
		JWTSecret:  secret,
	})

	// Daily store backup at 2 AM, keep 4 days of checkpoints
	if p, ok := st.(*store.Pebble); ok {
		backupDir := os.Getenv("BACKUP_DIR")
		if backupDir == "" {
			backupDir = "./data/backup"
		}
		go startDailyBackupAtFixedTime(p, backupDir, 4*24*time.Hour, 2, 0, log)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

// openStore picks the storage backend: pebble for a device-local store
// (the default), postgres for a shared one.
func openStore(log *zap.Logger) store.Store {
	switch os.Getenv("STORE_BACKEND") {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL is required for the postgres store")
		}
		st, err := store.OpenPostgres(dsn)
		if err != nil {
			log.Fatal("postgres store open failed", zap.Error(err))
		}
		log.Info("using postgres store")
		return st
	default:
		dir := os.Getenv("STORE_DIR")
		if dir == "" {
			dir = "./data/store"
		}
		st, err := store.OpenPebble(dir)
		if err != nil {
			log.Fatal("pebble store open failed", zap.Error(err))
		}
		log.Info("using pebble store", zap.String("dir", dir))
		return st
	}
}

func loadCatalog(log *zap.Logger) *catalog.Catalog {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		c, err := catalog.LoadFile(path)
		if err != nil {
			log.Fatal("catalog load failed", zap.String("path", path), zap.Error(err))
		}
		return c
	}
	return catalog.New(catalog.Default())
}

// startDailyBackupAtFixedTime checkpoints the store daily at a fixed
// hour and removes old checkpoints.
func startDailyBackupAtFixedTime(p *store.Pebble, backupDir string, retention time.Duration, hour, min int, log *zap.Logger) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Info("next store backup scheduled", zap.Time("at", next))
		time.Sleep(next.Sub(now))

		dest := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := p.Backup(dest); err != nil {
			log.Error("store backup failed", zap.Error(err))
		} else {
			log.Info("store backed up", zap.String("dir", dest))
		}

		cleanupOldBackups(backupDir, retention, log)
	}
}

// cleanupOldBackups removes checkpoint folders older than retention.
func cleanupOldBackups(backupDir string, retention time.Duration, log *zap.Logger) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Error("backup directory read failed", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Error("old backup removal failed", zap.String("dir", folderPath), zap.Error(err))
			} else {
				log.Info("removed old backup", zap.String("dir", folderPath))
			}
		}
	}
}
