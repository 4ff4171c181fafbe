package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"alfredoptarigan/cv-screener/internal/config"
	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
	"alfredoptarigan/cv-screener/internal/services"
)

// Uploads every CV in INGEST_DIR for the user INGEST_OWNER_ID, through the
// same validation and storage path as the API.
func main() {
	log.Info("🚀 Starting CV ingestion...")

	// Load configuration
	cfg := config.Load()

	dir := os.Getenv("INGEST_DIR")
	if dir == "" {
		dir = "./reference_cvs"
	}

	ownerID, err := uuid.Parse(os.Getenv("INGEST_OWNER_ID"))
	if err != nil {
		log.Fatalf("❌ INGEST_OWNER_ID must be the user's UUID: %v", err)
	}
	session := &models.Session{
		UserID: ownerID,
		Email:  os.Getenv("INGEST_OWNER_EMAIL"),
	}

	ctx := context.Background()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	storage, err := services.NewObjectStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}

	amqpConn, err := config.InitRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize rabbitmq: %v", err)
	}
	if amqpConn != nil {
		defer amqpConn.Close()
	}

	notifier, err := services.NewNotifier(cfg, amqpConn)
	if err != nil {
		log.Fatalf("❌ Failed to initialize notifier: %v", err)
	}

	cvService := services.NewCVService(
		repositories.NewCVRepository(db),
		repositories.NewCleanupRepository(db),
		storage,
		notifier,
		cfg.Storage.MaxFileSize,
	)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", dir, err)
	}

	var files []models.UploadFile
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("   ⚠️  Failed to read %s, skipping: %v", path, err)
			continue
		}

		files = append(files, models.UploadFile{
			Name:        entry.Name(),
			ContentType: utils.GetMIME(filepath.Ext(entry.Name())),
			Size:        int64(len(data)),
			Data:        data,
		})
	}

	if len(files) == 0 {
		log.Warnf("⚠️  No files found in %s", dir)
		return
	}

	log.Infof("📄 Uploading %d files from %s", len(files), dir)
	report, err := cvService.Upload(ctx, session, files)
	if err != nil {
		log.Fatalf("❌ Ingestion failed: %v", err)
	}

	// Summary
	log.Info(strings.Repeat("=", 60))
	log.Info("📊 Ingestion Summary:")
	for _, f := range report.Files {
		if f.Accepted {
			log.Infof("   ✅ %s", f.FileName)
		} else {
			log.Infof("   ❌ %s: %s", f.FileName, f.Reason)
		}
	}
	log.Infof("   ✅ Successful: %d files", report.Accepted)
	log.Infof("   ❌ Failed: %d files", report.Rejected)
	log.Info(strings.Repeat("=", 60))

	if report.Rejected > 0 {
		log.Warn("⚠️  Some files were rejected. Please check the logs above.")
		os.Exit(1)
	}

	log.Info("✅ All CVs ingested successfully!")
}
