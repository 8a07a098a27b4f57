package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dfryer1193/fotostore/images/application"
	"github.com/dfryer1193/fotostore/images/domain"
	"github.com/dfryer1193/fotostore/images/persistence"
	"github.com/dfryer1193/fotostore/internal/middleware"
	"github.com/dfryer1193/fotostore/internal/rest"
	"github.com/dfryer1193/fotostore/shared/config"
	"github.com/dfryer1193/fotostore/shared/db/mongo"
	"github.com/dfryer1193/fotostore/shared/db/sqlite"
	"github.com/dfryer1193/fotostore/shared/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.Level(), cfg.LogFormat)

	repo, closeStore, err := openRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer closeStore()

	imageService := application.NewImageService(repo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.MaxMultipartMemory = cfg.MultipartMemoryBytes()
	r.Use(middleware.LoggingMiddleware())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))
	rest.NewApi(r, rest.NewImageHandler(imageService))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

// openRepository connects the configured document store.
// MongoDB is used when MONGO_URI is set, the embedded SQLite store otherwise.
func openRepository(cfg *config.Config) (domain.ImageRepository, func(), error) {
	if cfg.UseMongo() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout)
		defer cancel()

		m := mongo.NewMongoDB(&mongo.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
		if err := m.Connect(ctx); err != nil {
			return nil, nil, err
		}

		mc := m.Config()
		log.Info().Str("database", mc.Database).Str("collection", mc.Collection).Msg("Connected to MongoDB")
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := m.Close(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
			}
		}
		return persistence.NewMongoImageRepository(m.Collection()), closeFn, nil
	}

	s := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: cfg.SQLitePath})
	if err := s.Connect(context.Background()); err != nil {
		return nil, nil, err
	}

	log.Info().Str("path", s.Path()).Msg("Opened SQLite image store")
	closeFn := func() {
		if err := s.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close SQLite database")
		}
	}
	return persistence.NewSQLiteImageRepository(s.DB()), closeFn, nil
}
