package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/sitesearch/config"
	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/db/relateddb"
	"github.com/meghashyamc/sitesearch/db/snapshotdb"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/index"
	"github.com/meghashyamc/sitesearch/services/search"
	"github.com/meghashyamc/sitesearch/validation"
)

type server struct {
	router        *gin.Engine
	httpServer    *http.Server
	cfg           *config.Config
	holder        *indexdb.Holder
	relateddb     relateddb.DB
	snapshotdb    snapshotdb.DB
	indexService  *index.Service
	searchService *search.Service
	validator     *validation.Validator
	logger        logger.Logger
}

func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)

	defer cancel()

	s := &server{
		cfg:    cfg,
		logger: logger.New(),
	}
	if err := s.setupDependencies(ctx); err != nil {
		return err
	}

	// Serve immediately; the first index build (or snapshot restore) runs in
	// the background and the index swaps in when ready.
	go s.indexService.Start(ctx)

	s.setupRouter()
	s.setupHTTPServer()
	s.setupGracefulShutdown(ctx)

	return nil
}

func (s *server) setupDependencies(ctx context.Context) error {
	var err error
	s.snapshotdb, err = snapshotdb.New(s.logger, s.cfg)
	if err != nil {
		s.logger.Error("error creating snapshot store", "err", err.Error())
		return err
	}
	s.relateddb, err = relateddb.New(s.logger)
	if err != nil {
		s.logger.Error("error creating related-content index", "err", err.Error())
		return err
	}
	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		return err
	}

	s.holder = indexdb.NewHolder()
	s.indexService = index.New(ctx, s.logger, s.cfg, s.holder, s.relateddb, s.snapshotdb)
	s.searchService = search.New(s.logger, s.holder, s.relateddb)

	return nil

}

func (s *server) setupRouter() {
	router := newRouter()

	router.Use(loggingMiddleware(s.logger))

	setupRoutes(router, s.logger, s.searchService, s.indexService, s.validator)

	s.router = router
}

func (s *server) setupHTTPServer() {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.GetPort()),
		Handler: s.router.Handler(),
	}
	s.httpServer = httpServer
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()
}

func (s *server) setupGracefulShutdown(ctx context.Context) {

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Info("starting to shut down http server")
		shutdownCtx := context.Background()
		shutdownCtx, cancel := context.WithTimeout(shutdownCtx, 10*time.Second)
		defer cancel()
		s.snapshotdb.Close()
		s.relateddb.Close()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error shutting down http server", "err", err)
			return
		}
		s.logger.Info("shut down http server successfully")
	}()

	wg.Wait()
}
