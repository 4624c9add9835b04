package index

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/meghashyamc/sitesearch/config"
	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/db/relateddb"
	"github.com/meghashyamc/sitesearch/db/snapshotdb"
	"github.com/meghashyamc/sitesearch/debounce"
	"github.com/meghashyamc/sitesearch/logger"
)

const (
	ProgressStatusQueued   = 0
	ProgressStatusBuilding = 50
	ProgressStatusComplete = 100
	ProgressStatusFailed   = -1

	maxIndexBuildingTime = 5 * time.Minute
)

// Service builds the search index from the site's content sources and swaps
// the result into the shared index holder. Builds run on a single loop;
// rebuild requests are debounced and coalesced.
type Service struct {
	logger      logger.Logger
	fetcher     *fetcher
	modelsPath  string
	holder      *indexdb.Holder
	related     relateddb.DB
	snapshots   snapshotdb.DB
	rebuilds    *debounce.Debouncer
	snapshotTTL time.Duration
	buildC      chan buildRequest

	mu      sync.Mutex
	pending []string
}

type buildRequest struct {
	requestIDs []string
}

func New(ctx context.Context, logger logger.Logger, cfg *config.Config, holder *indexdb.Holder, related relateddb.DB, snapshots snapshotdb.DB) *Service {
	indexService := &Service{
		logger:      logger,
		fetcher:     newFetcher(cfg.GetBaseURL(), logger),
		modelsPath:  cfg.GetModelsPath(),
		holder:      holder,
		related:     related,
		snapshots:   snapshots,
		rebuilds:    debounce.New(cfg.GetRebuildDebounce()),
		snapshotTTL: cfg.GetSnapshotTTL(),
		buildC:      make(chan buildRequest),
	}

	go indexService.run(ctx)
	return indexService
}

// Start populates the index: from a fresh-enough persisted snapshot if one
// exists, otherwise by a full build. Meant to run on its own goroutine so the
// server can start serving while the first build is in flight.
func (s *Service) Start(ctx context.Context) {
	if s.restoreSnapshot() {
		return
	}
	s.BuildNow(ctx)
}

// Rebuild queues a debounced index rebuild. Bursts of requests within the
// debounce interval collapse into a single build; every request ID still gets
// its status tracked to completion.
func (s *Service) Rebuild(requestID string) error {
	s.setRequestStatus(requestID, ProgressStatusQueued)

	s.mu.Lock()
	s.pending = append(s.pending, requestID)
	s.mu.Unlock()

	s.rebuilds.Trigger(s.dispatch)
	return nil
}

// GetStatus retrieves the progress status for an index rebuild request.
func (s *Service) GetStatus(requestID string) (int, error) {
	value, err := s.snapshots.Get(snapshotdb.RequestsBucket, requestID)
	if err != nil {
		return 0, fmt.Errorf("request not found: %w", err)
	}

	status, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid status value: %w", err)
	}

	return status, nil
}

func (s *Service) dispatch() {
	s.mu.Lock()
	requestIDs := s.pending
	s.pending = nil
	s.mu.Unlock()

	select {
	// This leads to s.buildForRequests being called
	case s.buildC <- buildRequest{requestIDs: requestIDs}:
	default:
		s.logger.Warn("rebuild requested while a build is already in progress")
		for _, requestID := range requestIDs {
			s.setRequestStatus(requestID, ProgressStatusFailed)
		}
	}
}

func (s *Service) run(ctx context.Context) {
	for {
		select {
		case req := <-s.buildC:
			buildCtx, cancel := context.WithTimeout(ctx, maxIndexBuildingTime)
			s.buildForRequests(buildCtx, req.requestIDs)
			cancel()
		case <-ctx.Done():
			s.logger.Info("index service stopped", "reason", ctx.Err())
			return
		}
	}
}

func (s *Service) buildForRequests(ctx context.Context, requestIDs []string) {
	for _, requestID := range requestIDs {
		s.setRequestStatus(requestID, ProgressStatusBuilding)
	}

	s.BuildNow(ctx)

	finalStatus := ProgressStatusComplete
	if ctx.Err() != nil {
		s.logger.Error("index build cancelled", "err", ctx.Err())
		finalStatus = ProgressStatusFailed
	}
	for _, requestID := range requestIDs {
		s.setRequestStatus(requestID, finalStatus)
	}
}

// BuildNow builds the whole index synchronously and swaps it in. Source
// failures degrade coverage and show up in the report; they never abort the
// build, so there is no error to return.
func (s *Service) BuildNow(ctx context.Context) *BuildReport {
	s.logger.Info("building site search index...")
	report := &BuildReport{BuiltAt: time.Now().UTC()}

	var homepage ContentSource
	if source, err := s.fetcher.getHTML(ctx, "/"); err == nil {
		homepage = source
	} else {
		s.logger.Warn("homepage unavailable, page and section records will be missing", "err", err.Error())
	}

	var records []indexdb.SearchRecord

	pageRecords, pageReport := s.indexSitePages(homepage)
	records = append(records, pageRecords...)
	report.addSource(pageReport)

	sectionRecords, sectionReport := s.indexHomepageSections(homepage)
	records = append(records, sectionRecords...)
	report.addSource(sectionReport)

	docRecords, docReport := s.indexDocumentationPages(ctx)
	records = append(records, docRecords...)
	report.addSource(docReport)

	modelRecords, modelReport := s.indexModelData(ctx)
	records = append(records, modelRecords...)
	report.addSource(modelReport)

	ix := indexdb.New(records)
	s.holder.Swap(ix)
	report.Records = ix.Len()

	if err := s.related.BuildIndex(ix.All()); err != nil {
		s.logger.Warn("related-content index not updated", "err", err.Error())
	}

	s.saveSnapshot(ix.All(), report)

	s.logger.Info("site search index built", "records", report.Records, "failed_sources", report.FailedSources())
	return report
}

func (s *Service) setRequestStatus(requestID string, status int) {
	if err := s.snapshots.Set(snapshotdb.RequestsBucket, requestID, strconv.Itoa(status)); err != nil {
		s.logger.Error("failed to update request status", "request_id", requestID, "status", status, "err", err.Error())
	}
}
