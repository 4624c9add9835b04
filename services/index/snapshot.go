package index

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/db/snapshotdb"
)

const (
	metaKeyBuiltAt = "built_at"
	metaKeyReport  = "report"
)

// saveSnapshot persists the freshly built records and the build report so a
// restart within the snapshot TTL can skip refetching the site. Persistence
// is best-effort: a failure costs the snapshot, not the in-memory index.
func (s *Service) saveSnapshot(records []indexdb.SearchRecord, report *BuildReport) {
	if err := s.snapshots.ClearBucket(snapshotdb.RecordsBucket); err != nil {
		s.logger.Warn("could not clear snapshot records", "err", err.Error())
		return
	}

	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			s.logger.Warn("could not marshal record for snapshot", "id", record.ID, "err", err.Error())
			continue
		}
		if err := s.snapshots.Set(snapshotdb.RecordsBucket, record.ID, string(data)); err != nil {
			s.logger.Warn("could not persist record", "id", record.ID, "err", err.Error())
		}
	}

	if err := s.snapshots.Set(snapshotdb.MetaBucket, metaKeyBuiltAt, report.BuiltAt.Format(time.RFC3339)); err != nil {
		s.logger.Warn("could not persist snapshot timestamp", "err", err.Error())
	}

	reportData, err := json.Marshal(report)
	if err == nil {
		if err := s.snapshots.Set(snapshotdb.MetaBucket, metaKeyReport, string(reportData)); err != nil {
			s.logger.Warn("could not persist build report", "err", err.Error())
		}
	}
}

// restoreSnapshot loads the persisted records into the index holder if the
// snapshot is fresh enough, reporting whether it did.
func (s *Service) restoreSnapshot() bool {
	builtAtValue, err := s.snapshots.Get(snapshotdb.MetaBucket, metaKeyBuiltAt)
	if err != nil {
		s.logger.Info("no index snapshot found, building from scratch")
		return false
	}

	builtAt, err := time.Parse(time.RFC3339, builtAtValue)
	if err != nil {
		s.logger.Warn("invalid snapshot timestamp, building from scratch", "value", builtAtValue)
		return false
	}

	if time.Since(builtAt) > s.snapshotTTL {
		s.logger.Info("index snapshot is stale, building from scratch", "built_at", builtAtValue)
		return false
	}

	values, err := s.snapshots.GetAll(snapshotdb.RecordsBucket)
	if err != nil || len(values) == 0 {
		s.logger.Info("no snapshot records found, building from scratch")
		return false
	}

	// Map iteration order is random; sort by ID so restored builds are
	// deterministic.
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]indexdb.SearchRecord, 0, len(values))
	for _, id := range ids {
		var record indexdb.SearchRecord
		if err := json.Unmarshal([]byte(values[id]), &record); err != nil {
			s.logger.Warn("skipping corrupt snapshot record", "id", id, "err", err.Error())
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return false
	}

	ix := indexdb.New(records)
	s.holder.Swap(ix)

	if err := s.related.BuildIndex(ix.All()); err != nil {
		s.logger.Warn("related-content index not restored", "err", err.Error())
	}

	s.logger.Info("restored index from snapshot", "records", ix.Len(), "built_at", builtAtValue)
	return true
}

// LastReport returns the persisted report of the most recent build.
func (s *Service) LastReport() (*BuildReport, error) {
	value, err := s.snapshots.Get(snapshotdb.MetaBucket, metaKeyReport)
	if err != nil {
		return nil, err
	}

	var report BuildReport
	if err := json.Unmarshal([]byte(value), &report); err != nil {
		return nil, err
	}

	return &report, nil
}
