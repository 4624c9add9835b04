package snapshotdb

// Bucket names used by the snapshot store.
const (
	// RecordsBucket holds the serialized search records of the last
	// successful index build, keyed by record ID.
	RecordsBucket = "records"
	// RequestsBucket holds rebuild progress per request ID.
	RequestsBucket = "requests"
	// MetaBucket holds build metadata such as the build timestamp and the
	// serialized build report.
	MetaBucket = "meta"
)

// DB is a bucketed key-value store used to persist index snapshots and
// rebuild bookkeeping across restarts.
type DB interface {
	Set(bucket string, key string, value string) error
	Get(bucket string, key string) (string, error)
	Delete(bucket string, key string) error
	GetAll(bucket string) (map[string]string, error)
	ClearBucket(bucket string) error
	Close() error
}
