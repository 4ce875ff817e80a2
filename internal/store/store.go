package store

import "context"

// Well-known document keys. Each key holds one whole JSON document that is
// overwritten on every mutation — last write wins, no partial updates.
const (
	KeyApplications = "applications"
	KeySavedJobs    = "saved_jobs"
	KeyResume       = "resume"
	KeyMailScan     = "mailscan_state"
)

// DocStore is a key-value document store. Get returns (nil, nil) for a key
// that has never been written.
type DocStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
