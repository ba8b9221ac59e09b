package store

import (
	"context"
)

// Record binds a KV to one fixed key and exposes load/save/clear on it.
// It satisfies assessment.Storage.
type Record struct {
	kv  KV
	key string
}

// NewRecord returns the record stored under key.
func NewRecord(kv KV, key string) *Record {
	return &Record{kv: kv, key: key}
}

// Key returns the record's key.
func (r *Record) Key() string {
	return r.key
}

// Load returns the stored bytes, or nil when the record does not exist.
func (r *Record) Load(ctx context.Context) ([]byte, error) {
	v, ok, err := r.kv.Get(ctx, r.key)
	if err != nil || !ok {
		return nil, err
	}
	return v, nil
}

// Save replaces the stored bytes.
func (r *Record) Save(ctx context.Context, data []byte) error {
	return r.kv.Put(ctx, r.key, data)
}

// Clear removes the record.
func (r *Record) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, r.key)
}
