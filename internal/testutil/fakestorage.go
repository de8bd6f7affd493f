// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is a convenience error for failure injection.
var ErrInjected = errors.New("injected storage failure")

// Call records one operation received by FakeStorage.
type Call struct {
	Op    string // "get", "set" or "remove"
	Key   string
	Value string
}

// FakeStorage is an in-memory implementation of storage.Storage for testing.
type FakeStorage struct {
	mu     sync.Mutex
	data   map[string]string
	calls  []Call
	closed bool

	// Error injection for testing
	GetErr    error
	SetErr    error
	RemoveErr error
	CloseErr  error

	// Gate, when non-nil, blocks Set and Remove until it is closed or
	// receives a value.
	Gate chan struct{}

	// GetGate does the same for Get. The call is recorded before blocking.
	GetGate chan struct{}
}

// NewFakeStorage creates an empty FakeStorage.
func NewFakeStorage() *FakeStorage {
	return &FakeStorage{data: make(map[string]string)}
}

// Put seeds a value without recording a call.
func (f *FakeStorage) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

// Value returns the stored value without recording a call.
func (f *FakeStorage) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// Calls returns the operations received so far, in order.
func (f *FakeStorage) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Closed reports whether Close was called.
func (f *FakeStorage) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Get implements storage.Storage.
func (f *FakeStorage) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: "get", Key: key})
	f.mu.Unlock()

	if err := waitOn(ctx, f.GetGate); err != nil {
		return "", false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

// Set implements storage.Storage.
func (f *FakeStorage) Set(ctx context.Context, key, value string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "set", Key: key, Value: value})
	if f.SetErr != nil {
		return f.SetErr
	}
	f.data[key] = value
	return nil
}

// Remove implements storage.Storage.
func (f *FakeStorage) Remove(ctx context.Context, key string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "remove", Key: key})
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	delete(f.data, key)
	return nil
}

// Close implements storage.Storage.
func (f *FakeStorage) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}

func (f *FakeStorage) wait(ctx context.Context) error {
	return waitOn(ctx, f.Gate)
}

func waitOn(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
