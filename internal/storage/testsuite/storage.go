// Package testsuite holds the shared contract tests every storage backend
// must pass.
package testsuite

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"tarefas/internal/storage"
)

// TestStorage runs the storage contract against backends built by factory.
// Each case gets a fresh backend.
func TestStorage(t *testing.T, factory func(t *testing.T) (storage.Storage, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store storage.Storage) error
	}

	testCases := []testCase{
		{
			Name: "GetAbsentKey",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				value, ok, err := store.Get(ctx, "@tasks")
				if err != nil {
					return errors.WithStack(err)
				}
				if ok {
					t.Errorf("Get: expected absent key, got %q", value)
				}
				return nil
			},
		},
		{
			Name: "SetThenGet",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				if err := store.Set(ctx, "@tasks", `[{"id":"1","text":"Buy milk"}]`); err != nil {
					return errors.WithStack(err)
				}
				value, ok, err := store.Get(ctx, "@tasks")
				if err != nil {
					return errors.WithStack(err)
				}
				if !ok {
					t.Fatal("Get: expected key to be present")
				}
				if e, g := `[{"id":"1","text":"Buy milk"}]`, value; e != g {
					t.Errorf("Get: expected %q, got %q", e, g)
				}
				return nil
			},
		},
		{
			Name: "SetOverwrites",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				if err := store.Set(ctx, "@tasks", "first"); err != nil {
					return errors.WithStack(err)
				}
				if err := store.Set(ctx, "@tasks", "second"); err != nil {
					return errors.WithStack(err)
				}
				value, _, err := store.Get(ctx, "@tasks")
				if err != nil {
					return errors.WithStack(err)
				}
				if e, g := "second", value; e != g {
					t.Errorf("Get: expected %q, got %q", e, g)
				}
				return nil
			},
		},
		{
			Name: "EmptyValueIsPresent",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				if err := store.Set(ctx, "@tasks", ""); err != nil {
					return errors.WithStack(err)
				}
				_, ok, err := store.Get(ctx, "@tasks")
				if err != nil {
					return errors.WithStack(err)
				}
				if !ok {
					t.Error("Get: expected empty value to be present")
				}
				return nil
			},
		},
		{
			Name: "RemoveDeletesKey",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				if err := store.Set(ctx, "@tasks", "[]"); err != nil {
					return errors.WithStack(err)
				}
				if err := store.Remove(ctx, "@tasks"); err != nil {
					return errors.WithStack(err)
				}
				_, ok, err := store.Get(ctx, "@tasks")
				if err != nil {
					return errors.WithStack(err)
				}
				if ok {
					t.Error("Get: expected key to be removed")
				}
				return nil
			},
		},
		{
			Name: "RemoveAbsentKey",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				return errors.WithStack(store.Remove(ctx, "missing"))
			},
		},
		{
			Name: "KeysAreIndependent",
			Run: func(t *testing.T, ctx context.Context, store storage.Storage) error {
				if err := store.Set(ctx, "@tasks", "a"); err != nil {
					return errors.WithStack(err)
				}
				if err := store.Set(ctx, "other/key", "b"); err != nil {
					return errors.WithStack(err)
				}
				if err := store.Remove(ctx, "other/key"); err != nil {
					return errors.WithStack(err)
				}
				value, ok, err := store.Get(ctx, "@tasks")
				if err != nil {
					return errors.WithStack(err)
				}
				if !ok || value != "a" {
					t.Errorf("Get: expected %q, got %q (present: %v)", "a", value, ok)
				}
				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
			defer func() {
				if err := store.Close(); err != nil {
					t.Errorf("Close: %+v", err)
				}
			}()

			if err := tc.Run(t, context.Background(), store); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		})
	}
}
