package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// fakeArchiveStore merekam update flag supaya test bisa memastikan archive
// hanya mengubah flag, bukan menghapus apa pun.
type fakeArchiveStore struct {
	ops []string
}

func (f *fakeArchiveStore) record(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeArchiveStore) SetSemestersArchivedByBatch(_ context.Context, batchID uuid.UUID, archived bool) error {
	f.record("semesters:%s:%t", batchID, archived)
	return nil
}

func (f *fakeArchiveStore) SetSubjectsArchivedByBatch(_ context.Context, batchID uuid.UUID, archived bool) error {
	f.record("subjects:%s:%t", batchID, archived)
	return nil
}

func TestPropagateBatchArchive(t *testing.T) {
	batch := uuid.New()

	tests := []struct {
		name     string
		archived bool
	}{
		{name: "archive", archived: true},
		{name: "unarchive", archived: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeArchiveStore{}
			if err := PropagateBatchArchive(context.Background(), store, batch, tt.archived); err != nil {
				t.Fatalf("PropagateBatchArchive() error = %v", err)
			}

			// cuma dua update flag, tidak ada operasi lain
			want := []string{
				fmt.Sprintf("semesters:%s:%t", batch, tt.archived),
				fmt.Sprintf("subjects:%s:%t", batch, tt.archived),
			}
			if len(store.ops) != len(want) {
				t.Fatalf("ops = %v, want %v", store.ops, want)
			}
			for i := range want {
				if store.ops[i] != want[i] {
					t.Errorf("ops[%d] = %q, want %q", i, store.ops[i], want[i])
				}
			}
		})
	}
}
