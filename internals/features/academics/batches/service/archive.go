// internals/features/academics/batches/service/archive.go
package service

import (
	"context"

	"github.com/google/uuid"
)

// ArchiveStore = update flag archive per-level, dipanggil dalam satu
// transaction oleh caller (lihat gorm_archive.go).
type ArchiveStore interface {
	SetSemestersArchivedByBatch(ctx context.Context, batchID uuid.UUID, archived bool) error
	SetSubjectsArchivedByBatch(ctx context.Context, batchID uuid.UUID, archived bool) error
}

// PropagateBatchArchive merambatkan flag archive batch ke semester dan
// subject turunannya. Hanya flag yang berubah, tidak ada record yang
// dihapus; unarchive (false) merambat dengan cara yang sama.
func PropagateBatchArchive(ctx context.Context, store ArchiveStore, batchID uuid.UUID, archived bool) error {
	if err := store.SetSemestersArchivedByBatch(ctx, batchID, archived); err != nil {
		return err
	}
	return store.SetSubjectsArchivedByBatch(ctx, batchID, archived)
}
