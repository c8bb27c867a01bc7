// internals/features/attendance/service/report_cache.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	database "kampusku_backend/internals/databases"
	"kampusku_backend/internals/observability"
)

const reportCacheTTL = 5 * time.Minute

func subjectReportKey(subjectID uuid.UUID) string {
	return "report:subject:" + subjectID.String()
}

// GetCachedSubjectReport membaca cache; (nil, false) kalau miss atau redis mati.
func GetCachedSubjectReport(ctx context.Context, subjectID uuid.UUID) ([]byte, bool) {
	if database.Redis == nil {
		observability.ReportCacheHits.WithLabelValues("bypass").Inc()
		return nil, false
	}
	raw, err := database.Redis.Get(ctx, subjectReportKey(subjectID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			observability.ReportCacheHits.WithLabelValues("error").Inc()
			return nil, false
		}
		observability.ReportCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	observability.ReportCacheHits.WithLabelValues("hit").Inc()
	return raw, true
}

// CacheSubjectReport best-effort; gagal simpan tidak menggagalkan request.
func CacheSubjectReport(ctx context.Context, subjectID uuid.UUID, payload interface{}) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = database.Redis.Set(ctx, subjectReportKey(subjectID), raw, reportCacheTTL).Err()
}

// InvalidateSubjectReport dipanggil setiap marking baru/hapus attendance.
func InvalidateSubjectReport(ctx context.Context, subjectID uuid.UUID) {
	if database.Redis == nil {
		return
	}
	_ = database.Redis.Del(ctx, subjectReportKey(subjectID)).Err()
}
