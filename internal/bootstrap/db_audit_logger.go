package bootstrap

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DBAuditLogger persists audit entries to the audit_logs table. Writes
// are best-effort: a failed insert is logged, never propagated, so
// auditing cannot break the main flow.
type DBAuditLogger struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewDBAuditLogger(db *sql.DB, logger *zap.Logger) *DBAuditLogger {
	return &DBAuditLogger{db: db, logger: logger.Named("audit.db")}
}

func (l *DBAuditLogger) Log(ctx context.Context, entry AuditLog) {
	meta, err := json.Marshal(entry.Meta)
	if err != nil {
		l.logger.Error("marshal audit meta failed", zap.Error(err))
		meta = []byte("{}")
	}

	query := `
        INSERT INTO audit_logs (id, action, message, meta, created_at)
        VALUES ($1, $2, $3, $4, NOW())
    `
	if _, err := l.db.ExecContext(ctx, query, uuid.NewString(), entry.Action, entry.Message, meta); err != nil {
		l.logger.Error("persist audit entry failed",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}
