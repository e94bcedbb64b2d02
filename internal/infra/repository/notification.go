package repository

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues a downstream notification. Callers treat this as
// best-effort; it runs outside the purchase transaction.
func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte) error {
	const sql = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, now())
	`

	if _, err := dbtx.Exec(ctx, sql, uuid.New(), kind, topic, payload); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
