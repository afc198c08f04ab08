package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository"
	"github.com/jwalitptl/dental-tech/internal/repository/rowmap"
)

type notificationRepository struct {
	*BaseRepository
}

func NewNotificationRepository(base *BaseRepository) repository.NotificationRepository {
	return &notificationRepository{
		BaseRepository: base,
	}
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*model.Notification, error) {
	query := fmt.Sprintf(`SELECT %s FROM notifications WHERE utilisateur_id = $1`, columns("", notificationColumns...))
	if unreadOnly {
		query += ` AND lue = FALSE`
	}
	query += ` ORDER BY "date" DESC, "time" DESC`

	return selectAll(ctx, r.BaseRepository, "Notification", "list_notifications", rowmap.MapNotification, query, userID)
}
