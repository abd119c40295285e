package api

import (
	"context"

	"github.com/iudanet/medkeeper/internal/models"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет операции сервиса записей, которые нужны клиенту.
// Все операции ограничены userID и не изменяют локальное состояние.
type ClientAPI interface {
	// List returns the full snapshot of the user's remote records
	List(ctx context.Context, userID int64) ([]models.Record, error)

	// Create returns the record with the server-assigned RemoteID
	Create(ctx context.Context, userID int64, fields models.Fields, clientRef string) (*models.Record, error)

	// Update replaces fields of a remote record
	Update(ctx context.Context, userID, remoteID int64, fields models.Fields) error

	// Delete removes a remote record; not found is success
	Delete(ctx context.Context, userID, remoteID int64) error
}

var _ ClientAPI = (*Client)(nil)
