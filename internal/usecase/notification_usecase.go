package usecase

import (
	"context"

	"repair_hub/internal/domain/entities"
)

// INotificationUseCase hands pending reconciliation failures to the UI.
type INotificationUseCase interface {
	Drain(ctx context.Context, session entities.Session) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	workspaces *WorkspaceRegistry
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(workspaces *WorkspaceRegistry) *NotificationUseCase {
	return &NotificationUseCase{workspaces: workspaces}
}

func (u *NotificationUseCase) Drain(_ context.Context, session entities.Session) ([]entities.Notification, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return nil, err
	}
	return ws.Inbox().Drain(), nil
}
