package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"construction_console/internal/domain/entities"
	mock_interfaces "construction_console/internal/usecase/interfaces/mocks"
)

func TestReminderUseCase_Due(t *testing.T) {
	ws := NewWorkspace(Repositories{})
	uc := NewReminderUseCase(ws, nil, time.UTC)
	now := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)

	ws.FollowUps.Replace([]entities.FollowUp{
		{ID: "soon", Date: "2025-03-07", Time: "10:05", Status: entities.FollowUpStatusPending},
		{ID: "too-early", Date: "2025-03-07", Time: "10:06", Status: entities.FollowUpStatusPending},
		{ID: "overdue", Date: "2025-03-07", Time: "09:01", Status: entities.FollowUpStatusPending},
		{ID: "stale", Date: "2025-03-07", Time: "09:00", Status: entities.FollowUpStatusPending},
		{ID: "done", Date: "2025-03-07", Time: "10:00", Status: entities.FollowUpStatusCompleted},
		{ID: "default-time", Date: "2025-03-07", Status: entities.FollowUpStatusPending},
		{ID: "broken", Date: "tomorrow", Status: entities.FollowUpStatusPending},
	})

	got := map[string]bool{}
	for _, f := range uc.Due(now) {
		got[f.ID] = true
	}
	want := map[string]bool{"soon": true, "overdue": true, "default-time": true}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for id := range want {
		if !got[id] {
			t.Fatalf("expected %s to be due, got %v", id, got)
		}
	}
}

func TestReminderUseCase_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	ws := NewWorkspace(Repositories{})
	uc := NewReminderUseCase(ws, notifier, time.UTC)
	uc.now = func() time.Time { return time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC) }

	ws.FollowUps.Replace([]entities.FollowUp{
		{ID: "a", CustomerName: "Asha Patel", Reason: "site visit", Date: "2025-03-07", Time: "10:00", Status: entities.FollowUpStatusPending},
		{ID: "b", CustomerName: "Ravi Shah", Reason: "quote", Date: "2025-03-07", Time: "10:02", Status: entities.FollowUpStatusPending},
	})

	gomock.InOrder(
		notifier.EXPECT().Notify(gomock.Any(), "Follow-up Reminder: Asha Patel", "Reason: site visit\nTime: 10:00").Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), "Follow-up Reminder: Ravi Shah", gomock.Any()).Return(errors.New("twilio: 503")),
		notifier.EXPECT().Notify(gomock.Any(), "Follow-up Reminder: Ravi Shah", gomock.Any()).Return(nil),
	)

	sent, err := uc.Notify(context.Background())
	if sent != 1 || err == nil {
		t.Fatalf("expected one sent and an error, got %d %v", sent, err)
	}
	sent, err = uc.Notify(context.Background())
	if sent != 1 || err != nil {
		t.Fatalf("expected retry of the failed reminder only, got %d %v", sent, err)
	}
	sent, err = uc.Notify(context.Background())
	if sent != 0 || err != nil {
		t.Fatalf("expected nothing left, got %d %v", sent, err)
	}
}
