package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

const (
	// ReminderLead is how far ahead of its time a follow-up is announced.
	ReminderLead = 5 * time.Minute
	// ReminderGrace is how long after its time an overdue follow-up is still announced.
	ReminderGrace = 60 * time.Minute
)

type IReminderUseCase interface {
	Due(now time.Time) []entities.FollowUp
	Notify(ctx context.Context) (int, error)
}

// ReminderUseCase announces pending follow-ups once per process lifetime.
type ReminderUseCase struct {
	ws       *Workspace
	notifier interfaces.INotifier
	loc      *time.Location
	now      func() time.Time
	log      *logrus.Entry

	mu       sync.Mutex
	notified map[string]struct{}
}

var _ IReminderUseCase = (*ReminderUseCase)(nil)

func NewReminderUseCase(ws *Workspace, notifier interfaces.INotifier, loc *time.Location) *ReminderUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderUseCase{
		ws:       ws,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
		log:      config.Module("reminder"),
		notified: make(map[string]struct{}),
	}
}

// Due lists the pending follow-ups inside the reminder window at now that were not announced yet.
func (u *ReminderUseCase) Due(now time.Time) []entities.FollowUp {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.FollowUp, 0)
	for _, f := range u.ws.FollowUps.List() {
		if f.Status != entities.FollowUpStatusPending {
			continue
		}
		if _, done := u.notified[f.ID]; done {
			continue
		}
		at, err := f.ScheduledAt(u.loc)
		if err != nil {
			continue
		}
		diff := at.Sub(now)
		if diff <= ReminderLead && diff > -ReminderGrace {
			out = append(out, f)
		}
	}
	return out
}

// Notify sends a reminder for every due follow-up and returns how many were sent.
// A follow-up whose notification fails is tried again on the next call.
func (u *ReminderUseCase) Notify(ctx context.Context) (int, error) {
	sent := 0
	var firstErr error
	for _, f := range u.Due(u.now()) {
		title, body := ReminderMessage(f)
		if err := u.notifier.Notify(ctx, title, body); err != nil {
			config.LogError(config.GetLogger(), "reminder", "Notify", "notification failed", logrus.Fields{"id": f.ID}, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		u.mu.Lock()
		u.notified[f.ID] = struct{}{}
		u.mu.Unlock()
		sent++
		u.log.WithField("id", f.ID).Info("follow-up reminder sent")
	}
	return sent, firstErr
}

func ReminderMessage(f entities.FollowUp) (title, body string) {
	return "Follow-up Reminder: " + f.CustomerName, fmt.Sprintf("Reason: %s\nTime: %s", f.Reason, f.Time)
}
