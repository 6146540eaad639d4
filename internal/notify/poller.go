// Package notify maintains the polled notification cache for the signed-in
// user. The cache is point-in-time: between polls it may trail the backend.
package notify

import (
	"context"
	"sync"
	"time"

	"campusgig/internal/api"
	"campusgig/internal/logger"
	"campusgig/internal/models"
)

// DefaultInterval matches the panel's refresh cadence.
const DefaultInterval = 30 * time.Second

// Poller fetches notifications on start, on a fixed interval and on demand.
type Poller struct {
	client   *api.Client
	userID   string
	interval time.Duration

	mu      sync.RWMutex
	items   []models.Notification
	running bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller builds a poller for one user. interval <= 0 falls back to
// DefaultInterval.
func NewPoller(client *api.Client, userID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		client:   client,
		userID:   userID,
		interval: interval,
	}
}

// Start performs an initial refresh and launches the poll loop. The loop stops
// when ctx is cancelled or Stop is called, so an unmounting view never leaves
// an orphaned timer behind. Calling Start on a poller that is already running
// is a no-op; the first loop keeps its cancel handle.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	if err := p.Refresh(ctx); err != nil {
		logger.PollLog(p.userID, 0, err)
	}

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("notification poller stopped", "user_id", p.userID)
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				logger.PollLog(p.userID, 0, err)
			}
		}
	}
}

// Stop cancels the poll loop and waits for it to exit. After Stop the poller
// may be started again.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()
}

// Refresh replaces the cache with the backend's current list, used by the
// loop and on demand when the panel opens.
func (p *Poller) Refresh(ctx context.Context) error {
	items, err := p.client.UserNotifications(ctx, p.userID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
	logger.PollLog(p.userID, len(items), nil)
	return nil
}

// Notifications returns a copy of the cache in server order (most recent
// first).
func (p *Poller) Notifications() []models.Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Notification, len(p.items))
	copy(out, p.items)
	return out
}

// UnreadCount derives the badge count from the local cache.
func (p *Poller) UnreadCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	count := 0
	for _, n := range p.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips the local read flag immediately, then confirms with the
// backend. A failed confirmation is reported but the local flag stays set;
// the next poll reconciles. Accepted staleness tradeoff.
func (p *Poller) MarkRead(ctx context.Context, notificationID string) error {
	p.mu.Lock()
	for i := range p.items {
		if p.items[i].ID == notificationID {
			p.items[i].Read = true
			break
		}
	}
	p.mu.Unlock()

	if err := p.client.MarkNotificationRead(ctx, notificationID); err != nil {
		logger.WithError(err).Warn("mark-read not confirmed", "notification_id", notificationID)
		return err
	}
	return nil
}

// MarkAllRead is the bulk variant of MarkRead, same optimistic contract.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	p.mu.Lock()
	for i := range p.items {
		p.items[i].Read = true
	}
	p.mu.Unlock()

	if err := p.client.MarkAllNotificationsRead(ctx, p.userID); err != nil {
		logger.WithError(err).Warn("mark-all-read not confirmed", "user_id", p.userID)
		return err
	}
	return nil
}

// Delete removes the notification locally only after the backend confirms.
func (p *Poller) Delete(ctx context.Context, notificationID string) error {
	if err := p.client.DeleteNotification(ctx, notificationID); err != nil {
		return err
	}
	p.mu.Lock()
	kept := p.items[:0]
	for _, n := range p.items {
		if n.ID != notificationID {
			kept = append(kept, n)
		}
	}
	p.items = kept
	p.mu.Unlock()
	return nil
}
