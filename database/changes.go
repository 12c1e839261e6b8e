package database

import (
	"context"
	"sync"
)

// Table names carried by change notifications.
const (
	TablePlaces             = "places"
	TableEvents             = "events"
	TableAnnouncements      = "announcements"
	TableStudyGroups        = "study_groups"
	TableGroupMemberships   = "group_memberships"
	TableGroupAnnouncements = "group_announcements"
	TableGroupTasks         = "group_tasks"
)

// notifier receives the table name of every committed write.
type notifier interface {
	notify(table string)
}

// changeHub fans committed-write signals out to live-query subscribers.
// Sends never block; a slow subscriber coalesces signals and re-reads the
// current snapshot when it catches up.
type changeHub struct {
	mu   sync.Mutex
	next int
	subs map[int]*subscription
}

type subscription struct {
	tables map[string]struct{} // empty means every table
	ch     chan string
}

func newChangeHub() *changeHub {
	return &changeHub{subs: make(map[int]*subscription)}
}

func (h *changeHub) notify(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		if len(sub.tables) > 0 {
			if _, ok := sub.tables[table]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- table:
		default:
		}
	}
}

// subscribe registers interest in the given tables, or all tables when none
// are named. The subscription is torn down when ctx is cancelled.
func (h *changeHub) subscribe(ctx context.Context, tables ...string) <-chan string {
	sub := &subscription{ch: make(chan string, 16)}
	if len(tables) > 0 {
		sub.tables = make(map[string]struct{}, len(tables))
		for _, t := range tables {
			sub.tables[t] = struct{}{}
		}
	}

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = sub
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, id)
		close(sub.ch)
		h.mu.Unlock()
	}()

	return sub.ch
}

// recordingNotifier buffers table names written inside a transaction so the
// hub only hears about them after commit.
type recordingNotifier struct {
	mu     sync.Mutex
	order  []string
	seen   map[string]struct{}
}

func (r *recordingNotifier) notify(table string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, ok := r.seen[table]; ok {
		return
	}
	r.seen[table] = struct{}{}
	r.order = append(r.order, table)
}

func (r *recordingNotifier) changed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}
