// Package cache provides caching decorators around the out-bound store ports.
package cache

import (
	"context"
	"fmt"
	"time"

	"ticketassign/core/domain"
	"ticketassign/core/port/out"
	pkgcache "ticketassign/pkg/cache"
)

// CachedSnapshotStore wraps out.SnapshotStore and caches the two lookups that
// change slowly relative to the assignment rate: the member roster and the
// holiday calendar. Tickets, leaves, and recent-assignment counts are never
// cached since they change with every assignment.
type CachedSnapshotStore struct {
	next       out.SnapshotStore
	cache      *pkgcache.RedisCache
	holidayTTL time.Duration
	memberTTL  time.Duration
}

// NewCachedSnapshotStore wraps next with a Redis-backed cache.
func NewCachedSnapshotStore(next out.SnapshotStore, cache *pkgcache.RedisCache, holidayTTL, memberTTL time.Duration) out.SnapshotStore {
	return &CachedSnapshotStore{next: next, cache: cache, holidayTTL: holidayTTL, memberTTL: memberTTL}
}

func (s *CachedSnapshotStore) ListMembers(ctx context.Context, roleFilter domain.Role) ([]domain.Member, error) {
	key := fmt.Sprintf("snapshot:members:%s", roleFilter)

	var members []domain.Member
	hit, err := s.cache.GetJSON(ctx, key, &members)
	if err == nil && hit {
		return members, nil
	}

	members, err = s.next.ListMembers(ctx, roleFilter)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, key, members, s.memberTTL)
	return members, nil
}

func (s *CachedSnapshotStore) ListActiveTickets(ctx context.Context, memberIDs []string) (map[string][]domain.ActiveTicket, error) {
	return s.next.ListActiveTickets(ctx, memberIDs)
}

func (s *CachedSnapshotStore) ListActiveLeaves(ctx context.Context, memberIDs []string, today string) (map[string]bool, error) {
	return s.next.ListActiveLeaves(ctx, memberIDs, today)
}

func (s *CachedSnapshotStore) ListHolidays(ctx context.Context, date string, regions []domain.Region) ([]domain.HolidayEntry, error) {
	key := fmt.Sprintf("snapshot:holidays:%s:%v", date, regions)

	var holidays []domain.HolidayEntry
	hit, err := s.cache.GetJSON(ctx, key, &holidays)
	if err == nil && hit {
		return holidays, nil
	}

	holidays, err = s.next.ListHolidays(ctx, date, regions)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, key, holidays, s.holidayTTL)
	return holidays, nil
}

func (s *CachedSnapshotStore) CountRecentAssignments(ctx context.Context, memberIDs []string, windowDays int) (map[string]int, error) {
	return s.next.CountRecentAssignments(ctx, memberIDs, windowDays)
}
