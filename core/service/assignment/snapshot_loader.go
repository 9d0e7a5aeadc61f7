package assignment

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ticketassign/core/domain"
	"ticketassign/core/port/out"
)

// windowDaysRecentAssignments is the lookback window for the
// recent-assignments fairness signal.
const windowDaysRecentAssignments = 7

// LoadSnapshot builds the point-in-time Snapshot for one AssignTicket call.
// ListMembers must resolve first since every other query is keyed by member
// id; the remaining four then fan out in parallel over the bounded errgroup,
// per §5's "independent queries may run concurrently" note. Any single query
// failing fails the whole load — the engine never scores against a partial
// snapshot.
func LoadSnapshot(ctx context.Context, store out.SnapshotStore, today string, nowUTCHour float64) (domain.Snapshot, error) {
	members, err := store.ListMembers(ctx, domain.RoleUser)
	if err != nil {
		return domain.Snapshot{}, errStore("list_members", err)
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}
	regions := memberRegions(members)

	var (
		activeTickets     map[string][]domain.ActiveTicket
		membersOnLeave    map[string]bool
		holidays          []domain.HolidayEntry
		recentAssignments map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tickets, err := store.ListActiveTickets(gctx, memberIDs)
		if err != nil {
			return errStore("list_active_tickets", err)
		}
		activeTickets = tickets
		return nil
	})
	g.Go(func() error {
		onLeave, err := store.ListActiveLeaves(gctx, memberIDs, today)
		if err != nil {
			return errStore("list_active_leaves", err)
		}
		membersOnLeave = onLeave
		return nil
	})
	g.Go(func() error {
		h, err := store.ListHolidays(gctx, today, regions)
		if err != nil {
			return errStore("list_holidays", err)
		}
		holidays = h
		return nil
	})
	g.Go(func() error {
		recent, err := store.CountRecentAssignments(gctx, memberIDs, windowDaysRecentAssignments)
		if err != nil {
			return errStore("count_recent_assignments", err)
		}
		recentAssignments = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, err
	}

	snap := domain.Snapshot{
		Members:           members,
		ActiveTickets:     activeTickets,
		MembersOnLeave:    membersOnLeave,
		Holidays:          holidays,
		RecentAssignments: recentAssignments,
		Today:             today,
		NowUTCHour:        nowUTCHour,
	}

	known := snap.MemberIDs()
	for id := range activeTickets {
		if !known[id] {
			return domain.Snapshot{}, errInvariant("active tickets reference unknown member " + id)
		}
	}
	for id := range membersOnLeave {
		if !known[id] {
			return domain.Snapshot{}, errInvariant("leave records reference unknown member " + id)
		}
	}
	for id := range recentAssignments {
		if !known[id] {
			return domain.Snapshot{}, errInvariant("recent assignments reference unknown member " + id)
		}
	}

	return snap, nil
}

// memberRegions returns the distinct regions represented by members, plus
// GLOBAL, so the holiday query never misses a region-wide entry.
func memberRegions(members []domain.Member) []domain.Region {
	seen := map[domain.Region]bool{domain.RegionGLOBAL: true}

	for _, m := range members {
		seen[m.Region()] = true
	}

	regions := make([]domain.Region, 0, len(seen))
	for r := range seen {
		regions = append(regions, r)
	}
	return regions
}
