package analyzer

import (
	"testing"
	"time"

	"github.com/ccollicutt/logsift/pkg/parser"
)

func entry(ts string, user, context, ip string) parser.LogEntry {
	t, err := parser.ParseTimestamp(ts)
	if err != nil {
		panic(err)
	}
	return parser.LogEntry{
		Timestamp:    t,
		UserID:       user,
		EventContext: context,
		Component:    "auth",
		Event:        "login",
		IPAddress:    ip,
	}
}

func TestGenerateUserStats_EmptyInput(t *testing.T) {
	stats := GenerateUserStats(nil)
	if len(stats) != 0 {
		t.Errorf("Got %d stats, want 0", len(stats))
	}
}

func TestGenerateUserStats_SingleEntry(t *testing.T) {
	stats := GenerateUserStats([]parser.LogEntry{
		entry("2024-01-15 10:00:00", "u1", "web", "1.1.1.1"),
	})

	if len(stats) != 1 {
		t.Fatalf("Got %d stats, want 1", len(stats))
	}

	s := stats[0]
	if s.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", s.UserID)
	}
	if s.AccessCounter != 1 {
		t.Errorf("AccessCounter = %d, want 1", s.AccessCounter)
	}
	if s.UsageAge != 0 {
		t.Errorf("UsageAge = %v, want 0", s.UsageAge)
	}
	if !s.FirstTimestamp.Equal(s.LastTimestamp) {
		t.Errorf("FirstTimestamp %v != LastTimestamp %v", s.FirstTimestamp, s.LastTimestamp)
	}
}

func TestGenerateUserStats_Extrema(t *testing.T) {
	// Arrival order deliberately scrambled; extrema must not depend on it.
	stats := GenerateUserStats([]parser.LogEntry{
		entry("2024-01-15 13:00:00", "u1", "web", "1.1.1.1"),
		entry("2024-01-15 10:00:00", "u1", "web", "1.1.1.1"),
		entry("2024-01-15 11:30:00", "u1", "web", "1.1.1.1"),
	})

	if len(stats) != 1 {
		t.Fatalf("Got %d stats, want 1", len(stats))
	}

	s := stats[0]
	wantFirst := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	wantLast := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)
	if !s.FirstTimestamp.Equal(wantFirst) {
		t.Errorf("FirstTimestamp = %v, want %v", s.FirstTimestamp, wantFirst)
	}
	if !s.LastTimestamp.Equal(wantLast) {
		t.Errorf("LastTimestamp = %v, want %v", s.LastTimestamp, wantLast)
	}
	if s.AccessCounter != 3 {
		t.Errorf("AccessCounter = %d, want 3", s.AccessCounter)
	}
	if s.UsageAge != 3*3600 {
		t.Errorf("UsageAge = %v, want %v", s.UsageAge, 3*3600)
	}
}

func TestGenerateUserStats_SortedByUserID(t *testing.T) {
	stats := GenerateUserStats([]parser.LogEntry{
		entry("2024-01-15 10:00:00", "charlie", "web", "1.1.1.1"),
		entry("2024-01-15 10:00:00", "alice", "web", "1.1.1.1"),
		entry("2024-01-15 10:00:00", "bob", "web", "1.1.1.1"),
	})

	if len(stats) != 3 {
		t.Fatalf("Got %d stats, want 3", len(stats))
	}

	want := []string{"alice", "bob", "charlie"}
	for i := range want {
		if stats[i].UserID != want[i] {
			t.Errorf("stats[%d].UserID = %q, want %q", i, stats[i].UserID, want[i])
		}
	}
}

func TestGenerateUserStats_OneEntryPerDistinctUser(t *testing.T) {
	stats := GenerateUserStats([]parser.LogEntry{
		entry("2024-01-15 10:00:00", "u1", "web", "1.1.1.1"),
		entry("2024-01-15 11:00:00", "u2", "web", "2.2.2.2"),
		entry("2024-01-15 12:00:00", "u1", "web", "1.1.1.1"),
	})

	if len(stats) != 2 {
		t.Fatalf("Got %d stats, want 2", len(stats))
	}
	if stats[0].AccessCounter != 2 {
		t.Errorf("u1 AccessCounter = %d, want 2", stats[0].AccessCounter)
	}
	if stats[1].AccessCounter != 1 {
		t.Errorf("u2 AccessCounter = %d, want 1", stats[1].AccessCounter)
	}
}

func TestGenerateUserStats_DistinctSorted(t *testing.T) {
	stats := GenerateUserStats([]parser.LogEntry{
		entry("2024-01-15 10:00:00", "u1", "quiz", "9.9.9.9"),
		entry("2024-01-15 11:00:00", "u1", "forum", "1.1.1.1"),
		entry("2024-01-15 12:00:00", "u1", "quiz", "9.9.9.9"),
		entry("2024-01-15 13:00:00", "u1", "assignment", "1.1.1.1"),
	})

	if len(stats) != 1 {
		t.Fatalf("Got %d stats, want 1", len(stats))
	}

	s := stats[0]
	wantIPs := []string{"1.1.1.1", "9.9.9.9"}
	if len(s.IPAddresses) != len(wantIPs) {
		t.Fatalf("Got %d IPs, want %d", len(s.IPAddresses), len(wantIPs))
	}
	for i := range wantIPs {
		if s.IPAddresses[i] != wantIPs[i] {
			t.Errorf("IPAddresses[%d] = %q, want %q", i, s.IPAddresses[i], wantIPs[i])
		}
	}

	wantContexts := []string{"assignment", "forum", "quiz"}
	if len(s.EventContexts) != len(wantContexts) {
		t.Fatalf("Got %d contexts, want %d", len(s.EventContexts), len(wantContexts))
	}
	for i := range wantContexts {
		if s.EventContexts[i] != wantContexts[i] {
			t.Errorf("EventContexts[%d] = %q, want %q", i, s.EventContexts[i], wantContexts[i])
		}
	}
}

func TestGenerateUserStats_Invariants(t *testing.T) {
	stats := GenerateUserStats([]parser.LogEntry{
		entry("2024-01-15 10:00:00", "u1", "web", "1.1.1.1"),
		entry("2024-01-14 08:00:00", "u2", "web", "2.2.2.2"),
		entry("2024-01-15 23:59:59", "u2", "cli", "2.2.2.2"),
		entry("2024-01-15 12:00:00", "u1", "web", "5.5.5.5"),
	})

	for _, s := range stats {
		if s.FirstTimestamp.After(s.LastTimestamp) {
			t.Errorf("%s: FirstTimestamp after LastTimestamp", s.UserID)
		}
		if s.UsageAge < 0 {
			t.Errorf("%s: negative UsageAge %v", s.UserID, s.UsageAge)
		}
		if got := s.LastTimestamp.Sub(s.FirstTimestamp).Seconds(); s.UsageAge != got {
			t.Errorf("%s: UsageAge = %v, want %v", s.UserID, s.UsageAge, got)
		}
		if s.AccessCounter < 1 {
			t.Errorf("%s: AccessCounter = %d, want >= 1", s.UserID, s.AccessCounter)
		}
	}
}
