package projections

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"academy/internal/application/store"
	"academy/internal/domain/attendance"
	"academy/internal/domain/batch"
	"academy/internal/domain/inventory"
	"academy/internal/domain/payment"
	"academy/internal/domain/player"
	"academy/internal/domain/session"
	"academy/internal/domain/user"
)

var testNow = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func seedSnapshot(t *testing.T) store.Snapshot {
	t.Helper()
	snap, err := store.LoadSeed(testNow)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	return snap
}

// TestRevenueByMonth verifies month grouping in first-occurrence order.
func TestRevenueByMonth(t *testing.T) {
	snap := store.Snapshot{Payments: []payment.Payment{
		{ID: "1", PlayerID: "p1", Date: "2024-01-05", Amount: 100},
		{ID: "2", PlayerID: "p1", Date: "2024-01-20", Amount: 50},
		{ID: "3", PlayerID: "p2", Date: "2024-02-01", Amount: 75},
	}}

	want := []PeriodTotal{{Period: "2024-01", Amount: 150}, {Period: "2024-02", Amount: 75}}
	if diff := cmp.Diff(want, RevenueByMonth(snap)); diff != "" {
		t.Errorf("RevenueByMonth() mismatch (-want +got):\n%s", diff)
	}
	if got := TotalRevenue(snap); got != 225 {
		t.Errorf("TotalRevenue() = %d, want 225", got)
	}
}

// TestRevenueByDate_FirstOccurrenceOrder keeps unsorted ledger order until SortPeriods is applied.
func TestRevenueByDate_FirstOccurrenceOrder(t *testing.T) {
	snap := store.Snapshot{Payments: []payment.Payment{
		{Date: "2024-02-10", Amount: 10},
		{Date: "2024-01-01", Amount: 5},
		{Date: "2024-02-10", Amount: 1},
	}}

	got := RevenueByDate(snap)
	want := []PeriodTotal{{Period: "2024-02-10", Amount: 11}, {Period: "2024-01-01", Amount: 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RevenueByDate() mismatch (-want +got):\n%s", diff)
	}

	sorted := SortPeriods(got)
	if sorted[0].Period != "2024-01-01" {
		t.Errorf("SortPeriods()[0] = %s, want 2024-01-01", sorted[0].Period)
	}
	if got[0].Period != "2024-02-10" {
		t.Error("SortPeriods modified its input")
	}
	if len(RevenueByDate(store.Snapshot{})) != 0 {
		t.Error("empty ledger should give no periods")
	}
}

// TestAttendanceRate verifies the rounded percentage and the zero-record case.
func TestAttendanceRate(t *testing.T) {
	snap := store.Snapshot{
		Batches:  []batch.Batch{{ID: "b1", Name: "Juniors"}, {ID: "b2", Name: "Empty"}},
		Sessions: []session.Session{{ID: "s1", BatchID: "b1"}, {ID: "s2", BatchID: "other"}},
		Attendance: []attendance.Record{
			{SessionID: "s1", PlayerID: "p1", Status: attendance.StatusPresent},
			{SessionID: "s1", PlayerID: "p2", Status: attendance.StatusPresent},
			{SessionID: "s1", PlayerID: "p3", Status: attendance.StatusAbsent},
			{SessionID: "s2", PlayerID: "p4", Status: attendance.StatusAbsent},
		},
	}

	if got := AttendanceRate(snap, "b1"); got != 67 {
		t.Errorf("AttendanceRate(b1) = %d, want 67", got)
	}
	if got := AttendanceRate(snap, "b2"); got != 0 {
		t.Errorf("AttendanceRate(b2) = %d, want 0", got)
	}

	rates := BatchAttendanceRates(snap)
	want := []BatchAttendanceRate{
		{BatchID: "b1", BatchName: "Juniors", Records: 3, Present: 2, Rate: 67},
		{BatchID: "b2", BatchName: "Empty"},
	}
	if diff := cmp.Diff(want, rates); diff != "" {
		t.Errorf("BatchAttendanceRates() mismatch (-want +got):\n%s", diff)
	}
}

// TestCoachPay verifies hours times hourly rate and the unset-rate default.
func TestCoachPay(t *testing.T) {
	snap := store.Snapshot{
		Users: []user.User{
			{ID: "c1", Name: "Rated", Role: user.RoleCoach, HourlyRate: 50},
			{ID: "c2", Name: "Unrated", Role: user.RoleAdmin},
			{ID: "g1", Name: "Guardian", Role: user.RoleParent},
		},
		Sessions: []session.Session{
			{ID: "s1", CoachID: "c1", DurationMinutes: 90},
			{ID: "s2", CoachID: "c1", DurationMinutes: 90},
			{ID: "s3", CoachID: "c2", DurationMinutes: 60},
		},
	}

	if got := CoachPay(snap, "c1"); got != 150 {
		t.Errorf("CoachPay(c1) = %v, want 150", got)
	}
	if got := CoachPay(snap, "c2"); got != 0 {
		t.Errorf("CoachPay(c2) = %v, want 0", got)
	}
	if got := CoachPay(snap, "missing"); got != 0 {
		t.Errorf("CoachPay(missing) = %v, want 0", got)
	}

	estimates := QueryGetCoachPayEstimates(snap)
	if len(estimates) != 2 {
		t.Fatalf("estimates = %d, want 2 (coach and admin)", len(estimates))
	}
	if estimates[0].Hours != 3 || estimates[0].Sessions != 2 || estimates[0].Pay != 150 {
		t.Errorf("c1 estimate = %+v", estimates[0])
	}
	if estimates[1].CoachID != "c2" || estimates[1].Hours != 1 {
		t.Errorf("c2 estimate = %+v", estimates[1])
	}
}

// TestLowStockItems verifies the threshold boundary is inclusive.
func TestLowStockItems(t *testing.T) {
	snap := store.Snapshot{Inventory: []inventory.Item{
		{ID: "equal", Quantity: 5, MinThreshold: 5},
		{ID: "above", Quantity: 6, MinThreshold: 5},
		{ID: "below", Quantity: 0, MinThreshold: 1},
	}}

	var ids []string
	for _, it := range LowStockItems(snap) {
		ids = append(ids, it.ID)
	}
	if diff := cmp.Diff([]string{"equal", "below"}, ids); diff != "" {
		t.Errorf("LowStockItems() mismatch (-want +got):\n%s", diff)
	}
}

// TestOutstandingFees verifies totals of negative balances only.
func TestOutstandingFees(t *testing.T) {
	snap := store.Snapshot{Players: []player.Player{
		{ID: "a", Name: "A", Balance: -300},
		{ID: "b", Name: "B", Balance: 150},
		{ID: "c", Name: "C", Balance: -50, GuardianName: "Mrs. C", ContactEmail: "c@example.com"},
		{ID: "d", Name: "D"},
	}}

	got := OutstandingFees(snap)
	if got.TotalOutstanding != 350 || got.PlayersOwing != 2 {
		t.Errorf("OutstandingFees() = %+v, want {350 2}", got)
	}

	owing := PlayersOwing(snap)
	if len(owing) != 2 || owing[0].PlayerID != "a" || owing[1].PlayerID != "c" {
		t.Fatalf("PlayersOwing() = %+v", owing)
	}
	if owing[1].ContactName != "Mrs. C" || owing[1].Owed != 50 {
		t.Errorf("owing[1] = %+v", owing[1])
	}
}

// TestActiveStudentCount verifies only active players of the batch are counted.
func TestActiveStudentCount(t *testing.T) {
	snap := seedSnapshot(t)

	if got := ActiveStudentCount(snap, "b1"); got != 2 {
		t.Errorf("ActiveStudentCount(b1) = %d, want 2", got)
	}
	summaries := QueryGetBatchSummaries(snap)
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}
	if summaries[0].CoachName != "Coach Mike" || summaries[0].ActiveStudents != 2 {
		t.Errorf("b1 summary = %+v", summaries[0])
	}
	if summaries[2].ActiveStudents != 0 {
		t.Errorf("b3 active = %d, want 0", summaries[2].ActiveStudents)
	}
}

// TestQueryGetDashboard verifies the headline figures of the seeded academy.
func TestQueryGetDashboard(t *testing.T) {
	snap := seedSnapshot(t)
	d := QueryGetDashboard(snap, testNow)

	if d.TotalPlayers != 4 || d.ActiveBatches != 3 {
		t.Errorf("players/batches = %d/%d, want 4/3", d.TotalPlayers, d.ActiveBatches)
	}
	// a1 is present on today's session, a2 is late.
	if d.TodaysAttendance != 1 {
		t.Errorf("TodaysAttendance = %d, want 1", d.TodaysAttendance)
	}
	if d.PendingFees.TotalOutstanding != 300 || d.PendingFees.PlayersOwing != 1 {
		t.Errorf("PendingFees = %+v", d.PendingFees)
	}
	if len(d.TodaysSessions) != 1 || d.TodaysSessions[0].ID != "s1" || d.TodaysSessions[0].CoachName != "Coach Mike" {
		t.Errorf("TodaysSessions = %+v", d.TodaysSessions)
	}
	if len(d.TomorrowSessions) != 1 || d.TomorrowSessions[0].BatchName != "Advanced Youth" {
		t.Errorf("TomorrowSessions = %+v", d.TomorrowSessions)
	}
	if d.OpenLeads != 2 {
		t.Errorf("OpenLeads = %d, want 2", d.OpenLeads)
	}
	if len(d.Revenue) != 2 {
		t.Errorf("Revenue periods = %d, want 2", len(d.Revenue))
	}
}

// TestTodaysAttendanceCount ignores sessions on other days.
func TestTodaysAttendanceCount(t *testing.T) {
	snap := seedSnapshot(t)
	snap = store.Reduce(snap, store.RecordAttendance{Record: attendance.Record{SessionID: "s2", PlayerID: "p3", Status: attendance.StatusPresent}})

	if got := TodaysAttendanceCount(snap, "2024-03-04"); got != 1 {
		t.Errorf("today = %d, want 1", got)
	}
	if got := TodaysAttendanceCount(snap, "2024-03-05"); got != 1 {
		t.Errorf("tomorrow = %d, want 1", got)
	}
	if got := TodaysAttendanceCount(snap, "1999-01-01"); got != 0 {
		t.Errorf("no sessions = %d, want 0", got)
	}
}

// TestQueryGetPlayerAttendance verifies attended counts include late arrivals.
func TestQueryGetPlayerAttendance(t *testing.T) {
	snap := seedSnapshot(t)

	got := QueryGetPlayerAttendance(snap, "p2")
	if got.Total != 1 || got.Attended != 1 {
		t.Errorf("p2 summary = %+v, want 1 of 1", got)
	}
	if diff := cmp.Diff([]string{"Forgot racket."}, got.Notes); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}

	none := QueryGetPlayerAttendance(snap, "p4")
	if none.Total != 0 || len(none.Notes) != 0 {
		t.Errorf("p4 summary = %+v", none)
	}
}
