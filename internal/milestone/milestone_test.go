package milestone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

var testNow = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func milestoneByID(t *testing.T, r Report, id string) Milestone {
	t.Helper()
	for _, m := range r.Milestones {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("milestone %q not found", id)
	return Milestone{}
}

func TestCompute_EmptySnapshot(t *testing.T) {
	r := Compute(Snapshot{}, testNow)

	require.Len(t, r.Milestones, 9)
	assert.Equal(t, 9, r.TotalCount)
	assert.Equal(t, 0, r.CompletedCount)

	for _, m := range r.Milestones {
		assert.Equal(t, StatusNotStarted, m.Status, "milestone %s", m.ID)
	}

	require.NotNil(t, r.NextMilestone)
	assert.Equal(t, IDVenue, r.NextMilestone.ID)
}

func TestCompute_FixedOrder(t *testing.T) {
	want := []string{
		IDVenue, IDSaveTheDates, IDVendors, IDRegistry, IDInvitations,
		IDRSVPs, IDFinalDetails, IDRehearsal, IDWeddingDay,
	}

	snapshots := []Snapshot{
		{},
		{
			Vendors:     []model.Vendor{{Category: "Venue", Status: "booked", Name: "Grand Hall"}},
			Guests:      []model.Guest{{RSVPStatus: "confirmed"}},
			Tasks:       []model.Task{{Title: "Order invitations", Status: "completed"}},
			Events:      []model.Event{{EventType: "rehearsal_dinner"}},
			WeddingDate: datePtr(2024, time.June, 1),
		},
	}

	for _, snap := range snapshots {
		r := Compute(snap, testNow)
		require.Len(t, r.Milestones, 9)
		for i, m := range r.Milestones {
			assert.Equal(t, want[i], m.ID)
		}
	}
}

func TestCompute_VenueBooked(t *testing.T) {
	snap := Snapshot{
		Vendors: []model.Vendor{
			{Category: "Venue", Status: "booked", Name: "Grand Hall"},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDVenue)
	assert.Equal(t, StatusComplete, m.Status)
	assert.Equal(t, "Grand Hall", m.Detail)
}

func TestCompute_VenueRequiresExactCategoryAndBooked(t *testing.T) {
	snap := Snapshot{
		Vendors: []model.Vendor{
			{Category: "venue", Status: "booked", Name: "lowercase category"},
			{Category: "Venue", Status: "contacted", Name: "not booked yet"},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDVenue)
	assert.Equal(t, StatusNotStarted, m.Status)
}

func TestCompute_KeywordMilestones(t *testing.T) {
	snap := Snapshot{
		Tasks: []model.Task{
			{Title: "Mail out SAVE THE DATE cards", Status: "completed"},
			{Title: "Build registry on three sites", Status: "completed"},
			{Title: "Address invitations", Status: "pending"}, // not completed
		},
	}
	r := Compute(snap, testNow)

	assert.Equal(t, StatusComplete, milestoneByID(t, r, IDSaveTheDates).Status)
	assert.Equal(t, StatusComplete, milestoneByID(t, r, IDRegistry).Status)
	assert.Equal(t, StatusNotStarted, milestoneByID(t, r, IDInvitations).Status)
}

func TestCompute_VendorsProgress(t *testing.T) {
	snap := Snapshot{
		Vendors: []model.Vendor{
			{Category: "Photography", Status: "booked", Name: "A"},
			{Category: "Catering", Status: "booked", Name: "B"},
			{Category: "Catering", Status: "booked", Name: "B2"}, // same category counts once
			{Category: "Florist", Status: "contacted", Name: "C"},
			{Category: "Venue", Status: "booked", Name: "excluded"},
			{Category: "Fireworks", Status: "booked", Name: "off-list"},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDVendors)
	assert.Equal(t, StatusInProgress, m.Status)
	assert.Equal(t, "2/8 booked", m.Detail)
}

func TestCompute_VendorsAllBooked(t *testing.T) {
	categories := []string{
		"Photography", "Videography", "Catering", "Florist",
		"Music/DJ", "Cake & Desserts", "Hair & Makeup", "Officiant",
	}
	var vendors []model.Vendor
	for _, c := range categories {
		vendors = append(vendors, model.Vendor{Category: c, Status: "booked", Name: c + " Co"})
	}

	r := Compute(Snapshot{Vendors: vendors}, testNow)

	m := milestoneByID(t, r, IDVendors)
	assert.Equal(t, StatusComplete, m.Status)
	assert.Equal(t, "8/8 booked", m.Detail)
}

func TestCompute_RSVPProgress(t *testing.T) {
	snap := Snapshot{
		Guests: []model.Guest{
			{RSVPStatus: "confirmed"},
			{RSVPStatus: "confirmed"},
			{RSVPStatus: "declined"},
			{RSVPStatus: "pending"},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDRSVPs)
	assert.Equal(t, StatusInProgress, m.Status)
	assert.Equal(t, "75% responded", m.Detail)
}

func TestCompute_RSVPEmptyGuestList(t *testing.T) {
	r := Compute(Snapshot{Guests: []model.Guest{}}, testNow)

	m := milestoneByID(t, r, IDRSVPs)
	assert.Equal(t, StatusNotStarted, m.Status)
	assert.Equal(t, "Add guests first", m.Detail)
}

func TestCompute_RSVPAllResponded(t *testing.T) {
	snap := Snapshot{
		Guests: []model.Guest{
			{RSVPStatus: "confirmed"},
			{RSVPStatus: "declined"},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDRSVPs)
	assert.Equal(t, StatusComplete, m.Status)
	assert.Equal(t, "100% responded", m.Detail)
}

func TestCompute_FinalDetailsWindow(t *testing.T) {
	snap := Snapshot{
		WeddingDate: datePtr(2025, time.June, 1),
		Tasks: []model.Task{
			{Title: "Seating chart", Status: "completed", DueDate: datePtr(2025, time.May, 15)},
			{Title: "Final headcount", Status: "pending", DueDate: datePtr(2025, time.May, 20)},
			{Title: "Outside window", Status: "pending", DueDate: datePtr(2025, time.April, 30)},
			{Title: "No due date", Status: "pending"},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDFinalDetails)
	assert.Equal(t, StatusInProgress, m.Status)
	assert.Equal(t, "1/2 tasks", m.Detail)
}

func TestCompute_FinalDetailsWindowIsInclusive(t *testing.T) {
	snap := Snapshot{
		WeddingDate: datePtr(2025, time.June, 1),
		Tasks: []model.Task{
			// exactly wedding_date - 1 month and wedding_date itself
			{Title: "Window start", Status: "completed", DueDate: datePtr(2025, time.May, 1)},
			{Title: "Window end", Status: "completed", DueDate: datePtr(2025, time.June, 1)},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDFinalDetails)
	assert.Equal(t, StatusComplete, m.Status)
	assert.Equal(t, "2/2 tasks", m.Detail)
}

func TestCompute_FinalDetailsNoWeddingDate(t *testing.T) {
	snap := Snapshot{
		Tasks: []model.Task{
			{Title: "Seating chart", Status: "completed", DueDate: datePtr(2025, time.May, 15)},
		},
	}
	r := Compute(snap, testNow)

	m := milestoneByID(t, r, IDFinalDetails)
	assert.Equal(t, StatusNotStarted, m.Status)
	assert.Equal(t, "No tasks due in the final month", m.Detail)
}

func TestCompute_RehearsalFromEvent(t *testing.T) {
	snap := Snapshot{
		Events: []model.Event{{EventType: "rehearsal_dinner"}},
	}
	r := Compute(snap, testNow)
	assert.Equal(t, StatusComplete, milestoneByID(t, r, IDRehearsal).Status)
}

func TestCompute_RehearsalFromTaskKeyword(t *testing.T) {
	snap := Snapshot{
		Tasks: []model.Task{{Title: "Book Rehearsal dinner spot", Status: "completed"}},
	}
	r := Compute(snap, testNow)
	assert.Equal(t, StatusComplete, milestoneByID(t, r, IDRehearsal).Status)

	// pending task does not count
	snap.Tasks[0].Status = "pending"
	r = Compute(snap, testNow)
	assert.Equal(t, StatusNotStarted, milestoneByID(t, r, IDRehearsal).Status)
}

func TestCompute_WeddingDay(t *testing.T) {
	past := datePtr(2025, time.January, 1)
	future := datePtr(2025, time.December, 31)

	r := Compute(Snapshot{WeddingDate: past}, testNow)
	assert.Equal(t, StatusComplete, milestoneByID(t, r, IDWeddingDay).Status)

	r = Compute(Snapshot{WeddingDate: future}, testNow)
	m := milestoneByID(t, r, IDWeddingDay)
	assert.Equal(t, StatusNotStarted, m.Status)
	assert.Equal(t, "December 31, 2025", m.Detail)

	// exactly now counts as arrived
	r = Compute(Snapshot{WeddingDate: &testNow}, testNow)
	assert.Equal(t, StatusComplete, milestoneByID(t, r, IDWeddingDay).Status)

	// terminal milestone carries no link
	assert.Empty(t, milestoneByID(t, r, IDWeddingDay).Link)
}

func TestCompute_CountsAndNext(t *testing.T) {
	snap := Snapshot{
		Vendors: []model.Vendor{{Category: "Venue", Status: "booked", Name: "Grand Hall"}},
		Tasks:   []model.Task{{Title: "save the date emails", Status: "completed"}},
	}
	r := Compute(snap, testNow)

	completed := 0
	for _, m := range r.Milestones {
		if m.Status == StatusComplete {
			completed++
		}
	}
	assert.Equal(t, completed, r.CompletedCount)
	assert.Equal(t, 2, r.CompletedCount)

	// next is the first non-complete in order: venue and save-the-dates are
	// done, so vendors is next
	require.NotNil(t, r.NextMilestone)
	assert.Equal(t, IDVendors, r.NextMilestone.ID)
}

func TestCompute_AllCompleteHasNoNext(t *testing.T) {
	categories := []string{
		"Photography", "Videography", "Catering", "Florist",
		"Music/DJ", "Cake & Desserts", "Hair & Makeup", "Officiant",
	}
	vendors := []model.Vendor{{Category: "Venue", Status: "booked", Name: "Grand Hall"}}
	for _, c := range categories {
		vendors = append(vendors, model.Vendor{Category: c, Status: "booked", Name: c})
	}

	weddingDate := datePtr(2025, time.January, 10) // already passed at testNow
	snap := Snapshot{
		Vendors: vendors,
		Guests:  []model.Guest{{RSVPStatus: "confirmed"}},
		Tasks: []model.Task{
			{Title: "send save the date cards", Status: "completed"},
			{Title: "create registry", Status: "completed"},
			{Title: "mail invitations", Status: "completed"},
			{Title: "final walkthrough", Status: "completed", DueDate: datePtr(2025, time.January, 5)},
		},
		Events:      []model.Event{{EventType: "rehearsal_dinner"}},
		WeddingDate: weddingDate,
	}

	r := Compute(snap, testNow)
	assert.Equal(t, 9, r.CompletedCount)
	assert.Nil(t, r.NextMilestone)
}

func TestCompute_Idempotent(t *testing.T) {
	snap := Snapshot{
		Vendors:     []model.Vendor{{Category: "Photography", Status: "booked", Name: "A"}},
		Guests:      []model.Guest{{RSVPStatus: "pending"}, {RSVPStatus: "confirmed"}},
		Tasks:       []model.Task{{Title: "registry setup", Status: "completed"}},
		WeddingDate: datePtr(2025, time.September, 1),
	}

	first := Compute(snap, testNow)
	second := Compute(snap, testNow)
	assert.Equal(t, first, second)
}
