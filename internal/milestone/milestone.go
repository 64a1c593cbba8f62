// Package milestone derives a wedding's planning progress from the current
// state of its vendors, guests, tasks and events. The computation is a pure
// function over a snapshot: nothing is persisted and nothing is remembered
// between calls.
package milestone

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

// Status of a single milestone.
const (
	StatusComplete   = "complete"
	StatusInProgress = "in_progress"
	StatusNotStarted = "not_started"
)

// Milestone IDs in their fixed display order.
const (
	IDVenue        = "venue"
	IDSaveTheDates = "save-the-dates"
	IDVendors      = "vendors"
	IDRegistry     = "registry"
	IDInvitations  = "invitations"
	IDRSVPs        = "rsvps"
	IDFinalDetails = "final-details"
	IDRehearsal    = "rehearsal"
	IDWeddingDay   = "wedding-day"
)

// TotalCount is the number of milestones in every report.
const TotalCount = 9

// coreVendorCategories are the non-venue categories a fully planned wedding
// is expected to book.
var coreVendorCategories = []string{
	"Photography",
	"Videography",
	"Catering",
	"Florist",
	"Music/DJ",
	"Cake & Desserts",
	"Hair & Makeup",
	"Officiant",
}

type Milestone struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Detail      string `json:"detail"`
	Link        string `json:"link,omitempty"`
	LinkLabel   string `json:"link_label,omitempty"`
}

type Report struct {
	Milestones     []Milestone `json:"milestones"`
	NextMilestone  *Milestone  `json:"next_milestone"`
	CompletedCount int         `json:"completed_count"`
	TotalCount     int         `json:"total_count"`
}

// Snapshot is one tenant's read-only input. Callers substitute empty slices
// for collections they could not load and nil for a missing or unparseable
// wedding date; the engine never errors on well-typed input.
type Snapshot struct {
	Vendors     []model.Vendor
	Guests      []model.Guest
	Tasks       []model.Task
	Events      []model.Event
	WeddingDate *time.Time
}

// Compute derives the nine-milestone report from a snapshot. The clock is an
// argument because the wedding-day milestone depends on it; everything else
// is a function of the snapshot alone.
func Compute(snap Snapshot, now time.Time) Report {
	milestones := []Milestone{
		venueMilestone(snap.Vendors),
		keywordMilestone(snap.Tasks, IDSaveTheDates, "save the date",
			"Save the dates", "Let guests know the date early",
			"Save the dates sent", "Send your save the dates",
			"/timeline", "View timeline"),
		vendorsMilestone(snap.Vendors),
		keywordMilestone(snap.Tasks, IDRegistry, "registry",
			"Registry", "Set up a gift registry",
			"Registry created", "Set up your registry",
			"/timeline", "View timeline"),
		keywordMilestone(snap.Tasks, IDInvitations, "invitation",
			"Invitations", "Send formal invitations",
			"Invitations sent", "Send your invitations",
			"/timeline", "View timeline"),
		rsvpMilestone(snap.Guests),
		finalDetailsMilestone(snap.Tasks, snap.WeddingDate),
		rehearsalMilestone(snap.Events, snap.Tasks),
		weddingDayMilestone(snap.WeddingDate, now),
	}

	report := Report{
		Milestones: milestones,
		TotalCount: TotalCount,
	}

	for i := range milestones {
		if milestones[i].Status == StatusComplete {
			report.CompletedCount++
		} else if report.NextMilestone == nil {
			report.NextMilestone = &milestones[i]
		}
	}

	return report
}

// venueMilestone is complete once any vendor in the exact "Venue" category
// is booked. The detail names the booked venue.
func venueMilestone(vendors []model.Vendor) Milestone {
	m := Milestone{
		ID:          IDVenue,
		Label:       "Book your venue",
		Description: "Lock in the place before anything else",
		Status:      StatusNotStarted,
		Detail:      "Find and book your venue",
		Link:        "/vendors",
		LinkLabel:   "Browse venues",
	}

	for _, v := range vendors {
		if v.Category == model.VenueCategory && v.Status == model.VendorBooked {
			m.Status = StatusComplete
			m.Detail = v.Name
			break
		}
	}

	return m
}

// keywordMilestone is the shared shape of the save-the-dates, registry and
// invitations milestones: complete once any completed task title contains
// the keyword, case-insensitively.
func keywordMilestone(tasks []model.Task, id, keyword, label, description, doneDetail, todoDetail, link, linkLabel string) Milestone {
	m := Milestone{
		ID:          id,
		Label:       label,
		Description: description,
		Status:      StatusNotStarted,
		Detail:      todoDetail,
		Link:        link,
		LinkLabel:   linkLabel,
	}

	if anyCompletedTaskContains(tasks, keyword) {
		m.Status = StatusComplete
		m.Detail = doneDetail
	}

	return m
}

func anyCompletedTaskContains(tasks []model.Task, keyword string) bool {
	for _, t := range tasks {
		if t.Status != model.TaskCompleted {
			continue
		}
		if strings.Contains(strings.ToLower(t.Title), keyword) {
			return true
		}
	}
	return false
}

// vendorsMilestone counts distinct core categories with at least one booked
// vendor. The Venue category is tracked by its own milestone and excluded.
func vendorsMilestone(vendors []model.Vendor) Milestone {
	booked := make(map[string]bool)
	for _, v := range vendors {
		if v.Category == model.VenueCategory {
			continue
		}
		if v.Status == model.VendorBooked {
			booked[v.Category] = true
		}
	}

	count := 0
	for _, category := range coreVendorCategories {
		if booked[category] {
			count++
		}
	}

	status := StatusNotStarted
	switch {
	case count == len(coreVendorCategories):
		status = StatusComplete
	case count > 0:
		status = StatusInProgress
	}

	return Milestone{
		ID:          IDVendors,
		Label:       "Book your vendors",
		Description: "Photographer, caterer, florist and the rest",
		Status:      status,
		Detail:      fmt.Sprintf("%d/%d booked", count, len(coreVendorCategories)),
		Link:        "/vendors",
		LinkLabel:   "Manage vendors",
	}
}

// rsvpMilestone tracks the share of guests who have responded either way.
// An empty guest list is never treated as fully responded.
func rsvpMilestone(guests []model.Guest) Milestone {
	m := Milestone{
		ID:          IDRSVPs,
		Label:       "Collect RSVPs",
		Description: "Hear back from every guest",
		Status:      StatusNotStarted,
		Detail:      "Add guests first",
		Link:        "/guests",
		LinkLabel:   "Manage guests",
	}

	total := len(guests)
	if total == 0 {
		return m
	}

	responded := 0
	for _, g := range guests {
		if g.RSVPStatus != model.RSVPPending {
			responded++
		}
	}

	pct := int(math.Round(float64(responded) / float64(total) * 100))
	m.Detail = fmt.Sprintf("%d%% responded", pct)

	switch {
	case responded == total:
		m.Status = StatusComplete
	case responded > 0:
		m.Status = StatusInProgress
	}

	return m
}

// finalDetailsMilestone looks at tasks due inside the last calendar month
// before the wedding, [wedding date - 1 month, wedding date] inclusive.
// Without a wedding date there is no window and the milestone stays
// not_started.
func finalDetailsMilestone(tasks []model.Task, weddingDate *time.Time) Milestone {
	m := Milestone{
		ID:          IDFinalDetails,
		Label:       "Final details",
		Description: "Wrap up the last-month checklist",
		Status:      StatusNotStarted,
		Detail:      "No tasks due in the final month",
		Link:        "/timeline",
		LinkLabel:   "View timeline",
	}

	if weddingDate == nil {
		return m
	}

	windowStart := weddingDate.AddDate(0, -1, 0)

	total := 0
	completed := 0
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		due := *t.DueDate
		if due.Before(windowStart) || due.After(*weddingDate) {
			continue
		}
		total++
		if t.Status == model.TaskCompleted {
			completed++
		}
	}

	if total == 0 {
		return m
	}

	m.Detail = fmt.Sprintf("%d/%d tasks", completed, total)
	switch {
	case completed == total:
		m.Status = StatusComplete
	case completed > 0:
		m.Status = StatusInProgress
	}

	return m
}

// rehearsalMilestone is complete when a rehearsal dinner event exists or a
// completed task title mentions a rehearsal.
func rehearsalMilestone(events []model.Event, tasks []model.Task) Milestone {
	m := Milestone{
		ID:          IDRehearsal,
		Label:       "Plan the rehearsal",
		Description: "Schedule the rehearsal dinner",
		Status:      StatusNotStarted,
		Detail:      "Plan your rehearsal dinner",
		Link:        "/events",
		LinkLabel:   "Manage events",
	}

	planned := false
	for _, e := range events {
		if e.EventType == model.EventRehearsalDinner {
			planned = true
			break
		}
	}
	if !planned {
		planned = anyCompletedTaskContains(tasks, "rehearsal")
	}

	if planned {
		m.Status = StatusComplete
		m.Detail = "Rehearsal planned"
	}

	return m
}

// weddingDayMilestone is the terminal milestone and the only time-dependent
// one: it completes once the wedding date has arrived. It carries no link.
func weddingDayMilestone(weddingDate *time.Time, now time.Time) Milestone {
	m := Milestone{
		ID:          IDWeddingDay,
		Label:       "Wedding day",
		Description: "The big day itself",
		Status:      StatusNotStarted,
		Detail:      "Set your wedding date",
	}

	if weddingDate == nil {
		return m
	}

	if !weddingDate.After(now) {
		m.Status = StatusComplete
		m.Detail = "Congratulations!"
	} else {
		m.Detail = weddingDate.Format("January 2, 2006")
	}

	return m
}
