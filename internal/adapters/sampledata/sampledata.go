// Package sampledata is the in-memory data source behind the admin
// application-review and announcement screens. The backend does not expose
// admin routes for these two resources yet, so the screens run against
// seeded local data with the same paged list/mutate surface the list
// controller drives everywhere else.
package sampledata

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"scholardesk/internal/application/listutil"
	"scholardesk/internal/domain/announcement"
	"scholardesk/internal/domain/application"
)

// ErrNotFound is returned when an id does not match any row.
var ErrNotFound = errors.New("not found")

// Store holds the seeded rows. Safe for concurrent use.
type Store struct {
	mu            sync.Mutex
	applications  []application.Application
	announcements []announcement.Announcement
	nextAnnID     int
}

// New creates a Store seeded with representative review-pipeline data.
func New() *Store {
	now := time.Now()
	s := &Store{
		applications: []application.Application{
			{ID: 1, StudentID: "2021-00412", StudentName: "Maria Santos", ScholarshipID: 1, ScholarshipTitle: "Academic Excellence Scholarship", Status: application.StatusSubmitted, SubmittedAt: now.AddDate(0, 0, -6),
				UploadedForms: []application.UploadedForm{{FormName: "Income Certificate", FileRef: "uploads/2021-00412/income.pdf", UploadedAt: now.AddDate(0, 0, -6)}}},
			{ID: 2, StudentID: "2020-01533", StudentName: "Jose Ramirez", ScholarshipID: 1, ScholarshipTitle: "Academic Excellence Scholarship", Status: application.StatusReview, SubmittedAt: now.AddDate(0, 0, -9)},
			{ID: 3, StudentID: "2022-00087", StudentName: "Ana Dela Cruz", ScholarshipID: 2, ScholarshipTitle: "STEM Innovation Grant", Status: application.StatusInterview, SubmittedAt: now.AddDate(0, 0, -14)},
			{ID: 4, StudentID: "2019-02204", StudentName: "Carlo Reyes", ScholarshipID: 2, ScholarshipTitle: "STEM Innovation Grant", Status: application.StatusApproved, SubmittedAt: now.AddDate(0, 0, -21)},
			{ID: 5, StudentID: "2021-01178", StudentName: "Liza Mendoza", ScholarshipID: 1, ScholarshipTitle: "Academic Excellence Scholarship", Status: application.StatusGranted, SubmittedAt: now.AddDate(0, 0, -30)},
			{ID: 6, StudentID: "2022-00951", StudentName: "Ramon Aquino", ScholarshipID: 2, ScholarshipTitle: "STEM Innovation Grant", Status: application.StatusRejected, SubmittedAt: now.AddDate(0, 0, -11)},
		},
		announcements: []announcement.Announcement{
			{ID: 1, Title: "Scholarship applications now open", Description: "Applications for the **Academic Excellence Scholarship** are open until the posted end date. Submit all required forms before the deadline.", AuthorName: "Student Affairs Office", CreatedAt: now.AddDate(0, 0, -5)},
			{ID: 2, Title: "Interview schedule posted", Description: "Shortlisted applicants will receive their interview slot by email this week.", AuthorName: "Student Affairs Office", CreatedAt: now.AddDate(0, 0, -2)},
		},
		nextAnnID: 3,
	}
	return s
}

// ListApplications returns one page of applications, newest first.
// PRE: page >= 1, perPage > 0
// POST: items.len <= perPage; PageInfo invariants hold
func (s *Store) ListApplications(ctx context.Context, page, perPage int, search, status string) ([]application.Application, listutil.PageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []application.Application
	for _, a := range s.applications {
		if status != "" && status != "all" && a.Status != status {
			continue
		}
		if search != "" && !containsFold(a.StudentName, search) &&
			!containsFold(a.ScholarshipTitle, search) && !containsFold(a.StudentID, search) {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SubmittedAt.After(matched[j].SubmittedAt) })

	info := listutil.NewPageInfo(page, perPage, len(matched))
	return slicePage(matched, info), info, nil
}

// StatusCounts returns the number of applications per canonical status.
func (s *Store) StatusCounts(ctx context.Context) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int, len(application.ValidStatuses))
	for _, a := range s.applications {
		counts[a.Status]++
	}
	return counts
}

// AdvanceApplication moves an application one step along the pipeline.
// PRE: id identifies an existing application
// POST: status advanced, or ErrNotFound / domain transition error
func (s *Store) AdvanceApplication(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == id {
			return s.applications[i].Advance()
		}
	}
	return ErrNotFound
}

// RejectApplication marks an application rejected.
// PRE: id identifies an existing application
// POST: status rejected, or ErrNotFound / domain transition error
func (s *Store) RejectApplication(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == id {
			return s.applications[i].Reject()
		}
	}
	return ErrNotFound
}

// ListAnnouncements returns one page of announcements, newest first.
// PRE: page >= 1, perPage > 0
// POST: items.len <= perPage; PageInfo invariants hold
func (s *Store) ListAnnouncements(ctx context.Context, page, perPage int, search string) ([]announcement.Announcement, listutil.PageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []announcement.Announcement
	for _, a := range s.announcements {
		if search != "" && !containsFold(a.Title, search) && !containsFold(a.Description, search) {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	info := listutil.NewPageInfo(page, perPage, len(matched))
	return slicePage(matched, info), info, nil
}

// CreateAnnouncement adds an announcement.
// PRE: ann has been validated
// POST: announcement stored with a fresh id
func (s *Store) CreateAnnouncement(ctx context.Context, ann announcement.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ann.ID = s.nextAnnID
	s.nextAnnID++
	if ann.CreatedAt.IsZero() {
		ann.CreatedAt = time.Now()
	}
	s.announcements = append(s.announcements, ann)
	return nil
}

// UpdateAnnouncement replaces the title/description of an announcement.
// PRE: ann.ID identifies an existing announcement
// POST: row updated, or ErrNotFound
func (s *Store) UpdateAnnouncement(ctx context.Context, ann announcement.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.announcements {
		if s.announcements[i].ID == ann.ID {
			s.announcements[i].Title = ann.Title
			s.announcements[i].Description = ann.Description
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAnnouncement removes an announcement by id. Deleting an id that
// does not exist is an error result, never a panic; repeating the delete
// keeps returning ErrNotFound.
func (s *Store) DeleteAnnouncement(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func slicePage[T any](rows []T, info listutil.PageInfo) []T {
	start := (info.Page - 1) * info.PerPage
	if start >= len(rows) {
		return nil
	}
	end := start + info.PerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
