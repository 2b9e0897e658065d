// Package studio holds the in-memory authoring session: the ordered history
// of generated packages and the state machine over the active surface
// (creation form, history list, result viewer with its edit sub-mode).
package studio

import (
	"errors"
	"sync"

	"github.com/minsu-oh/hallabong/internal/models"
)

// Surface is the one screen the session considers active. Editing is a
// sub-mode of Viewing, not a surface of its own.
type Surface string

const (
	Creating        Surface = "CREATING"
	Viewing         Surface = "VIEWING"
	BrowsingHistory Surface = "BROWSING_HISTORY"
)

var (
	ErrNotCreating        = errors.New("creation form is not active")
	ErrNotViewing         = errors.New("no package is being viewed")
	ErrNotBrowsing        = errors.New("history list is not open")
	ErrEditing            = errors.New("body is open for editing")
	ErrNotEditing         = errors.New("no edit in progress")
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrNoSuchEntry        = errors.New("no such history entry")
)

// Session owns all history mutations. Every operation runs under one lock so
// a generation appends exactly once and deletion matches by identity even
// when handlers run on concurrent request goroutines.
type Session struct {
	mu sync.Mutex

	history []*models.ContentPackage // most-recent-first
	surface Surface

	viewed      *models.ContentPackage
	fromHistory bool // provenance of viewed: loaded from the list vs freshly generated
	editing     bool
	draft       string

	generating bool
	genToken   uint64 // ticket for the outstanding generation, if any
}

func NewSession() *Session {
	return &Session{surface: Creating}
}

// State is a point-in-time snapshot for rendering.
type State struct {
	Surface       Surface `json:"surface"`
	Editing       bool    `json:"editing"`
	Generating    bool    `json:"generating"`
	HistoryLength int     `json:"historyLength"`

	Viewed *models.ContentPackage `json:"viewed,omitempty"`
	Draft  string                 `json:"draft,omitempty"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Surface:       s.surface,
		Editing:       s.editing,
		Generating:    s.generating,
		HistoryLength: len(s.history),
	}
	if s.surface == Viewing {
		st.Viewed = s.viewed
		st.Draft = s.draft
	}
	return st
}

// History returns the stored packages, most recent first.
func (s *Session) History() []*models.ContentPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.ContentPackage, len(s.history))
	copy(out, s.history)
	return out
}

// BeginGeneration reserves the session for one outstanding generation and
// returns its ticket. Generation only starts from the creation form, and a
// second request is rejected until the first resolves or the user navigates
// away.
func (s *Session) BeginGeneration() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != Creating {
		return 0, ErrNotCreating
	}
	if s.generating {
		return 0, ErrGenerationInFlight
	}
	s.generating = true
	s.genToken++
	return s.genToken, nil
}

// CompleteGeneration applies a finished generation: the package is appended
// to history exactly once and becomes the viewed package. A stale ticket
// (the user navigated away and the session moved on) is discarded; the
// result is not applied anywhere and false is returned.
func (s *Session) CompleteGeneration(token uint64, pkg *models.ContentPackage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.genToken || !s.generating {
		return false
	}
	s.generating = false
	s.history = append([]*models.ContentPackage{pkg}, s.history...)
	s.viewed = pkg
	s.fromHistory = false
	s.editing = false
	s.draft = ""
	s.surface = Viewing
	return true
}

// FailGeneration records a failed generation. History is untouched and the
// surface stays Creating so the form can be resubmitted.
func (s *Session) FailGeneration(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.genToken {
		return
	}
	s.generating = false
}

// OpenHistory switches to the history list. Any in-flight generation is
// abandoned (its ticket invalidated, not cancelled) and any unsaved edit is
// discarded.
func (s *Session) OpenHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandonLocked()
	s.viewed = nil
	s.fromHistory = false
	s.editing = false
	s.draft = ""
	s.surface = BrowsingHistory
}

// StartNew returns to a blank creation form.
func (s *Session) StartNew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandonLocked()
	s.viewed = nil
	s.fromHistory = false
	s.editing = false
	s.draft = ""
	s.surface = Creating
}

// OpenFromHistory shows the history entry at index. The entry itself is
// viewed, not a copy, so a later edit-save mutates it in place.
func (s *Session) OpenFromHistory(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != BrowsingHistory {
		return ErrNotBrowsing
	}
	if index < 0 || index >= len(s.history) {
		return ErrNoSuchEntry
	}
	s.viewed = s.history[index]
	s.fromHistory = true
	s.editing = false
	s.draft = ""
	s.surface = Viewing
	return nil
}

// Back leaves the viewer: to the history list when the package was loaded
// from it, to the creation form when it was freshly generated. An unsaved
// edit is discarded.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != Viewing {
		return ErrNotViewing
	}
	s.editing = false
	s.draft = ""
	if s.fromHistory {
		s.surface = BrowsingHistory
	} else {
		s.surface = Creating
	}
	s.viewed = nil
	s.fromHistory = false
	return nil
}

// Delete removes the viewed package from history by identity and returns to
// the history list.
func (s *Session) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != Viewing {
		return ErrNotViewing
	}
	for i, pkg := range s.history {
		if pkg == s.viewed {
			s.history = append(s.history[:i], s.history[i+1:]...)
			break
		}
	}
	s.viewed = nil
	s.fromHistory = false
	s.editing = false
	s.draft = ""
	s.surface = BrowsingHistory
	return nil
}

// StartEdit opens the viewed package's body for free-text replacement.
func (s *Session) StartEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != Viewing || s.viewed == nil {
		return ErrNotViewing
	}
	if s.editing {
		return ErrEditing
	}
	s.editing = true
	s.draft = s.viewed.BlogPost.Body
	return nil
}

// SaveEdit replaces the viewed package's body with the edited text and
// leaves edit mode. The package is mutated in place; since history holds
// the same pointer, no duplicate entry is created.
func (s *Session) SaveEdit(body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing || s.viewed == nil {
		return ErrNotEditing
	}
	s.viewed.BlogPost.Body = body
	s.editing = false
	s.draft = ""
	return nil
}

// CancelEdit discards the draft and leaves edit mode.
func (s *Session) CancelEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return ErrNotEditing
	}
	s.editing = false
	s.draft = ""
	return nil
}

// Exportable returns the viewed package and its current body for export or
// clipboard use. Both are refused mid-edit so a half-typed body never
// leaves the session.
func (s *Session) Exportable() (*models.ContentPackage, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != Viewing || s.viewed == nil {
		return nil, "", ErrNotViewing
	}
	if s.editing {
		return nil, "", ErrEditing
	}
	return s.viewed, s.viewed.BlogPost.Body, nil
}

// abandonLocked invalidates the outstanding generation ticket, if any, so a
// late result is dropped instead of surfacing on whatever screen is active.
func (s *Session) abandonLocked() {
	if s.generating {
		s.generating = false
		s.genToken++
	}
}
