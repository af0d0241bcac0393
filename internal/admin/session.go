// Package admin holds the editing-session state machine behind the admin
// panel: per-entity drafts, the generic CRUD list workflow and the
// about-screen batch sync.
package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/models"

	"golang.org/x/sync/errgroup"
)

const defaultNoticeTTL = 3 * time.Second

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notification is the transient save/reset feedback banner. It dismisses
// itself after the session's notice TTL.
type Notification struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// DraftSet is a snapshot of every entity draft, as loaded from the store.
// Singleton pointers are nil while no row exists; the admin edits raw
// store state, defaults only apply on the public side.
type DraftSet struct {
	Hero         *models.HeroContent       `json:"hero"`
	About        *models.AboutContent      `json:"about"`
	Skills       []models.Skill            `json:"skills"`
	TechStack    []models.TechStack        `json:"tech_stack"`
	Achievements []models.Achievement      `json:"achievements"`
	Education    []models.Education        `json:"education"`
	SocialLinks  []models.SocialLink       `json:"social_links"`
	Settings     *models.PortfolioSettings `json:"settings"`
	Projects     []models.QAProject        `json:"projects"`
}

// Session owns the in-memory drafts for one admin editing session and
// coordinates save/reset feedback. Per action the state machine runs
// idle -> saving -> success|error -> idle; the saving flag must gate
// further saves while true.
type Session struct {
	mu     sync.Mutex
	source content.Source

	drafts DraftSet

	// Skills and tech stack are edited in local-draft mode so the about
	// screen can commit all three pieces as one batch.
	skillsCtl *ListController[models.Skill]
	techCtl   *ListController[models.TechStack]

	saving      bool
	notice      *Notification
	noticeTimer *time.Timer
	noticeTTL   time.Duration
}

func NewSession(source content.Source) *Session {
	s := &Session{source: source, noticeTTL: defaultNoticeTTL}
	s.skillsCtl = NewLocalList(
		func(item models.Skill) string { return item.ID },
		func(item *models.Skill, id string) { item.ID = id },
		&s.drafts.Skills,
	)
	s.techCtl = NewLocalList(
		func(item models.TechStack) string { return item.ID },
		func(item *models.TechStack, id string) { item.ID = id },
		&s.drafts.TechStack,
	)
	return s
}

// SetNoticeTTL overrides the auto-dismiss delay.
func (s *Session) SetNoticeTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noticeTTL = ttl
}

// LoadAll fetches every entity type concurrently and replaces all drafts
// with canonical store state. Called on session entry and after writes
// that must re-sync generated ids.
func (s *Session) LoadAll(ctx context.Context) {
	var next DraftSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { next.Hero = s.source.Hero(gctx); return nil })
	g.Go(func() error { next.About = s.source.About(gctx); return nil })
	g.Go(func() error { next.Skills = s.source.Skills(gctx); return nil })
	g.Go(func() error { next.TechStack = s.source.TechStack(gctx); return nil })
	g.Go(func() error { next.Achievements = s.source.Achievements(gctx); return nil })
	g.Go(func() error { next.Education = s.source.EducationEntries(gctx); return nil })
	g.Go(func() error { next.SocialLinks = s.source.SocialLinks(gctx); return nil })
	g.Go(func() error { next.Settings = s.source.Settings(gctx); return nil })
	g.Go(func() error { next.Projects = s.source.Projects(gctx); return nil })
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Hero = next.Hero
	s.drafts.About = next.About
	s.drafts.Achievements = next.Achievements
	s.drafts.Education = next.Education
	s.drafts.SocialLinks = next.SocialLinks
	s.drafts.Settings = next.Settings
	s.drafts.Projects = next.Projects
	s.skillsCtl.SetItems(next.Skills)
	s.techCtl.SetItems(next.TechStack)
}

// Drafts returns a snapshot of the current draft state.
func (s *Session) Drafts() DraftSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.drafts
	snapshot.Skills = append([]models.Skill(nil), s.drafts.Skills...)
	snapshot.TechStack = append([]models.TechStack(nil), s.drafts.TechStack...)
	snapshot.Achievements = append([]models.Achievement(nil), s.drafts.Achievements...)
	snapshot.Education = append([]models.Education(nil), s.drafts.Education...)
	snapshot.SocialLinks = append([]models.SocialLink(nil), s.drafts.SocialLinks...)
	snapshot.Projects = append([]models.QAProject(nil), s.drafts.Projects...)
	return snapshot
}

func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Notice returns the current notification, nil once dismissed.
func (s *Session) Notice() *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notice == nil {
		return nil
	}
	copied := *s.notice
	return &copied
}

// notify replaces the banner and arms its auto-dismiss timer. Callers hold
// the lock.
func (s *Session) notify(kind NoticeKind, message string) {
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
	}
	s.notice = &Notification{Kind: kind, Message: message}
	s.noticeTimer = time.AfterFunc(s.noticeTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.notice = nil
	})
}

// beginSave flips the session into the saving state, refusing overlap.
func (s *Session) beginSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return ErrSaveInFlight
	}
	s.saving = true
	return nil
}

func (s *Session) endSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
}

// EditField applies one string form value onto a singleton draft, coercing
// numeric fields. Storage is not touched. A validation failure surfaces
// immediately without any I/O.
func (s *Session) EditField(kind content.Kind, field, value string) error {
	return s.EditFields(kind, map[string]string{field: value})
}

// EditFields applies a set of form values onto a singleton draft as one
// unit: the values are coerced onto a copy first, and the draft only
// changes when every field is valid.
func (s *Session) EditFields(kind content.Kind, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case content.KindHero:
		draft := models.HeroContent{}
		if s.drafts.Hero != nil {
			draft = *s.drafts.Hero
		}
		if err := ApplyHeroFields(&draft, values); err != nil {
			return err
		}
		s.drafts.Hero = &draft
	case content.KindAbout:
		draft := models.AboutContent{}
		if s.drafts.About != nil {
			draft = *s.drafts.About
		}
		if err := ApplyAboutFields(&draft, values); err != nil {
			return err
		}
		s.drafts.About = &draft
	case content.KindSettings:
		draft := models.PortfolioSettings{}
		if s.drafts.Settings != nil {
			draft = *s.drafts.Settings
		}
		if err := ApplySettingsFields(&draft, values); err != nil {
			return err
		}
		s.drafts.Settings = &draft
	default:
		return fmt.Errorf("%s is not a singleton entity", kind)
	}
	return nil
}

// CommitSingleton sends the current singleton draft through the store's
// update-or-insert. On success the draft becomes the returned canonical
// row; on failure the draft is left untouched so edits are not lost.
func (s *Session) CommitSingleton(ctx context.Context, kind content.Kind) error {
	if err := s.beginSave(); err != nil {
		return err
	}
	defer s.endSave()

	s.mu.Lock()
	var commit func() bool
	switch kind {
	case content.KindHero:
		draft := models.HeroContent{}
		if s.drafts.Hero != nil {
			draft = *s.drafts.Hero
		}
		commit = func() bool {
			saved := s.source.UpdateHero(ctx, draft)
			if saved == nil {
				return false
			}
			s.mu.Lock()
			s.drafts.Hero = saved
			s.mu.Unlock()
			return true
		}
	case content.KindAbout:
		draft := models.AboutContent{}
		if s.drafts.About != nil {
			draft = *s.drafts.About
		}
		commit = func() bool {
			saved := s.source.UpdateAbout(ctx, draft)
			if saved == nil {
				return false
			}
			s.mu.Lock()
			s.drafts.About = saved
			s.mu.Unlock()
			return true
		}
	case content.KindSettings:
		draft := models.PortfolioSettings{}
		if s.drafts.Settings != nil {
			draft = *s.drafts.Settings
		}
		commit = func() bool {
			saved := s.source.UpdateSettings(ctx, draft)
			if saved == nil {
				return false
			}
			s.mu.Lock()
			s.drafts.Settings = saved
			s.mu.Unlock()
			return true
		}
	default:
		s.mu.Unlock()
		return fmt.Errorf("%s is not a singleton entity", kind)
	}
	s.mu.Unlock()

	if !commit() {
		s.mu.Lock()
		s.notify(NoticeError, "Critical failure: Synchronization error.")
		s.mu.Unlock()
		return ErrSaveFailed
	}
	s.mu.Lock()
	s.notify(NoticeSuccess, "Changes saved and deployed successfully!")
	s.mu.Unlock()
	return nil
}

// ResetEntity deletes every row of one entity type. The action is
// irreversible, so it refuses to run without explicit confirmation. On
// success the drafts are reloaded so the now-empty state is visible.
func (s *Session) ResetEntity(ctx context.Context, kind content.Kind, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.beginSave(); err != nil {
		return err
	}
	defer s.endSave()

	if !s.source.ResetAll(ctx, kind) {
		s.mu.Lock()
		s.notify(NoticeError, fmt.Sprintf("Failed to reset %s.", kind))
		s.mu.Unlock()
		return ErrSaveFailed
	}
	s.LoadAll(ctx)
	s.mu.Lock()
	s.notify(NoticeSuccess, fmt.Sprintf("%s reset to defaults.", kind))
	s.mu.Unlock()
	return nil
}

// SubmitSkillDraft runs one skill through the local-draft list: no id (or
// a draft id) appends, a persisted id replaces in place.
func (s *Session) SubmitSkillDraft(item models.Skill) []models.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, _ := s.skillsCtl.Submit(context.Background(), item)
	return append([]models.Skill(nil), items...)
}

// RemoveSkillDraft drops one skill from the local draft.
func (s *Session) RemoveSkillDraft(id string, confirmed bool) ([]models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.skillsCtl.Remove(context.Background(), id, confirmed)
	if err != nil {
		return nil, err
	}
	return append([]models.Skill(nil), items...), nil
}

// SubmitTechStackDraft and RemoveTechStackDraft mirror the skill helpers.
func (s *Session) SubmitTechStackDraft(item models.TechStack) []models.TechStack {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, _ := s.techCtl.Submit(context.Background(), item)
	return append([]models.TechStack(nil), items...)
}

func (s *Session) RemoveTechStackDraft(id string, confirmed bool) ([]models.TechStack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.techCtl.Remove(context.Background(), id, confirmed)
	if err != nil {
		return nil, err
	}
	return append([]models.TechStack(nil), items...), nil
}
