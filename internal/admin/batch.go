package admin

import (
	"context"
	"fmt"

	"portfolio-backend-go/internal/models"
)

// SyncAboutSection commits the about screen as one user action: the About
// singleton, then the full Skill collection, then the full TechStack
// collection, strictly in that order. The first failure aborts the
// remaining steps and reports a single aggregate error; steps that already
// ran stay persisted - there is no cross-step rollback. On full success
// every draft is reloaded from the store so draft ids become canonical.
func (s *Session) SyncAboutSection(ctx context.Context) error {
	if err := s.beginSave(); err != nil {
		return err
	}
	defer s.endSave()

	s.mu.Lock()
	about := models.AboutContent{}
	if s.drafts.About != nil {
		about = *s.drafts.About
	}
	skills := append([]models.Skill(nil), s.drafts.Skills...)
	tech := append([]models.TechStack(nil), s.drafts.TechStack...)
	s.mu.Unlock()

	fail := func(step string) error {
		s.mu.Lock()
		s.notify(NoticeError, "Batch sync failed.")
		s.mu.Unlock()
		return fmt.Errorf("batch sync: %s step failed: %w", step, ErrSaveFailed)
	}

	if saved := s.source.UpdateAbout(ctx, about); saved == nil {
		return fail("about")
	}
	if !s.source.ReplaceSkills(ctx, skills) {
		return fail("skills")
	}
	if !s.source.ReplaceTechStack(ctx, tech) {
		return fail("tech stack")
	}

	s.LoadAll(ctx)
	s.mu.Lock()
	s.notify(NoticeSuccess, "About section, Skills, and Tech Stack synced successfully!")
	s.mu.Unlock()
	return nil
}
