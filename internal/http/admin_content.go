package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-backend-go/internal/admin"
	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

type AdminContentResponse struct {
	Drafts admin.DraftSet      `json:"drafts"`
	Saving bool                `json:"saving"`
	Notice *admin.Notification `json:"notice"`
}

type FieldListResponse struct {
	Fields []admin.Field `json:"fields"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// CollectionSubmitRequest carries one record's form values. An empty id
// creates, a known id updates. Tools and Responsibilities only apply to
// projects; the generic string-form cannot express list fields.
type CollectionSubmitRequest struct {
	ID               string            `json:"id"`
	Values           map[string]string `json:"values"`
	Tools            []string          `json:"tools"`
	Responsibilities []string          `json:"responsibilities"`
}

func (s *Server) contentState() AdminContentResponse {
	return AdminContentResponse{
		Drafts: s.Session.Drafts(),
		Saving: s.Session.Saving(),
		Notice: s.Session.Notice(),
	}
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, admin.ErrNotConfirmed):
		WriteError(w, http.StatusBadRequest, "Confirmation required")
	case errors.Is(err, admin.ErrSaveInFlight):
		WriteError(w, http.StatusConflict, "A save is already in progress")
	case errors.Is(err, admin.ErrSaveFailed):
		WriteError(w, http.StatusInternalServerError, "Critical failure: Synchronization error.")
	default:
		WriteServiceError(w, err)
	}
}

func parseKindParam(r *http.Request) (content.Kind, bool) {
	return content.ParseKind(chi.URLParam(r, "kind"))
}

// AdminContent returns the session's current draft state.
func (s *Server) AdminContent(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.contentState())
}

// AdminReload replaces every draft with canonical store rows.
func (s *Server) AdminReload(w http.ResponseWriter, r *http.Request) {
	s.Session.LoadAll(r.Context())
	WriteJSON(w, http.StatusOK, s.contentState())
}

func (s *Server) AdminEntityFields(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKindParam(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Unknown entity")
		return
	}
	WriteJSON(w, http.StatusOK, FieldListResponse{Fields: admin.FormFields(kind)})
}

// AdminUpdateSingleton applies string form values onto a singleton draft
// and commits it through the store's update-or-insert. A coercion failure
// rejects the request before any storage I/O.
func (s *Server) AdminUpdateSingleton(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKindParam(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Unknown entity")
		return
	}
	if !content.IsSingleton(kind) {
		WriteError(w, http.StatusBadRequest, "Not a singleton entity")
		return
	}
	values := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := s.Session.EditFields(kind, values); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.Session.CommitSingleton(r.Context(), kind); err != nil {
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.contentState())
}

// submitCollection runs one record through a remote-mode list controller:
// create on empty id, edit-in-place on a known one, re-fetch after.
func submitCollection[T any](
	ctx context.Context,
	ops admin.RemoteOps[T],
	getID func(T) string,
	setID func(*T, string),
	id string,
	apply func(*T, map[string]string) error,
	values map[string]string,
) ([]T, error) {
	ctl := admin.NewRemoteList(getID, setID, ops)
	var form *T
	if id == "" {
		form = ctl.BeginCreate()
	} else {
		var found *T
		for _, item := range ops.FetchAll(ctx) {
			if getID(item) == id {
				copied := item
				found = &copied
				break
			}
		}
		if found == nil {
			return nil, services.ErrNotFound("No such record")
		}
		form = ctl.BeginEdit(*found)
	}
	if err := apply(form, values); err != nil {
		return nil, services.ErrBadRequest(err.Error())
	}
	return ctl.Submit(ctx, *form)
}

func removeFromCollection[T any](
	ctx context.Context,
	ops admin.RemoteOps[T],
	getID func(T) string,
	setID func(*T, string),
	id string,
	confirmed bool,
) ([]T, error) {
	ctl := admin.NewRemoteList(getID, setID, ops)
	return ctl.Remove(ctx, id, confirmed)
}

func (s *Server) AdminSubmitCollection(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKindParam(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Unknown entity")
		return
	}
	if content.IsSingleton(kind) {
		WriteError(w, http.StatusBadRequest, "Not a collection entity")
		return
	}
	var req CollectionSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	ctx := r.Context()
	var (
		items interface{}
		err   error
	)
	switch kind {
	case content.KindSkills:
		items, err = submitCollection(ctx, s.skillRemote(), skillID, setSkillID, req.ID, admin.ApplySkillFields, req.Values)
	case content.KindTechStack:
		items, err = submitCollection(ctx, s.techStackRemote(), techStackID, setTechStackID, req.ID, admin.ApplyTechStackFields, req.Values)
	case content.KindAchievements:
		items, err = submitCollection(ctx, s.achievementRemote(), achievementID, setAchievementID, req.ID, admin.ApplyAchievementFields, req.Values)
	case content.KindEducation:
		items, err = submitCollection(ctx, s.educationRemote(), educationID, setEducationID, req.ID, admin.ApplyEducationFields, req.Values)
	case content.KindSocialLinks:
		items, err = submitCollection(ctx, s.socialLinkRemote(), socialLinkID, setSocialLinkID, req.ID, admin.ApplySocialLinkFields, req.Values)
	case content.KindProjects:
		apply := func(p *models.QAProject, values map[string]string) error {
			if err := admin.ApplyProjectFields(p, values); err != nil {
				return err
			}
			if req.Tools != nil {
				p.Tools = pq.StringArray(req.Tools)
			}
			if req.Responsibilities != nil {
				p.Responsibilities = pq.StringArray(req.Responsibilities)
			}
			return nil
		}
		items, err = submitCollection(ctx, s.projectRemote(), projectID, setProjectID, req.ID, apply, req.Values)
	}
	if err != nil {
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AdminDeleteFromCollection removes one record. The irreversible action
// must be confirmed with ?confirm=true.
func (s *Server) AdminDeleteFromCollection(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKindParam(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Unknown entity")
		return
	}
	if content.IsSingleton(kind) {
		WriteError(w, http.StatusBadRequest, "Not a collection entity")
		return
	}
	id := chi.URLParam(r, "id")
	confirmed := r.URL.Query().Get("confirm") == "true"
	ctx := r.Context()
	var (
		items interface{}
		err   error
	)
	switch kind {
	case content.KindSkills:
		items, err = removeFromCollection(ctx, s.skillRemote(), skillID, setSkillID, id, confirmed)
	case content.KindTechStack:
		items, err = removeFromCollection(ctx, s.techStackRemote(), techStackID, setTechStackID, id, confirmed)
	case content.KindAchievements:
		items, err = removeFromCollection(ctx, s.achievementRemote(), achievementID, setAchievementID, id, confirmed)
	case content.KindEducation:
		items, err = removeFromCollection(ctx, s.educationRemote(), educationID, setEducationID, id, confirmed)
	case content.KindSocialLinks:
		items, err = removeFromCollection(ctx, s.socialLinkRemote(), socialLinkID, setSocialLinkID, id, confirmed)
	case content.KindProjects:
		items, err = removeFromCollection(ctx, s.projectRemote(), projectID, setProjectID, id, confirmed)
	}
	if err != nil {
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AdminResetEntity wipes every row of one entity type so the public site
// falls back to defaults.
func (s *Server) AdminResetEntity(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKindParam(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Unknown entity")
		return
	}
	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := s.Session.ResetEntity(r.Context(), kind, req.Confirm); err != nil {
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.contentState())
}

// AdminEditAboutDraft stages about-singleton field edits without
// committing; the batch sync persists them together with the skill and
// tech stack drafts.
func (s *Server) AdminEditAboutDraft(w http.ResponseWriter, r *http.Request) {
	values := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := s.Session.EditFields(content.KindAbout, values); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, s.contentState())
}

func (s *Server) AdminSubmitSkillDraft(w http.ResponseWriter, r *http.Request) {
	var req CollectionSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	form := models.Skill{}
	if req.ID != "" {
		for _, item := range s.Session.Drafts().Skills {
			if item.ID == req.ID {
				form = item
				break
			}
		}
		form.ID = req.ID
	}
	if err := admin.ApplySkillFields(&form, req.Values); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": s.Session.SubmitSkillDraft(form)})
}

func (s *Server) AdminRemoveSkillDraft(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	items, err := s.Session.RemoveSkillDraft(chi.URLParam(r, "id"), confirmed)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) AdminSubmitTechStackDraft(w http.ResponseWriter, r *http.Request) {
	var req CollectionSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	form := models.TechStack{}
	if req.ID != "" {
		for _, item := range s.Session.Drafts().TechStack {
			if item.ID == req.ID {
				form = item
				break
			}
		}
		form.ID = req.ID
	}
	if err := admin.ApplyTechStackFields(&form, req.Values); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": s.Session.SubmitTechStackDraft(form)})
}

func (s *Server) AdminRemoveTechStackDraft(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	items, err := s.Session.RemoveTechStackDraft(chi.URLParam(r, "id"), confirmed)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AdminSyncAbout commits the about screen as one batch action.
func (s *Server) AdminSyncAbout(w http.ResponseWriter, r *http.Request) {
	if err := s.Session.SyncAboutSection(r.Context()); err != nil {
		if errors.Is(err, admin.ErrSaveFailed) {
			WriteError(w, http.StatusInternalServerError, "Batch sync failed.")
			return
		}
		writeAdminError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.contentState())
}

type ContactMessageDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessages lists stored contact submissions, newest first.
func (s *Server) ContactMessages(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}
	rows := []models.ContactMessage{}
	if err := s.DB.Select(&rows, `
SELECT id, from_name, from_email, message, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1
`, limit); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]ContactMessageDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, ContactMessageDTO{
			ID:        row.ID,
			Name:      row.FromName,
			Email:     row.FromEmail,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) skillRemote() admin.RemoteOps[models.Skill] {
	return admin.RemoteOps[models.Skill]{
		FetchAll: s.Source.Skills,
		Upsert:   s.Source.UpsertSkill,
		Delete: func(ctx context.Context, id string) bool {
			return s.Source.Delete(ctx, content.KindSkills, id)
		},
	}
}

func (s *Server) techStackRemote() admin.RemoteOps[models.TechStack] {
	return admin.RemoteOps[models.TechStack]{
		FetchAll: s.Source.TechStack,
		Upsert:   s.Source.UpsertTechStack,
		Delete: func(ctx context.Context, id string) bool {
			return s.Source.Delete(ctx, content.KindTechStack, id)
		},
	}
}

func (s *Server) achievementRemote() admin.RemoteOps[models.Achievement] {
	return admin.RemoteOps[models.Achievement]{
		FetchAll: s.Source.Achievements,
		Upsert:   s.Source.UpsertAchievement,
		Delete: func(ctx context.Context, id string) bool {
			return s.Source.Delete(ctx, content.KindAchievements, id)
		},
	}
}

func (s *Server) educationRemote() admin.RemoteOps[models.Education] {
	return admin.RemoteOps[models.Education]{
		FetchAll: s.Source.EducationEntries,
		Upsert:   s.Source.UpsertEducation,
		Delete: func(ctx context.Context, id string) bool {
			return s.Source.Delete(ctx, content.KindEducation, id)
		},
	}
}

func (s *Server) socialLinkRemote() admin.RemoteOps[models.SocialLink] {
	return admin.RemoteOps[models.SocialLink]{
		FetchAll: s.Source.SocialLinks,
		Upsert:   s.Source.UpsertSocialLink,
		Delete: func(ctx context.Context, id string) bool {
			return s.Source.Delete(ctx, content.KindSocialLinks, id)
		},
	}
}

func (s *Server) projectRemote() admin.RemoteOps[models.QAProject] {
	return admin.RemoteOps[models.QAProject]{
		FetchAll: s.Source.Projects,
		Upsert:   s.Source.UpsertProject,
		Delete: func(ctx context.Context, id string) bool {
			return s.Source.Delete(ctx, content.KindProjects, id)
		},
	}
}

func skillID(item models.Skill) string { return item.ID }

func setSkillID(item *models.Skill, id string) { item.ID = id }

func techStackID(item models.TechStack) string { return item.ID }

func setTechStackID(item *models.TechStack, id string) { item.ID = id }

func achievementID(item models.Achievement) string { return item.ID }

func setAchievementID(item *models.Achievement, id string) { item.ID = id }

func educationID(item models.Education) string { return item.ID }

func setEducationID(item *models.Education, id string) { item.ID = id }

func socialLinkID(item models.SocialLink) string { return item.ID }

func setSocialLinkID(item *models.SocialLink, id string) { item.ID = id }

func projectID(item models.QAProject) string { return item.ID }

func setProjectID(item *models.QAProject, id string) { item.ID = id }
