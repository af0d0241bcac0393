package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// The public content endpoints serve resolved views: storage rows when
// present, baked-in defaults otherwise, tagged with where each piece came
// from. They never fail with a 500 over an empty or unreachable store.

func (s *Server) Hero(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.Hero(r.Context()))
}

func (s *Server) AboutSection(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.About(r.Context()))
}

func (s *Server) AchievementsSection(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.Achievements(r.Context()))
}

func (s *Server) ProjectsSection(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.Projects(r.Context()))
}

func (s *Server) EducationSection(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.Education(r.Context()))
}

func (s *Server) FooterSection(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.Footer(r.Context()))
}

func (s *Server) SiteSettings(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Resolver.SiteSettings(r.Context()))
}

// SubmitContact stores the submission first; the mail forward is best
// effort and never fails the request.
func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name := trimString(req.Name, 255)
	email := trimString(req.Email, 255)
	message := trimString(req.Message, 5000)
	if name == "" || message == "" {
		WriteError(w, http.StatusBadRequest, "Name and message are required")
		return
	}
	if email == "" || !strings.Contains(email, "@") {
		WriteError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	_, err := s.DB.Exec(`
INSERT INTO contact_messages (id, from_name, from_email, message, created_at)
VALUES ($1,$2,$3,$4,$5)
`, uuid.NewString(), name, email, message, time.Now().UTC())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := s.Mailer.SendContactMessage(name, email, message); err != nil {
		log.Printf("contact forward: %v", err)
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "received"})
}

// trimString caps the input at maxLen bytes without splitting a rune.
func trimString(value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) <= maxLen {
		return trimmed
	}
	for maxLen > 0 && !utf8.RuneStart(trimmed[maxLen]) {
		maxLen--
	}
	return trimmed[:maxLen]
}
