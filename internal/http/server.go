package httpapi

import (
	"net/http"
	"time"

	"portfolio-backend-go/internal/admin"
	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB       *sqlx.DB
	Config   config.Config
	Tokens   services.TokenService
	Source   content.Source
	Resolver *content.Resolver
	Session  *admin.Session
	Hub      *services.MetricsHub
	Mailer   services.Mailer
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	store := content.NewStore(db)
	return &Server{
		DB:       db,
		Config:   cfg,
		Tokens:   tokens,
		Source:   store,
		Resolver: content.NewResolver(store),
		Session:  admin.NewSession(store),
		Hub:      hub,
		Mailer: services.Mailer{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUsername,
			Password:  cfg.SMTPPassword,
			From:      cfg.SMTPFrom,
			Recipient: cfg.ContactRecipient,
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", s.Login)
			auth.Post("/refresh", s.Refresh)
			auth.Post("/logout", s.Logout)
			auth.Group(func(priv chi.Router) {
				priv.Use(WithAuth(s.Tokens))
				priv.Get("/session", s.SessionInfo)
				priv.Put("/password", s.ChangePassword)
			})
		})

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/hero", s.Hero)
			pub.Get("/about", s.AboutSection)
			pub.Get("/achievements", s.AchievementsSection)
			pub.Get("/projects", s.ProjectsSection)
			pub.Get("/education", s.EducationSection)
			pub.Get("/footer", s.FooterSection)
			pub.Get("/settings", s.SiteSettings)
			pub.Post("/contact", s.SubmitContact)
		})

		api.Route("/admin", func(adm chi.Router) {
			adm.Use(WithAuth(s.Tokens))
			adm.Get("/content", s.AdminContent)
			adm.Post("/content/reload", s.AdminReload)
			adm.Get("/content/{kind}/fields", s.AdminEntityFields)
			adm.Put("/content/{kind}", s.AdminUpdateSingleton)
			adm.Post("/content/{kind}", s.AdminSubmitCollection)
			adm.Post("/content/{kind}/reset", s.AdminResetEntity)
			adm.Delete("/content/{kind}/{id}", s.AdminDeleteFromCollection)

			adm.Put("/about/draft", s.AdminEditAboutDraft)
			adm.Post("/about/skills", s.AdminSubmitSkillDraft)
			adm.Delete("/about/skills/{id}", s.AdminRemoveSkillDraft)
			adm.Post("/about/tech-stack", s.AdminSubmitTechStackDraft)
			adm.Delete("/about/tech-stack/{id}", s.AdminRemoveTechStackDraft)
			adm.Post("/about/sync", s.AdminSyncAbout)

			adm.Get("/messages", s.ContactMessages)
			adm.Get("/metrics/history", s.MetricsHistory)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
