package content

// Kind names one editable entity type. Singleton kinds (hero, about,
// settings) hold at most one row; the rest are collections.
type Kind string

const (
	KindHero         Kind = "hero"
	KindAbout        Kind = "about"
	KindSkills       Kind = "skills"
	KindTechStack    Kind = "tech_stack"
	KindAchievements Kind = "achievements"
	KindEducation    Kind = "education"
	KindSocialLinks  Kind = "social_links"
	KindSettings     Kind = "settings"
	KindProjects     Kind = "projects"
)

var tables = map[Kind]string{
	KindHero:         "portfolio_hero",
	KindAbout:        "portfolio_about",
	KindSkills:       "portfolio_skills",
	KindTechStack:    "portfolio_tech_stack",
	KindAchievements: "portfolio_achievements",
	KindEducation:    "portfolio_education",
	KindSocialLinks:  "portfolio_social_links",
	KindSettings:     "portfolio_settings",
	KindProjects:     "qa_projects",
}

var singletonKinds = map[Kind]bool{
	KindHero:     true,
	KindAbout:    true,
	KindSettings: true,
}

// ParseKind maps a route segment to a Kind; ok is false for unknown names.
func ParseKind(raw string) (Kind, bool) {
	kind := Kind(raw)
	_, known := tables[kind]
	return kind, known
}

// IsSingleton reports whether kind is an at-most-one-row entity.
func IsSingleton(kind Kind) bool {
	return singletonKinds[kind]
}

// Table returns the storage table backing kind.
func Table(kind Kind) string {
	return tables[kind]
}

// Kinds lists every entity type in a stable order, used by bulk loads.
func Kinds() []Kind {
	return []Kind{
		KindHero, KindAbout, KindSkills, KindTechStack, KindAchievements,
		KindEducation, KindSocialLinks, KindSettings, KindProjects,
	}
}
