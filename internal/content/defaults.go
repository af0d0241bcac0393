package content

import (
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/lib/pq"
)

// Built-in fallback content, shown whenever the store has no rows for a
// section. Ids are intentionally empty: default records are read-only and
// must never be written back.

func DefaultHero() models.HeroContent {
	return models.HeroContent{
		Headline:      "Surya",
		Subheadline:   "Quality Assurance Engineer",
		Description:   "Transforming complex systems into reliable software through manual testing, automation frameworks, and strategic quality engineering",
		CtaText:       "Get In Touch",
		CtaButtonText: "Download Resume",
	}
}

func DefaultAbout() models.AboutContent {
	return models.AboutContent{
		Summary:           "Results-driven QA Engineer with a passion for delivering flawless software experiences. I specialize in designing comprehensive test strategies that catch critical bugs before they reach production, ensuring every release meets the highest quality standards.",
		Approach:          "My methodology combines meticulous manual testing with powerful automation frameworks to create robust, scalable testing solutions. I believe quality isn't just about finding bugs - it's about preventing them through strategic planning and continuous improvement.",
		ExperienceYears:   3,
		TestsWritten:      5000,
		BugsFound:         1200,
		SuccessRate:       99.7,
		TestCoverage:      98,
		ProjectsDelivered: 15,
	}
}

func DefaultSkills() []models.Skill {
	return []models.Skill{
		{Name: "Manual Testing", IconType: "CheckCircle2", Color: "green", DisplayOrder: 1},
		{Name: "Test Automation", IconType: "Code2", Color: "blue", DisplayOrder: 2},
		{Name: "Selenium & Java", IconType: "Zap", Color: "yellow", DisplayOrder: 3},
		{Name: "API Testing", IconType: "BarChart3", Color: "purple", DisplayOrder: 4},
		{Name: "Defect Management", IconType: "Bug", Color: "red", DisplayOrder: 5},
		{Name: "Security Testing", IconType: "Shield", Color: "cyan", DisplayOrder: 6},
	}
}

func DefaultTechStack() []models.TechStack {
	names := []string{"Selenium", "Java", "TestNG", "JUnit", "REST Assured", "Postman", "JIRA", "Jenkins", "Git"}
	items := make([]models.TechStack, 0, len(names))
	for _, name := range names {
		items = append(items, models.TechStack{Name: name})
	}
	return items
}

func DefaultAchievements() []models.Achievement {
	return []models.Achievement{
		{
			Title:        "Test Coverage Improvement",
			Metric:       "45% Increase",
			Description:  "Elevated automated test coverage from 53% to 98% across critical user flows",
			IconType:     "TrendingUp",
			Color:        "green",
			Status:       "VERIFIED",
			DisplayOrder: 1,
		},
		{
			Title:        "Bug Detection Rate",
			Metric:       "1200+ Critical Bugs",
			Description:  "Identified and documented pre-production defects, preventing costly production incidents",
			IconType:     "AlertCircle",
			Color:        "red",
			Status:       "RESOLVED",
			DisplayOrder: 2,
		},
		{
			Title:        "Release Cycle Time",
			Metric:       "30% Reduction",
			Description:  "Streamlined testing process through automation, accelerating time-to-market",
			IconType:     "Clock",
			Color:        "blue",
			Status:       "OPTIMIZED",
			DisplayOrder: 3,
		},
		{
			Title:        "Zero Production Failures",
			Metric:       "18 Consecutive Releases",
			Description:  "Maintained perfect production stability through comprehensive regression testing",
			IconType:     "CheckCircle",
			Color:        "purple",
			Status:       "ACHIEVED",
			DisplayOrder: 4,
		},
	}
}

func DefaultEducation() []models.Education {
	return []models.Education{
		{
			Type:         "degree",
			Title:        "Bachelor of Technology",
			Subtitle:     "Computer Science Engineering",
			Institution:  "Technology University",
			Date:         "2018 - 2022",
			Version:      "v1.0",
			IconType:     "GraduationCap",
			Color:        "blue",
			DisplayOrder: 1,
		},
		{
			Type:         "cert",
			Title:        "ISTQB Certified Tester",
			Subtitle:     "Foundation Level",
			Institution:  "International Software Testing Qualifications Board",
			Date:         "2022",
			Version:      "v2.0",
			IconType:     "Award",
			Color:        "green",
			DisplayOrder: 2,
		},
		{
			Type:         "cert",
			Title:        "Selenium WebDriver with Java",
			Subtitle:     "Test Automation",
			Institution:  "Professional Development Course",
			Date:         "2023",
			Version:      "v3.0",
			IconType:     "Award",
			Color:        "purple",
			DisplayOrder: 3,
		},
		{
			Type:         "cert",
			Title:        "API Testing & Postman Certification",
			Subtitle:     "REST API Testing",
			Institution:  "Online Learning Platform",
			Date:         "2023",
			Version:      "v3.1",
			IconType:     "Award",
			Color:        "cyan",
			DisplayOrder: 4,
		},
		{
			Type:         "cert",
			Title:        "Agile Testing Certification",
			Subtitle:     "Scrum & Agile Methodologies",
			Institution:  "Agile Alliance",
			Date:         "2024",
			Version:      "v4.0",
			IconType:     "Award",
			Color:        "yellow",
			DisplayOrder: 5,
		},
	}
}

func DefaultSocialLinks() []models.SocialLink {
	return []models.SocialLink{
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/jsurya860", IconType: "Linkedin", DisplayOrder: 1},
		{Platform: "GitHub", URL: "https://github.com/jsurya860", IconType: "Github", DisplayOrder: 2},
		{Platform: "Email", URL: "mailto:jsurya860@gmail.com", IconType: "Mail", DisplayOrder: 3},
	}
}

func DefaultSettings() models.PortfolioSettings {
	return models.PortfolioSettings{
		SiteTitle:          "Surya - QA Engineer",
		SiteTitleAlternate: "QA Engineer",
		SiteDescription:    "Quality Assurance Engineer",
		Email:              "jsurya860@gmail.com",
	}
}

func DefaultProjects() []models.QAProject {
	now := time.Now().UTC()
	return []models.QAProject{
		{
			TicketID: "TC-001",
			Name:     "E-Commerce Platform Testing",
			Priority: models.PriorityHigh,
			Status:   models.StatusPassed,
			Tools:    pq.StringArray{"Selenium", "Java", "TestNG", "Jenkins"},
			Role:     "Lead QA Engineer",
			Responsibilities: pq.StringArray{
				"Designed and implemented end-to-end automation framework",
				"Created 500+ automated test scripts for checkout flows",
				"Reduced regression testing time by 60%",
				"Integrated tests with CI/CD pipeline",
			},
			Outcome:   "Zero payment-related bugs in production for 12 months",
			IconType:  "Globe",
			Color:     "blue",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			TicketID: "TC-002",
			Name:     "Banking API Test Suite",
			Priority: models.PriorityCritical,
			Status:   models.StatusPassed,
			Tools:    pq.StringArray{"REST Assured", "Postman", "Java", "Maven"},
			Role:     "API Test Engineer",
			Responsibilities: pq.StringArray{
				"Developed comprehensive API testing framework",
				"Performed security and performance testing",
				"Validated 200+ API endpoints across microservices",
				"Documented API test coverage and scenarios",
			},
			Outcome:   "Achieved 99.8% API reliability score",
			IconType:  "Database",
			Color:     "red",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			TicketID: "TC-003",
			Name:     "Healthcare Portal QA",
			Priority: models.PriorityCritical,
			Status:   models.StatusPassed,
			Tools:    pq.StringArray{"Selenium", "JUnit", "JIRA", "SQL"},
			Role:     "Senior QA Analyst",
			Responsibilities: pq.StringArray{
				"Executed HIPAA compliance testing",
				"Performed data integrity and security validation",
				"Led UAT coordination with stakeholders",
				"Maintained defect tracking and reporting",
			},
			Outcome:   "Successful certification audit with zero compliance issues",
			IconType:  "CheckSquare",
			Color:     "purple",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			TicketID: "TC-004",
			Name:     "Mobile App Automation",
			Priority: models.PriorityHigh,
			Status:   models.StatusPassed,
			Tools:    pq.StringArray{"Appium", "Java", "TestNG", "BrowserStack"},
			Role:     "Mobile QA Engineer",
			Responsibilities: pq.StringArray{
				"Built cross-platform mobile test automation",
				"Tested on 20+ device configurations",
				"Implemented parallel test execution",
				"Improved test execution speed by 70%",
			},
			Outcome:   "4.8-star app rating maintained across platforms",
			IconType:  "Code2",
			Color:     "green",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
