package domain

import "context"

// Project is one entry of the portfolio gallery.
type Project struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailed_description"`
	Image               string   `json:"image"`
	Images              []string `json:"images"`
	Category            []string `json:"category"`
	Technologies        []string `json:"technologies"`
	Features            []string `json:"features"`
	Duration            string   `json:"duration"`
	LiveURL             string   `json:"live_url,omitempty"`
	GithubURL           string   `json:"github_url,omitempty"`
}

// Experience is a single role on the about/experience timeline.
type Experience struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Highlights []string `json:"highlights"`
}

// Education is a degree or certification entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Profile is the about-section snapshot rendered by the site shell.
type Profile struct {
	Name       string       `json:"name"`
	Headline   string       `json:"headline"`
	About      string       `json:"about"`
	Location   string       `json:"location"`
	Email      string       `json:"email"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// PortfolioRepository provides read access to the static catalog.
type PortfolioRepository interface {
	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id int) (*Project, error)
	GetProfile(ctx context.Context) (*Profile, error)
}

// PortfolioUsecase defines the read-only catalog operations.
type PortfolioUsecase interface {
	// ListProjects returns the gallery, optionally filtered by category.
	ListProjects(ctx context.Context, category string) ([]Project, error)
	GetProject(ctx context.Context, id int) (*Project, error)
	GetProfile(ctx context.Context) (*Profile, error)
}
