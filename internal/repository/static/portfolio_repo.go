// Package static serves the portfolio catalog from compiled-in data.
// The site has no data store; the catalog changes with deployments, not
// at runtime, so the repository is a read-only snapshot.
package static

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type portfolioRepository struct {
	projects []domain.Project
	profile  domain.Profile
}

// NewPortfolioRepository returns the catalog backed by the built-in data.
func NewPortfolioRepository() domain.PortfolioRepository {
	return &portfolioRepository{
		projects: projects,
		profile:  profile,
	}
}

func (r *portfolioRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *portfolioRepository) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Project not found")
}

func (r *portfolioRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	p := r.profile
	return &p, nil
}

var profile = domain.Profile{
	Name:     "Dika Susanto",
	Headline: "Backend Developer & Aspiring Full Stack Engineer",
	About: "Backend developer focused on reliable service design, message queuing " +
		"and clean API architecture. I enjoy taking products from idea to " +
		"production and learning whatever the problem demands along the way.",
	Location: "Bali, Indonesia",
	Email:    "susantodika123@gmail.com",
	Skills: []string{
		"Laravel", "Vue.js", "PHP", "JavaScript", "MySQL", "Tailwind",
		"Git", "Docker", "RabbitMQ", "Next.js", "React", "Node.js",
	},
	Experience: []domain.Experience{
		{
			Company:   "PT. Bank Pembangunan Daerah Bali",
			Role:      "Backend Developer",
			StartDate: "Oct 2024",
			EndDate:   "Feb 2025",
			Highlights: []string{
				"Built a centralized email service with RabbitMQ queuing and Elasticsearch logging",
				"Delivered an admin dashboard for delivery monitoring and template management",
			},
		},
	},
	Education: []domain.Education{
		{
			Institution: "Politeknik Negeri Bali",
			Degree:      "D4 Informatics Engineering",
			StartDate:   "2021",
			EndDate:     "2025",
		},
	},
}

var projects = []domain.Project{
	{
		ID:          1,
		Title:       "Centralized Email Service for PT. Bank Pembangunan Daerah Bali",
		Description: "A RESTful email service and centralized dashboard for managing and monitoring emails; supporting both standard and Excel-based sending via RabbitMQ, with comprehensive logging to Elasticsearch.",
		DetailedDescription: "Centralized email service streamlining the bank's communications: a Laravel " +
			"backend with RESTful APIs, RabbitMQ queuing for reliable prioritized delivery, and " +
			"Elasticsearch for logging and monitoring. The admin dashboard surfaces delivery status, " +
			"queue management and analytics, supporting both manual and bulk Excel-imported sending.",
		Image: "/img/Login-SMES.png",
		Images: []string{
			"/img/Login-SMES.png",
			"/img/Dashboard-SMES.png",
			"/img/Email-Queue-SMES.png",
			"/img/Email-Sending-SMES.png",
		},
		Category:     []string{"Web Development"},
		Technologies: []string{"Laravel", "RabbitMQ", "Elasticsearch", "MySQL", "Redis", "Docker", "Vue.js", "Tailwind CSS"},
		Features: []string{
			"RESTful API for email management",
			"Bulk email sending with Excel import",
			"Real-time queue monitoring with RabbitMQ",
			"Comprehensive logging with Elasticsearch",
			"Email delivery status and analytics dashboard",
			"Role-based access control (RBAC)",
			"Retry and error handling for failed emails",
		},
		Duration:  "October 2024 - February 2025",
		GithubURL: "https://github.com/DikaSusanto/email-service-web-app",
	},
	{
		ID:          2,
		Title:       "Personal Portfolio Website",
		Description: "A feature-rich portfolio website highlighting my expertise as a backend developer and aspiring full stack engineer.",
		DetailedDescription: "Showcase of my technical journey with a dynamic project gallery, category " +
			"filtering, animated transitions and a responsive mobile-first layout. The contact form " +
			"delivers messages straight to my inbox over SMTP.",
		Image: "/img/Hero-portfolio.png",
		Images: []string{
			"/img/Hero-portfolio.png",
			"/img/Portfolio-About.png",
			"/img/Portfolio-Projects.png",
			"/img/Portfolio-Contact.png",
		},
		Category:     []string{"Web Development"},
		Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Framer Motion", "NodeMailer", "Vercel"},
		Features: []string{
			"Dynamic project gallery with category filtering",
			"Detailed project pages with image galleries",
			"Skills carousel and About section",
			"Contact form with direct email delivery",
			"SEO optimized with metadata and Open Graph",
		},
		Duration: "June 2025 - Present",
		LiveURL:  "https://dika-portfolio-seven.vercel.app/",
		GithubURL: "https://github.com/DikaSusanto/next-portfolio-site",
	},
	{
		ID:          3,
		Title:       "Bali Pisang Sale Website",
		Description: "A modern e-commerce platform for Bali Pisang Sale, offering a seamless pre-order experience, dynamic product catalog, real-time shipping calculation, and multi-language support.",
		DetailedDescription: "E-commerce solution for traditional Pisang Sale products: a pre-order system " +
			"with no upfront payment, dynamic catalog and cart, real-time shipping estimation via " +
			"RajaOngkir, secure payment through Midtrans, and an admin dashboard for order and " +
			"product management with automated transactional emails.",
		Image: "/img/Home-PisangSale.png",
		Images: []string{
			"/img/Home-PisangSale.png",
			"/img/Products-PisangSale.png",
			"/img/About-PisangSale.png",
			"/img/HowItWorks-PisangSale.png",
		},
		Category:     []string{"Web Development", "E-commerce"},
		Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Midtrans Payment Gateway", "RajaOngkir API", "Prisma", "NodeMailer"},
		Features: []string{
			"Pre-order system with no upfront payment",
			"Dynamic product catalog and shopping cart",
			"Real-time shipping cost calculation (RajaOngkir)",
			"Secure payment integration (Midtrans)",
			"Multi-language support (English & Indonesian)",
		},
		Duration: "March 2025 - June 2025",
		LiveURL:  "https://bali-pisang-sale.vercel.app/",
		GithubURL: "https://github.com/DikaSusanto/bali-pisang-sale",
	},
}
