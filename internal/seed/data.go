// AngelaMos | 2026
// data.go

package seed

import (
	"github.com/carterperez-dev/portfolio-backend/internal/certification"
	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/education"
	"github.com/carterperez-dev/portfolio-backend/internal/experience"
	"github.com/carterperez-dev/portfolio-backend/internal/project"
	"github.com/carterperez-dev/portfolio-backend/internal/skill"
	"github.com/carterperez-dev/portfolio-backend/internal/tool"
)

func projects() []project.Project {
	return []project.Project{
		{
			Title:       "Sustainable Composite Development",
			Summary:     "Research focused on creating eco-friendly aerospace-grade composite materials.",
			Description: "Developed composite materials with 40% reduced carbon footprint while maintaining aerospace-grade mechanical properties.",
			Achievements: core.StringList{
				"Optimized fiber-resin ratios for minimal environmental impact",
				"Leveraged bio-based resins without performance compromise",
				"Created testing methodology for circular lifecycle assessment",
			},
			Tags:  core.StringList{"Material Science", "Sustainability", "Composites"},
			Color: "primary",
		},
		{
			Title:       "Rocket Propulsion Optimization",
			Summary:     "Computational analysis for optimizing dual-motor rocket configurations.",
			Description: "Achieved 12× altitude improvement through computational analysis and iterative testing of rocket motor configurations.",
			Achievements: core.StringList{
				"Evaluated performance of Aerotech G74W vs H125W motors",
				"Conducted CFD analysis for aerodynamic stability",
				"Optimized payload capacity while maximizing apogee",
			},
			Tags:  core.StringList{"Propulsion", "CFD", "Aerodynamics"},
			Color: "secondary",
		},
		{
			Title:       "Medical Supply Chain Optimization",
			Summary:     "Research on interdisciplinary strategies for efficient supply chain design.",
			Description: "Published research on integrated approaches to optimize medical supply chains through interdisciplinary strategies.",
			Achievements: core.StringList{
				"Developed multi-factor optimization models",
				"Implemented sustainability metrics in supply chain evaluation",
				"Created framework for cross-industry knowledge transfer",
			},
			Tags:  core.StringList{"Supply Chain", "Healthcare", "Research"},
			Color: "accent",
		},
		{
			Title:       "Titanium Recycling Process",
			Summary:     "Development of energy-efficient titanium recycling for aerospace applications.",
			Description: "Researched novel approaches to titanium recycling that maintains aerospace-grade mechanical properties with reduced energy input.",
			Achievements: core.StringList{
				"Reduced energy consumption by 30% compared to traditional methods",
				"Maintained material integrity through optimized processing",
				"Created closed-loop production model for titanium components",
			},
			Tags:  core.StringList{"Materials", "Recycling", "Titanium"},
			Color: "primary",
		},
		{
			Title:       "Composite Market Intelligence",
			Summary:     "Data-driven analysis of composite material market opportunities.",
			Description: "Conducted comprehensive market analysis to identify growth opportunities for sustainable composite materials across industries.",
			Achievements: core.StringList{
				"Identified 7x growth potential in niche industrial sectors",
				"Created predictive models for market penetration",
				"Developed stakeholder mapping for strategic partnerships",
			},
			Tags:  core.StringList{"Market Research", "Data Analysis", "Strategy"},
			Color: "secondary",
		},
		{
			Title:       "Polymer Recycling Study",
			Summary:     "Research on advanced polymer recycling techniques for aerospace applications.",
			Description: "Conducted groundbreaking research on polymer recycling methodologies that maintain high-performance characteristics required for aerospace applications.",
			Achievements: core.StringList{
				"Developed novel chemical recycling process for thermoset polymers",
				"Created testing framework for recycled polymer performance",
				"Established material property benchmarks for recycled vs. virgin polymers",
			},
			Tags:  core.StringList{"Polymers", "Recycling", "Research"},
			Color: "accent",
		},
	}
}

func skills() []skill.Skill {
	return []skill.Skill{
		{Name: "Composite Structures", Percentage: 90, Type: skill.TypeTechnical},
		{Name: "CFD Analysis", Percentage: 85, Type: skill.TypeTechnical},
		{Name: "Aerodynamics", Percentage: 80, Type: skill.TypeTechnical},
		{Name: "Sustainable Materials", Percentage: 95, Type: skill.TypeTechnical},
		{Name: "Data Analysis", Percentage: 75, Type: skill.TypeTechnical},

		{Name: "Market Research", Percentage: 85, Type: skill.TypeBusiness},
		{Name: "Investor Pitching", Percentage: 80, Type: skill.TypeBusiness},
		{Name: "Supply Chain Management", Percentage: 75, Type: skill.TypeBusiness},
		{Name: "ESG Compliance", Percentage: 90, Type: skill.TypeBusiness},
	}
}

func tools() []tool.Tool {
	return []tool.Tool{
		{Name: "ANSYS", Icon: "fas fa-wind", Tags: core.StringList{"CFD", "FEA"}},
		{Name: "OpenRocket", Icon: "fas fa-rocket", Tags: core.StringList{"Simulation"}},
		{Name: "CAD Software", Icon: "fas fa-drafting-compass", Tags: core.StringList{"3D Modeling"}},
	}
}

func certifications() []certification.Certification {
	return []certification.Certification{
		{
			Name:        "GE Aerospace",
			Description: "Explore Engineering Job Simulation",
			Details:     "Specialized training in aerospace engineering workflows and industry standards.",
			Icon:        "fas fa-certificate",
			Color:       "primary",
		},
		{
			Name:        "Web GIS Technology",
			Description: "Geospatial Information Systems",
			Details:     "Application of GIS technologies for environmental and aerospace mapping applications.",
			Icon:        "fas fa-globe",
			Color:       "secondary",
		},
		{
			Name:        "Energy Literacy Training",
			Description: "Sustainable Energy Solutions",
			Details:     "Comprehensive understanding of energy systems and sustainability principles for aerospace applications.",
			Icon:        "fas fa-bolt",
			Color:       "accent",
		},
	}
}

func experiences() []experience.Experience {
	return []experience.Experience{
		{
			Company:  "Atomix Materials",
			Position: "Co-Founder & Material Specialist",
			Location: "Sheffield, UK",
			Period:   "2023 - Present",
			Responsibilities: core.StringList{
				"Lead R&D for sustainable composite materials with 40% reduced carbon footprint",
				"Developed and implemented circular lifecycle assessment methodologies",
				"Created predictive models for composite performance in aerospace applications",
				"Secured £250,000 in seed funding through university innovation grants",
			},
			Icon:  "fas fa-flask",
			Color: "primary",
		},
		{
			Company:  "Brahmàstra Aerospace",
			Position: "Project Engineering Intern",
			Location: "Bangalore, India",
			Period:   "2022 - 2023",
			Responsibilities: core.StringList{
				"Conducted CFD analysis for aerodynamic optimization of UAV components",
				"Participated in design and testing of dual-motor rocket propulsion systems",
				"Created technical documentation and test reports for certification processes",
				"Contributed to material selection for lightweight structural components",
			},
			Icon:  "fas fa-rocket",
			Color: "secondary",
		},
	}
}

func educations() []education.Education {
	return []education.Education{
		{
			Institution: "University of Sheffield",
			Degree:      "MSc, Aerospace Materials",
			Period:      "2022 - 2023",
			Description: "Specialized in sustainable composite materials for aerospace applications with focus on lifecycle assessment methodologies and performance optimization.",
			Color:       "primary",
		},
		{
			Institution: "Amrita Vishwa Vidyapeetham",
			Degree:      "BTech, Aerospace Engineering",
			Period:      "2018 - 2022",
			Description: "Focused on aerodynamics, propulsion systems, and structural analysis. Senior project on dual-motor rocket optimization earned university innovation award.",
			Color:       "secondary",
		},
		{
			Institution: "Chavara Public School",
			Degree:      "Higher Secondary, Computer Mathematics",
			Period:      "2016 - 2018",
			Description: "Mathematics and computer science specialization with additional focus on physics and engineering principles.",
			Color:       "accent",
		},
	}
}
