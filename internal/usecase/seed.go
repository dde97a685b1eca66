package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
)

// seedJobs returns the built-in postings used when the database is empty and
// no remote feed is configured. Posted dates are relative to now so recency
// filters stay meaningful.
func seedJobs(now time.Time) []model.Job {
	deadline := func(days int) *time.Time {
		t := now.AddDate(0, 0, days)
		return &t
	}

	return []model.Job{
		{
			ID:                  uuid.New(),
			Title:               "Senior Frontend Developer",
			Company:             "TechCorp Solutions",
			Location:            "San Francisco, CA",
			Description:         "We are looking for a Senior Frontend Developer with expertise in React, TypeScript, and modern web technologies to join our product team. You will work on building and maintaining our customer-facing applications, collaborating with designers and backend engineers.",
			EmploymentType:      model.EmploymentFullTime,
			ExperienceLevel:     model.ExperienceSenior,
			Skills:              []string{"React", "TypeScript", "Redux", "HTML", "CSS", "Jest"},
			Salary:              "$120,000 - $150,000",
			PostedDate:          now.AddDate(0, 0, -2),
			ApplicationDeadline: deadline(30),
			IsRemote:            true,
			Status:              model.JobStatusActive,
		},
		{
			ID:                  uuid.New(),
			Title:               "Product Manager",
			Company:             "InnovateX",
			Location:            "New York, NY",
			Description:         "InnovateX is seeking a talented Product Manager to join our growing team. You'll be responsible for driving the strategy and roadmap for one of our core products, working closely with engineering, design, and marketing teams.",
			EmploymentType:      model.EmploymentFullTime,
			ExperienceLevel:     model.ExperienceMid,
			Skills:              []string{"Product Strategy", "Agile", "Market Research", "User Stories", "Roadmapping"},
			Salary:              "$110,000 - $140,000",
			PostedDate:          now.AddDate(0, 0, -5),
			ApplicationDeadline: deadline(25),
			IsRemote:            false,
			Status:              model.JobStatusActive,
		},
		{
			ID:                  uuid.New(),
			Title:               "UX/UI Designer",
			Company:             "DesignHub",
			Location:            "Austin, TX",
			Description:         "DesignHub is looking for a creative and user-focused UX/UI Designer to join our design team. You'll work on crafting beautiful, intuitive interfaces for our clients across various industries.",
			EmploymentType:      model.EmploymentFullTime,
			ExperienceLevel:     model.ExperienceMid,
			Skills:              []string{"UI Design", "UX Research", "Figma", "Prototyping", "Design Systems"},
			Salary:              "$90,000 - $120,000",
			PostedDate:          now.AddDate(0, 0, -10),
			ApplicationDeadline: deadline(20),
			IsRemote:            true,
			Status:              model.JobStatusActive,
		},
		{
			ID:              uuid.New(),
			Title:           "DevOps Engineer",
			Company:         "CloudFirst",
			Location:        "Seattle, WA",
			Description:     "CloudFirst is seeking a skilled DevOps Engineer to help us build and maintain our cloud infrastructure. You'll work on automating deployments, improving system reliability, and optimizing our development workflows.",
			EmploymentType:  model.EmploymentFullTime,
			ExperienceLevel: model.ExperienceMid,
			Skills:          []string{"AWS", "Docker", "Kubernetes", "Terraform", "Python"},
			Salary:          "$115,000 - $145,000",
			PostedDate:      now.AddDate(0, 0, -1),
			IsRemote:        false,
			Status:          model.JobStatusActive,
		},
		{
			ID:              uuid.New(),
			Title:           "Backend Developer",
			Company:         "DataStream",
			Location:        "Chicago, IL",
			Description:     "DataStream is hiring a Backend Developer to build scalable APIs and data pipelines. You'll work with Go, PostgreSQL and message queues to keep our data platform fast and reliable.",
			EmploymentType:  model.EmploymentContract,
			ExperienceLevel: model.ExperienceSenior,
			Skills:          []string{"Go", "PostgreSQL", "Redis", "gRPC", "Kafka"},
			Salary:          "$100,000 - $130,000",
			PostedDate:      now.AddDate(0, 0, -14),
			IsRemote:        true,
			Status:          model.JobStatusActive,
		},
		{
			ID:              uuid.New(),
			Title:           "Marketing Intern",
			Company:         "GrowthLab",
			Location:        "Boston, MA",
			Description:     "GrowthLab offers a hands-on marketing internship. You'll support campaign planning, social media content and performance reporting alongside our growth team.",
			EmploymentType:  model.EmploymentInternship,
			ExperienceLevel: model.ExperienceEntry,
			Skills:          []string{"Social Media", "Content Writing", "Analytics"},
			PostedDate:      now.AddDate(0, 0, -3),
			IsRemote:        false,
			Status:          model.JobStatusActive,
		},
		{
			ID:              uuid.New(),
			Title:           "Data Scientist",
			Company:         "InsightAI",
			Location:        "Remote",
			Description:     "InsightAI is looking for a Data Scientist to build predictive models and turn messy data into product decisions. Strong statistics background and Python fluency required.",
			EmploymentType:  model.EmploymentFullTime,
			ExperienceLevel: model.ExperienceSenior,
			Skills:          []string{"Python", "Machine Learning", "SQL", "Statistics", "Pandas"},
			Salary:          "$130,000 - $160,000",
			PostedDate:      now.AddDate(0, 0, -20),
			IsRemote:        true,
			Status:          model.JobStatusActive,
		},
		{
			ID:              uuid.New(),
			Title:           "Technical Writer",
			Company:         "DocuTech",
			Location:        "Portland, OR",
			Description:     "DocuTech needs a freelance Technical Writer to document developer-facing APIs and SDKs. You'll work with engineers to turn specs into clear guides and references.",
			EmploymentType:  model.EmploymentFreelance,
			ExperienceLevel: model.ExperienceMid,
			Skills:          []string{"Technical Writing", "Markdown", "API Documentation"},
			Salary:          "$70K - $90K",
			PostedDate:      now.AddDate(0, 0, -45),
			IsRemote:        true,
			Status:          model.JobStatusActive,
		},
	}
}
