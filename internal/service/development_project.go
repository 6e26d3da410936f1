package service

import (
	"context"
	"fmt"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DevelopmentProjectService handles business logic for R&D projects
type DevelopmentProjectService struct {
	repo       repository.DevelopmentProjectRepositoryInterface
	comments   repository.CommentRepositoryInterface
	dashboards *DashboardCache
	validator  *validator.Validate
}

// NewDevelopmentProjectService creates a new R&D project service
func NewDevelopmentProjectService(
	repo repository.DevelopmentProjectRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *DevelopmentProjectService {
	return &DevelopmentProjectService{
		repo:       repo,
		comments:   comments,
		dashboards: dashboards,
		validator:  validator,
	}
}

// DevelopmentProjectRequest represents the request to create or update an R&D project
type DevelopmentProjectRequest struct {
	ProjectName        string               `json:"project_name" validate:"required,max=200" example:"Cold-pressed aloe juice"`
	ProjectType        string               `json:"project_type,omitempty" validate:"max=100" example:"New Product"`
	Status             models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=Planning 'In Progress' Testing 'Regulatory Review' Completed 'On Hold' Cancelled"`
	Priority           models.Priority      `json:"priority,omitempty" validate:"omitempty,oneof=High Medium Low"`
	StartDate          *models.Date         `json:"start_date,omitempty" swaggertype:"string"`
	ExpectedCompletion *models.Date         `json:"expected_completion,omitempty" swaggertype:"string"`
	ProductCategory    string               `json:"product_category,omitempty" validate:"max=100"`
	TargetMarkets      string               `json:"target_markets,omitempty"`
	TargetCountries    string               `json:"target_countries,omitempty" example:"Germany, France"`

	ProjectDescription   string          `json:"project_description,omitempty"`
	BusinessCase         string          `json:"business_case,omitempty"`
	SuccessCriteria      string          `json:"success_criteria,omitempty"`
	EstimatedInvestment  decimal.Decimal `json:"estimated_investment" swaggertype:"number"`
	CompletionPercentage int             `json:"completion_percentage,omitempty" validate:"gte=0,lte=100"`

	CurrentPhase           string `json:"current_phase,omitempty" validate:"max=100"`
	NextMilestone          string `json:"next_milestone,omitempty"`
	RegulatoryStrategy     string `json:"regulatory_strategy,omitempty"`
	RequiredCertifications string `json:"required_certifications,omitempty"`
	ComplianceStatus       string `json:"compliance_status,omitempty" validate:"max=40"`

	ProjectManager string `json:"project_manager,omitempty" validate:"max=140"`
	RAndDLead      string `json:"r_and_d_lead,omitempty" validate:"max=140"`
	RegulatoryLead string `json:"regulatory_lead,omitempty" validate:"max=140"`
	TeamMembers    string `json:"team_members,omitempty"`
}

func (req *DevelopmentProjectRequest) apply(project *models.DevelopmentProject) {
	project.ProjectName = req.ProjectName
	project.ProjectType = req.ProjectType
	project.Status = req.Status
	project.Priority = req.Priority
	project.StartDate = req.StartDate.OrNil()
	project.ExpectedCompletion = req.ExpectedCompletion.OrNil()
	project.ProductCategory = req.ProductCategory
	project.TargetMarkets = req.TargetMarkets
	project.TargetCountries = req.TargetCountries
	project.ProjectDescription = req.ProjectDescription
	project.BusinessCase = req.BusinessCase
	project.SuccessCriteria = req.SuccessCriteria
	project.EstimatedInvestment = req.EstimatedInvestment
	project.CompletionPercentage = req.CompletionPercentage
	project.CurrentPhase = req.CurrentPhase
	project.NextMilestone = req.NextMilestone
	project.RegulatoryStrategy = req.RegulatoryStrategy
	project.RequiredCertifications = req.RequiredCertifications
	project.ComplianceStatus = req.ComplianceStatus
	project.ProjectManager = req.ProjectManager
	project.RAndDLead = req.RAndDLead
	project.RegulatoryLead = req.RegulatoryLead
	project.TeamMembers = req.TeamMembers
}

// DevelopmentProjectResponse represents the response for project operations
type DevelopmentProjectResponse struct {
	*models.DevelopmentProject
}

// DevelopmentProjectListResponse represents a paginated list of projects
type DevelopmentProjectListResponse = ListResponse[models.DevelopmentProject]

// DevelopmentProjectFilter holds the list query parameters
type DevelopmentProjectFilter struct {
	Status          string `form:"status"`
	Priority        string `form:"priority"`
	ProjectType     string `form:"project_type"`
	ProductCategory string `form:"product_category"`
}

// ProjectSummary is the at-a-glance view of an R&D project
type ProjectSummary struct {
	ProjectName          string               `json:"project_name"`
	Status               models.ProjectStatus `json:"status"`
	Priority             models.Priority      `json:"priority"`
	CompletionPercentage int                  `json:"completion_percentage"`
	DurationDays         *int                 `json:"duration_days"`
	TeamSize             int                  `json:"team_size"`
	EstimatedInvestment  decimal.Decimal      `json:"estimated_investment" swaggertype:"number"`
	CurrentPhase         string               `json:"current_phase"`
	ComplianceStatus     string               `json:"compliance_status"`
	TargetCountriesCount int                  `json:"target_countries_count"`
}

// ProjectDashboard aggregates projects for the dashboard
type ProjectDashboard struct {
	StatusSummary     []repository.GroupCount `json:"status_summary"`
	PrioritySummary   []repository.GroupCount `json:"priority_summary"`
	CompletionSummary []repository.GroupCount `json:"completion_summary"`
}

// Create creates a new R&D project
func (s *DevelopmentProjectService) Create(ctx context.Context, req *DevelopmentProjectRequest) (*DevelopmentProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project := &models.DevelopmentProject{}
	req.apply(project)
	if err := prepareProject(project, models.Today()); err != nil {
		return nil, err
	}

	project.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixProjects, cache.PrefixReports)

	return &DevelopmentProjectResponse{DevelopmentProject: project}, nil
}

// GetByID retrieves a project by ID
func (s *DevelopmentProjectService) GetByID(ctx context.Context, id uuid.UUID) (*DevelopmentProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	return &DevelopmentProjectResponse{DevelopmentProject: project}, nil
}

// GetAll retrieves projects with filters and pagination
func (s *DevelopmentProjectService) GetAll(ctx context.Context, filter DevelopmentProjectFilter, page, pageSize int) (*DevelopmentProjectListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	projects, total, err := s.repo.GetAll(repository.DevelopmentProjectFilter(filter), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return &DevelopmentProjectListResponse{Items: projects, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a project
func (s *DevelopmentProjectService) Update(ctx context.Context, id uuid.UUID, req *DevelopmentProjectRequest) (*DevelopmentProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	req.apply(project)
	if err := prepareProject(project, models.Today()); err != nil {
		return nil, err
	}

	project.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixProjects, cache.PrefixReports)

	return &DevelopmentProjectResponse{DevelopmentProject: project}, nil
}

// Delete deletes a project
func (s *DevelopmentProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixProjects, cache.PrefixReports)
	return nil
}

// GetSummary returns duration, team size and market reach of a project
func (s *DevelopmentProjectService) GetSummary(ctx context.Context, id uuid.UUID) (*ProjectSummary, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}

	var duration *int
	if project.StartDate != nil && project.ExpectedCompletion != nil {
		days := project.StartDate.DaysUntil(*project.ExpectedCompletion)
		duration = &days
	}

	return &ProjectSummary{
		ProjectName:          project.ProjectName,
		Status:               project.Status,
		Priority:             project.Priority,
		CompletionPercentage: project.CompletionPercentage,
		DurationDays:         duration,
		TeamSize:             teamSize(project),
		EstimatedInvestment:  project.EstimatedInvestment,
		CurrentPhase:         project.CurrentPhase,
		ComplianceStatus:     project.ComplianceStatus,
		TargetCountriesCount: len(splitList(project.TargetCountries)),
	}, nil
}

// GetComments returns the notes recorded against a project, oldest first
func (s *DevelopmentProjectService) GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	comments, err := s.comments.GetByReference(models.ReferenceProject, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

// GetDashboard returns status, priority and completion stage counts
func (s *DevelopmentProjectService) GetDashboard(ctx context.Context) (*ProjectDashboard, error) {
	return loadCached(ctx, s.dashboards, cache.PrefixProjects+"dashboard", func() (*ProjectDashboard, error) {
		byStatus, err := s.repo.CountByStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count project status: %w", err)
		}
		byPriority, err := s.repo.CountByPriority()
		if err != nil {
			return nil, fmt.Errorf("failed to count project priority: %w", err)
		}
		byStage, err := s.repo.CountByCompletionStage()
		if err != nil {
			return nil, fmt.Errorf("failed to count completion stages: %w", err)
		}
		return &ProjectDashboard{
			StatusSummary:     byStatus,
			PrioritySummary:   byPriority,
			CompletionSummary: byStage,
		}, nil
	})
}

func prepareProject(project *models.DevelopmentProject, today models.Date) error {
	if project.StartDate != nil && project.ExpectedCompletion != nil && project.StartDate.After(*project.ExpectedCompletion) {
		return apperrors.ErrProjectStartAfterEnd
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusPlanning
	}
	if project.Priority == "" {
		project.Priority = models.PriorityMedium
	}
	project.ComplianceStatus = orDefault(project.ComplianceStatus, "Not Started")
	project.LastUpdateDate = models.DatePtr(today)
	return nil
}

// teamSize counts the three leads plus the comma separated team members
func teamSize(project *models.DevelopmentProject) int {
	size := len(splitList(project.TeamMembers))
	for _, lead := range []string{project.ProjectManager, project.RAndDLead, project.RegulatoryLead} {
		if lead != "" {
			size++
		}
	}
	return size
}
