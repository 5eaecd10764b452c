package org

import (
	"context"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/org"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DepartmentService handles department-related business operations
type DepartmentService struct {
	departmentRepo org.DepartmentRepository
	assetRepo      asset.Repository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo org.DepartmentRepository, assetRepo asset.Repository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		assetRepo:      assetRepo,
	}
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	exists, err := s.departmentRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this name already exists")
	}

	department, err := org.NewDepartment(req.Name, req.Description, req.ManagerName)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		department.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	return ToDepartmentResponse(department), nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDepartmentResponse(department), nil
}

// List retrieves departments matching the filter
func (s *DepartmentService) List(ctx context.Context, filter ListFilter) ([]DepartmentResponse, int64, error) {
	domainFilter := buildFilter(filter)

	departments, err := s.departmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.departmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *ToDepartmentResponse(&departments[i])
	}

	return responses, total, nil
}

// Update updates an existing department
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if department.Name != req.Name {
		exists, err := s.departmentRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this name already exists")
		}
	}

	if err := department.Update(req.Name, req.Description, req.ManagerName); err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	return ToDepartmentResponse(department), nil
}

// Delete removes a department not referenced by any asset
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.departmentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	assetCount, err := s.assetRepo.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return shared.NewDomainError("DEPARTMENT_IN_USE", "Department is referenced by assets and cannot be deleted")
	}

	return s.departmentRepo.Delete(ctx, id)
}

func buildFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	return domainFilter
}
