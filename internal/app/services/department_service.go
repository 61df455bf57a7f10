package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/logger"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	ListDepartments(ctx context.Context, filter repositories.DepartmentFilter, opts repositories.ListOptions) ([]*models.Department, int64, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetDepartmentByCode(ctx context.Context, code string) (*models.Department, error)
	DeleteDepartment(ctx context.Context, code string) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

// ListDepartments returns departments ordered by code
func (s *departmentServiceImpl) ListDepartments(ctx context.Context, filter repositories.DepartmentFilter, opts repositories.ListOptions) ([]*models.Department, int64, error) {
	departments, total, err := s.departmentRepo.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, total, nil
}

// GetDepartmentByID returns nil without error when the department does not exist
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// GetDepartmentByCode returns nil without error when the code is unknown
func (s *departmentServiceImpl) GetDepartmentByCode(ctx context.Context, code string) (*models.Department, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	department, err := s.departmentRepo.GetByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// DeleteDepartment removes a department together with its courses and their reviews.
// Professors of the department are kept without one.
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, code string) error {
	department, err := s.departmentRepo.GetByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error retrieving department: %w", err)
	}

	if err := s.departmentRepo.Delete(ctx, department.ID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	logger.Info().Str("code", department.Code).Msg("Department deleted")
	return nil
}
