package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService handles employee management
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// EmployeeInput represents create/update employee data
type EmployeeInput struct {
	Name     string
	Role     string
	Passcode string
	IsActive *bool
}

// CreateEmployee creates a new employee. The passcode is hashed before it is
// stored and never returned.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *EmployeeInput) (*entity.Employee, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Employee name is required")
	}

	employee := &entity.Employee{
		Name:     input.Name,
		Role:     input.Role,
		IsActive: true,
	}
	if employee.Role == "" {
		employee.Role = "cashier"
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}
	if input.Passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasscodeHash = string(hash)
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// ListEmployees returns employees, optionally only active ones
func (s *EmployeeService) ListEmployees(ctx context.Context, activeOnly bool) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx, activeOnly)
}

// UpdateEmployee updates an existing employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *EmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Role != "" {
		employee.Role = input.Role
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}
	if input.Passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasscodeHash = string(hash)
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee soft-deletes an employee
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}
