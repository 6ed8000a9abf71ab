package overtime

import (
	"context"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
)

// TypeService manages the company's overtime type catalog. Rate changes only
// affect claims created afterwards.
type TypeService struct {
	typeRepo overtime.OTTypeRepository
}

func NewTypeService(typeRepo overtime.OTTypeRepository) *TypeService {
	return &TypeService{typeRepo: typeRepo}
}

func (s *TypeService) CreateType(ctx context.Context, req overtime.CreateOTTypeRequest) (overtime.OTTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OTTypeResponse{}, err
	}

	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return overtime.OTTypeResponse{}, err
	}
	if role != user.RoleAdmin {
		return overtime.OTTypeResponse{}, user.ErrAdminAccessRequired
	}

	created, err := s.typeRepo.Create(ctx, overtime.OTType{
		CompanyID:  companyID,
		Name:       req.Name,
		RateBasis:  compensation.RateBasis(req.RateBasis),
		HourlyRate: req.HourlyRate,
		Multiplier: req.Multiplier,
		IsActive:   true,
	})
	if err != nil {
		return overtime.OTTypeResponse{}, err
	}

	return mapTypeToResponse(created), nil
}

func (s *TypeService) UpdateType(ctx context.Context, req overtime.UpdateOTTypeRequest) (overtime.OTTypeResponse, error) {
	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return overtime.OTTypeResponse{}, err
	}
	if role != user.RoleAdmin {
		return overtime.OTTypeResponse{}, user.ErrAdminAccessRequired
	}

	if err := s.typeRepo.Update(ctx, companyID, req); err != nil {
		return overtime.OTTypeResponse{}, err
	}

	updated, err := s.typeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return overtime.OTTypeResponse{}, err
	}
	return mapTypeToResponse(updated), nil
}

func (s *TypeService) ListTypes(ctx context.Context, activeOnly bool) ([]overtime.OTTypeResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.typeRepo.ListByCompanyID(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]overtime.OTTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, mapTypeToResponse(t))
	}
	return result, nil
}

func (s *TypeService) DeactivateType(ctx context.Context, id string) error {
	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if role != user.RoleAdmin {
		return user.ErrAdminAccessRequired
	}

	return s.typeRepo.Deactivate(ctx, id, companyID)
}

func mapTypeToResponse(t overtime.OTType) overtime.OTTypeResponse {
	return overtime.OTTypeResponse{
		ID:         t.ID,
		CompanyID:  t.CompanyID,
		Name:       t.Name,
		RateBasis:  string(t.RateBasis),
		HourlyRate: t.HourlyRate,
		Multiplier: t.Multiplier,
		IsActive:   t.IsActive,
	}
}
