package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	portssvc "github.com/procurio/procure_backend/internal/core/ports/services"
	"github.com/procurio/procure_backend/internal/dto"
)

// supplierServiceImpl implements the SupplierSvcFacade interface
type supplierServiceImpl struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierServiceImpl{supplierRepo: repo}
}

// Ensure supplierServiceImpl implements the SupplierSvcFacade interface
var _ portssvc.SupplierSvcFacade = (*supplierServiceImpl)(nil)

func (s *supplierServiceImpl) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:   uuid.NewString(),
		Name:         req.Name,
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier",
			slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created successfully",
		slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierServiceImpl) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier by ID",
				slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierServiceImpl) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *supplierServiceImpl) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		supplier.Name = *req.Name
		updated = true
	}
	if req.CompanyName != nil {
		supplier.CompanyName = *req.CompanyName
		updated = true
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = *req.ContactEmail
		updated = true
	}
	if req.PhoneNumber != nil {
		supplier.PhoneNumber = *req.PhoneNumber
		updated = true
	}
	if req.Address != nil {
		supplier.Address = *req.Address
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for supplier update",
			slog.String("supplier_id", supplierID))
		return supplier, nil
	}

	supplier.LastUpdatedAt = time.Now()

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier",
			slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier updated successfully",
		slog.String("supplier_id", supplierID))
	return supplier, nil
}

func (s *supplierServiceImpl) DeleteSupplier(ctx context.Context, supplierID string) error {
	if _, err := s.GetSupplierByID(ctx, supplierID); err != nil {
		return err
	}

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete supplier",
				slog.String("supplier_id", supplierID))
		}
		return err
	}

	s.LogInfo(ctx, "Supplier deleted successfully",
		slog.String("supplier_id", supplierID))
	return nil
}
