package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

// SaleDedup abstracts the idempotency store (Redis). A replayed
// Idempotency-Key means the client retried a sale that already went
// through; the stock must not be depleted twice.
type SaleDedup interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// InventoryService implements the inventory ledger use cases.
type InventoryService struct {
	repo     ports.DrugRepository
	recorder ports.ActivityRecorder
	dedup    SaleDedup
	log      zerolog.Logger
}

func NewInventoryService(repo ports.DrugRepository, recorder ports.ActivityRecorder, dedup SaleDedup, log zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, recorder: recorder, dedup: dedup, log: log}
}

// List returns all drugs ordered by id ascending.
func (s *InventoryService) List(ctx context.Context) ([]domain.Drug, error) {
	return s.repo.List(ctx)
}

// Create adds a new drug to the ledger. Admin-gated at the route level.
func (s *InventoryService) Create(ctx context.Context, actor ports.Actor, input ports.DrugInput) (*domain.Drug, error) {
	if err := validateDrugInput(input); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Drug{
		Name:     input.Name,
		Dosage:   input.Dosage,
		Quantity: input.Quantity,
		Price:    input.Price,
		Brand:    input.Brand,
		Location: input.Location,
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, domain.ActionStockAdded,
		fmt.Sprintf("Admin added new drug: %s (Qty: %d, Price: %.2f)", created.Name, created.Quantity, created.Price))

	return created, nil
}

// Update replaces every field of the identified drug.
func (s *InventoryService) Update(ctx context.Context, actor ports.Actor, id int64, input ports.DrugInput) (*domain.Drug, error) {
	if err := validateDrugInput(input); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &domain.Drug{
		ID:       id,
		Name:     input.Name,
		Dosage:   input.Dosage,
		Quantity: input.Quantity,
		Price:    input.Price,
		Brand:    input.Brand,
		Location: input.Location,
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, domain.ActionStockUpdated,
		fmt.Sprintf("Admin updated drug: %s (Qty: %d, Price: %.2f)", updated.Name, updated.Quantity, updated.Price))

	return updated, nil
}

// Delete removes a drug. The name is captured before deletion so the
// audit entry survives the record disappearing.
func (s *InventoryService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	drug, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, domain.ActionStockDeleted,
		fmt.Sprintf("Admin deleted drug: %s (Drug ID: %d)", drug.Name, id))

	return nil
}

// Sell depletes stock by the requested amount. The quantity check and the
// decrement happen in one conditional statement inside the repository, so
// concurrent sales of the same drug can never drive quantity negative.
func (s *InventoryService) Sell(ctx context.Context, input ports.SellInput) (*domain.Drug, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.log.Info().Str("idempotency_key", input.IdempotencyKey).Int64("drug_id", input.DrugID).Msg("duplicate sale skipped")
			return s.repo.GetByID(ctx, input.DrugID)
		}
	}

	drug, err := s.repo.Sell(ctx, input.DrugID, input.Quantity)
	if err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		if markErr := s.dedup.Mark(ctx, input.IdempotencyKey); markErr != nil {
			s.log.Warn().Err(markErr).Str("idempotency_key", input.IdempotencyKey).Msg("failed to set dedup key")
		}
	}

	s.recorder.Record(ctx, input.Actor, domain.ActionDrugSold,
		fmt.Sprintf("%s sold %d units of %s (Drug ID: %d)", roleTitle(input.Actor.Role), input.Quantity, drug.Name, drug.ID))

	return drug, nil
}

func validateDrugInput(input ports.DrugInput) error {
	if input.Name == "" {
		return domain.ErrInvalidDrugData
	}
	if input.Quantity < 0 {
		return domain.ErrInvalidDrugData
	}
	if input.Price <= 0 {
		return domain.ErrInvalidDrugData
	}
	return nil
}

func roleTitle(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "Admin"
	case domain.RoleCashier:
		return "Cashier"
	default:
		return string(role)
	}
}
