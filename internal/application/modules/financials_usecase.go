package modules

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// FinancialsUseCase CRUD de transacciones con alcance de equipo.
// Los montos son decimal.Decimal de punta a punta (NUMERIC en DB).
type FinancialsUseCase struct {
	repo repository.TransactionRepository
}

// NewFinancialsUseCase construye el caso de uso del módulo financials.
func NewFinancialsUseCase(repo repository.TransactionRepository) *FinancialsUseCase {
	return &FinancialsUseCase{repo: repo}
}

// Create registra una transacción en el equipo del llamador.
func (uc *FinancialsUseCase) Create(caller *entity.User, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.TeamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		Amount:      in.Amount,
		Description: in.Description,
		TeamID:      in.TeamID,
		CreatedBy:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// ListByTeam lista las transacciones de un equipo. Equipo ajeno → ErrForbidden.
func (uc *FinancialsUseCase) ListByTeam(caller *entity.User, teamID string, limit, offset int) (*dto.TransactionListResponse, error) {
	if teamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByTeam(teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita una transacción del equipo del llamador.
func (uc *FinancialsUseCase) Update(caller *entity.User, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.ownedTransaction(caller, id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	tx.UpdatedAt = time.Now()
	if err := uc.repo.Update(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Delete elimina una transacción del equipo del llamador.
func (uc *FinancialsUseCase) Delete(caller *entity.User, id string) error {
	if _, err := uc.ownedTransaction(caller, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *FinancialsUseCase) ownedTransaction(caller *entity.User, id string) (*entity.Transaction, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if tx.TeamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	return tx, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Description: t.Description,
		TeamID:      t.TeamID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
