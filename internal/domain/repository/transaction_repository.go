package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction
// (módulo financials).
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByTeam(teamID string, limit, offset int) ([]*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
	DeleteByTeam(teamID string) error
}
