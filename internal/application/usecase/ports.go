package usecase

import (
	"context"

	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Teams        repository.TeamRepository
	Users        repository.UserRepository
	Groups       repository.GroupRepository
	Roles        repository.RoleRepository
	Secrets      repository.SecretRepository
	Transactions repository.TransactionRepository
	Reports      repository.ReportRepository
}

// TxRunner ejecuta fn dentro de una transacción: todo o nada. Lo implementa
// postgres.TxRunner. Las cascadas (borrado de equipo/rol/usuario) pasan por
// aquí para no dejar relaciones colgantes si la operación se interrumpe.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
