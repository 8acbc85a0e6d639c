package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// TeamRepository define el puerto de persistencia para Team (DIP).
type TeamRepository interface {
	Create(team *entity.Team) error
	GetByID(id string) (*entity.Team, error)
	List(limit, offset int) ([]*entity.Team, error)
	Update(team *entity.Team) error
	Delete(id string) error
}
