package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// OTPRepository define el puerto de persistencia para los códigos de un solo uso.
type OTPRepository interface {
	// Replace invalida cualquier código vivo del email e inserta el nuevo,
	// de forma atómica: a lo sumo un código vivo por email.
	Replace(code *entity.OTPCode) error
	// GetLiveByEmail devuelve el código no consumido más reciente del email,
	// o nil si no hay ninguno (expirado cuenta como vivo aquí: la distinción
	// InvalidCode/ExpiredCode la hace el caso de uso).
	GetLiveByEmail(email string) (*entity.OTPCode, error)
	// Consume marca el código como usado. Solo un llamador concurrente puede
	// ganar (UPDATE condicional); el perdedor recibe domain.ErrInvalidCode.
	Consume(id string) error
}
