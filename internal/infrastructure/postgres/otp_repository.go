package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo implementación del puerto OTPRepository sobre PostgreSQL.
type OTPRepo struct {
	q Querier
}

// NewOTPRepository construye el adaptador de persistencia para códigos OTP. Pasar pool o tx (Querier).
func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

// Replace invalida cualquier código vivo del email e inserta el nuevo en una
// sola sentencia por paso. Invariante: a lo sumo un código vivo por email.
func (r *OTPRepo) Replace(code *entity.OTPCode) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`UPDATE otp_codes SET consumed_at = now() WHERE email = $1 AND consumed_at IS NULL`,
		code.Email,
	); err != nil {
		return fmt.Errorf("invalidate prior otp codes: %w", err)
	}
	query := `
		INSERT INTO otp_codes (id, email, code_hash, expires_at, consumed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query,
		code.ID, code.Email, code.CodeHash, code.ExpiresAt, code.ConsumedAt, code.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert otp code: %w", err)
	}
	return nil
}

// GetLiveByEmail devuelve el código no consumido más reciente del email, o nil.
// Un código expirado pero no consumido sigue siendo "vivo" aquí: la distinción
// InvalidCode/ExpiredCode la hace el caso de uso.
func (r *OTPRepo) GetLiveByEmail(email string) (*entity.OTPCode, error) {
	query := `
		SELECT id, email, code_hash, expires_at, consumed_at, created_at
		FROM otp_codes
		WHERE email = $1 AND consumed_at IS NULL
		ORDER BY created_at DESC LIMIT 1`
	var c entity.OTPCode
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.Email, &c.CodeHash, &c.ExpiresAt, &c.ConsumedAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get live otp code: %w", err)
	}
	return &c, nil
}

// Consume marca el código como usado con un UPDATE condicional: ante dos
// verificaciones concurrentes solo la primera afecta la fila, la otra recibe
// ErrInvalidCode.
func (r *OTPRepo) Consume(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE otp_codes SET consumed_at = now() WHERE id = $1 AND consumed_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("consume otp code: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidCode
	}
	return nil
}
