package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Vault ────────────────────────────────────────────────────────────────────

// CreateSecretRequest alta de secreto.
type CreateSecretRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Value  string `json:"value" validate:"required"`
	TeamID string `json:"teamId" validate:"required,uuid"`
}

// UpdateSecretRequest edición parcial de secreto.
type UpdateSecretRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Value *string `json:"value,omitempty"`
}

// SecretResponse representación pública de un secreto.
type SecretResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	TeamID    string    `json:"teamId"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SecretListResponse listado paginado de secretos.
type SecretListResponse struct {
	Items []SecretResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Financials ───────────────────────────────────────────────────────────────

// CreateTransactionRequest alta de transacción.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	TeamID      string          `json:"teamId" validate:"required,uuid"`
}

// UpdateTransactionRequest edición parcial de transacción.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
}

// TransactionResponse representación pública de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TeamID      string          `json:"teamId"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TransactionListResponse listado paginado de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── Reporting ────────────────────────────────────────────────────────────────

// CreateReportRequest alta de informe.
type CreateReportRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
	TeamID  string `json:"teamId" validate:"required,uuid"`
}

// UpdateReportRequest edición parcial de informe.
type UpdateReportRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty"`
}

// ReportResponse representación pública de un informe.
type ReportResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TeamID    string    `json:"teamId"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReportListResponse listado paginado de informes.
type ReportListResponse struct {
	Items []ReportResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
