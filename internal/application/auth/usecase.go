package auth

import (
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
	"github.com/jhoicas/Consola-api/pkg/jwt"
	"github.com/jhoicas/Consola-api/pkg/logger"
	"github.com/jhoicas/Consola-api/pkg/metrics"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OTPConfig parámetros de emisión de códigos.
type OTPConfig struct {
	Length int
	Expiry time.Duration
}

// AuthUseCase casos de uso de identidad: registro, OTP, sesiones.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	tenantRepo  repository.TenantRepository
	otpRepo     repository.OTPRepository
	sessionRepo repository.SessionRepository
	mailer      Mailer
	jwtCfg      JWTConfig
	otpCfg      OTPConfig
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	otpRepo repository.OTPRepository,
	sessionRepo repository.SessionRepository,
	mailer Mailer,
	jwtCfg JWTConfig,
	otpCfg OTPConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		tenantRepo:  tenantRepo,
		otpRepo:     otpRepo,
		sessionRepo: sessionRepo,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		otpCfg:      otpCfg,
		log:         log,
	}
}

// Register crea un usuario sin verificar dentro de un tenant existente.
// Devuelve domain.ErrEmailAlreadyExists si el email ya existe en ese tenant.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := checkmail.ValidateFormat(in.Email); err != nil {
		return nil, domain.ErrInvalidArgument
	}
	tenant, err := uc.tenantRepo.GetByID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound // tenant no existe
	}
	existing, _ := uc.userRepo.GetByEmailAndTenant(in.Email, in.TenantID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		TenantID:  in.TenantID,
		Email:     in.Email,
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// RequestOTP emite un código de un solo uso para el email y lo envía por correo.
// Una nueva solicitud invalida cualquier código vivo anterior del mismo email.
func (uc *AuthUseCase) RequestOTP(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	code, err := generateOTP(uc.otpCfg.Length)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	record := &entity.OTPCode{
		ID:        uuid.New().String(),
		Email:     email,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(uc.otpCfg.Expiry),
		CreatedAt: now,
	}
	if err := uc.otpRepo.Replace(record); err != nil {
		return err
	}
	metrics.ObserveOTPRequest()

	if err := uc.mailer.SendOTP(email, code, uc.otpCfg.Expiry); err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("envío de código OTP")
		return err
	}
	return nil
}

// VerifyOTP canjea email+código por una sesión. El código se consume en el
// éxito (un solo uso); ante dos verificaciones concurrentes solo una gana.
// Nunca fabrica usuarios: la sesión siempre respalda un User persistido y
// verificado.
func (uc *AuthUseCase) VerifyOTP(in dto.VerifyOTPRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		metrics.ObserveLogin("unknown")
		return nil, domain.ErrUserNotFound
	}

	record, err := uc.otpRepo.GetLiveByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		metrics.ObserveLogin("invalid")
		return nil, domain.ErrInvalidCode
	}
	now := time.Now()
	if now.After(record.ExpiresAt) {
		metrics.ObserveLogin("expired")
		return nil, domain.ErrExpiredCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(in.Code)); err != nil {
		metrics.ObserveLogin("mismatch")
		return nil, domain.ErrCodeMismatch
	}
	// Consumo first-committer-wins: el perdedor de la carrera recibe ErrInvalidCode.
	if err := uc.otpRepo.Consume(record.ID); err != nil {
		metrics.ObserveLogin("invalid")
		return nil, err
	}

	if !user.Verified {
		metrics.ObserveLogin("unverified")
		return nil, domain.ErrPendingVerification
	}

	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, session.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	metrics.ObserveLogin("ok")
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ResolveSession mapea un ID de sesión (claim jti) al usuario actual.
// Falla con ErrUnauthenticated si la sesión no existe, expiró o fue revocada.
// El usuario se recarga de la DB en cada petición: cambios de verificación o
// equipo surten efecto en la siguiente petición, sin claims obsoletos.
func (uc *AuthUseCase) ResolveSession(sessionID string) (*entity.User, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active(time.Now()) {
		return nil, domain.ErrUnauthenticated
	}
	user, err := uc.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Logout revoca la sesión. Idempotente: revocar una sesión ya revocada o
// desconocida no es un error.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.sessionRepo.Revoke(sessionID)
}

// ToUserResponse convierte la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Email:     u.Email,
		TeamID:    u.TeamID,
		Verified:  u.Verified,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
