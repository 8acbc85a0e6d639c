package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/pkg/logger"
)

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.TenantID == tenantID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) ListUnverified(limit, offset int) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range r.users {
		if !u.Verified {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ClearTeam(teamID string) error {
	for _, u := range r.users {
		if u.TeamID != nil && *u.TeamID == teamID {
			u.TeamID = nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[string]*entity.Tenant{}}
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error {
	r.tenants[t.ID] = t
	return nil
}

func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.tenants[id], nil
}

func (r *fakeTenantRepo) GetByName(name string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) List(limit, offset int) ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, t)
	}
	return out, nil
}

type fakeOTPRepo struct {
	codes map[string]*entity.OTPCode // por id
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{codes: map[string]*entity.OTPCode{}}
}

func (r *fakeOTPRepo) Replace(code *entity.OTPCode) error {
	now := time.Now()
	for _, c := range r.codes {
		if c.Email == code.Email && c.ConsumedAt == nil {
			t := now
			c.ConsumedAt = &t
		}
	}
	cp := *code
	r.codes[code.ID] = &cp
	return nil
}

func (r *fakeOTPRepo) GetLiveByEmail(email string) (*entity.OTPCode, error) {
	var latest *entity.OTPCode
	for _, c := range r.codes {
		if c.Email == email && c.ConsumedAt == nil {
			if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
				latest = c
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeOTPRepo) Consume(id string) error {
	c, ok := r.codes[id]
	if !ok || c.ConsumedAt != nil {
		return domain.ErrInvalidCode
	}
	now := time.Now()
	c.ConsumedAt = &now
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}}
}

func (r *fakeSessionRepo) Create(s *entity.Session) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) Revoke(id string) error {
	if s, ok := r.sessions[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

// fakeMailer captura el último código enviado en lugar de hablar SMTP.
type fakeMailer struct {
	lastEmail string
	lastCode  string
	sent      int
}

func (m *fakeMailer) SendOTP(toEmail, code string, expiry time.Duration) error {
	m.lastEmail = toEmail
	m.lastCode = code
	m.sent++
	return nil
}

// ── Fixture ──────────────────────────────────────────────────────────────────

type authFixture struct {
	uc       *AuthUseCase
	users    *fakeUserRepo
	tenants  *fakeTenantRepo
	otps     *fakeOTPRepo
	sessions *fakeSessionRepo
	mailer   *fakeMailer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    newFakeUserRepo(),
		tenants:  newFakeTenantRepo(),
		otps:     newFakeOTPRepo(),
		sessions: newFakeSessionRepo(),
		mailer:   &fakeMailer{},
	}
	f.uc = NewAuthUseCase(
		f.users, f.tenants, f.otps, f.sessions, f.mailer,
		JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "consola-test"},
		OTPConfig{Length: 6, Expiry: 10 * time.Minute},
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)
	f.tenants.Create(&entity.Tenant{ID: "tenant-1", Name: "Acme"})
	return f
}

func (f *authFixture) seedUser(t *testing.T, email string, verified bool) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:       "user-" + email,
		TenantID: "tenant-1",
		Email:    email,
		Verified: verified,
	}
	require.NoError(t, f.users.Create(u))
	return u
}

// ── Registro ─────────────────────────────────────────────────────────────────

func TestRegisterCreaUsuarioSinVerificar(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.uc.Register(dto.RegisterRequest{Email: "ana@acme.com", TenantID: "tenant-1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.com", resp.Email, "el email debe conservarse")
	assert.False(t, resp.Verified, "el usuario debe nacer sin verificar")
	assert.Nil(t, resp.TeamID, "el usuario debe nacer sin equipo")
}

func TestRegisterEmailDuplicadoFalla(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", false)

	_, err := f.uc.Register(dto.RegisterRequest{Email: "ana@acme.com", TenantID: "tenant-1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterTenantInexistenteFalla(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.Register(dto.RegisterRequest{Email: "ana@acme.com", TenantID: "tenant-x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterEmailInvalidoFalla(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.Register(dto.RegisterRequest{Email: "no-es-un-email", TenantID: "tenant-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

// ── Solicitud de OTP ─────────────────────────────────────────────────────────

func TestRequestOTPUsuarioDesconocidoFalla(t *testing.T) {
	f := newAuthFixture(t)

	err := f.uc.RequestOTP("nadie@acme.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Zero(t, f.mailer.sent, "no debe enviarse correo a emails sin usuario")
}

func TestRequestOTPEnviaCodigoDeSeisDigitos(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	assert.Equal(t, "ana@acme.com", f.mailer.lastEmail)
	assert.Len(t, f.mailer.lastCode, 6, "el código debe tener 6 dígitos")

	record, err := f.otps.GetLiveByEmail("ana@acme.com")
	require.NoError(t, err)
	require.NotNil(t, record, "debe haber un código vivo")
	assert.NotContains(t, record.CodeHash, f.mailer.lastCode, "el código nunca se guarda en claro")
}

func TestRequestOTPNuevaSolicitudInvalidaElCodigoAnterior(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	primero := f.mailer.lastCode
	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	segundo := f.mailer.lastCode

	// El código viejo ya no autentica, solo el más reciente.
	if primero != segundo {
		_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: primero})
		assert.ErrorIs(t, err, domain.ErrCodeMismatch, "el código anterior debe quedar invalidado")
	}

	resp, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: segundo})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// ── Verificación de OTP ──────────────────────────────────────────────────────

func TestVerifyOTPExitosoEmiteSesion(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	resp, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: f.mailer.lastCode})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token, "debe emitirse un token de sesión")
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestVerifyOTPEsDeUnSoloUso(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	code := f.mailer.lastCode

	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: code})
	require.NoError(t, err)

	_, err = f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: code})
	assert.ErrorIs(t, err, domain.ErrInvalidCode, "reutilizar el código debe fallar")
}

func TestVerifyOTPCodigoEquivocadoFalla(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	wrong := "000000"
	if f.mailer.lastCode == wrong {
		wrong = "999999"
	}
	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: wrong})
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)

	// El código correcto sigue vivo tras un intento fallido.
	resp, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: f.mailer.lastCode})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestVerifyOTPSinCodigoVivoFalla(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestVerifyOTPExpiradoFalla(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	// Forzar la expiración del código vivo.
	for _, c := range f.otps.codes {
		c.ExpiresAt = time.Now().Add(-time.Minute)
	}
	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: f.mailer.lastCode})
	assert.ErrorIs(t, err, domain.ErrExpiredCode)
}

func TestVerifyOTPUsuarioSinVerificarNoRecibeSesion(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", false)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	code := f.mailer.lastCode

	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: code})
	assert.ErrorIs(t, err, domain.ErrPendingVerification)
	assert.Empty(t, f.sessions.sessions, "no debe crearse sesión para usuarios sin verificar")

	// El código se consumió igual: no sirve para reintentar.
	_, err = f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: code})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestVerifyOTPNuncaFabricaUsuarios(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "fantasma@acme.com", Code: "123456"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, f.users.users, "verificar un OTP jamás crea usuarios")
}

// ── Sesiones y logout ────────────────────────────────────────────────────────

func TestResolveSessionDevuelveUsuarioFresco(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: f.mailer.lastCode})
	require.NoError(t, err)

	var sessionID string
	for id := range f.sessions.sessions {
		sessionID = id
	}
	require.NotEmpty(t, sessionID)

	got, err := f.uc.ResolveSession(sessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Un cambio de equipo posterior se ve en la siguiente resolución.
	team := "team-9"
	stored := f.users.users[user.ID]
	stored.TeamID = &team
	got, err = f.uc.ResolveSession(sessionID)
	require.NoError(t, err)
	require.NotNil(t, got.TeamID)
	assert.Equal(t, "team-9", *got.TeamID, "el usuario se recarga en cada petición")
}

func TestLogoutRevocaLaSesionDeInmediato(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "ana@acme.com", true)

	require.NoError(t, f.uc.RequestOTP("ana@acme.com"))
	_, err := f.uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@acme.com", Code: f.mailer.lastCode})
	require.NoError(t, err)

	var sessionID string
	for id := range f.sessions.sessions {
		sessionID = id
	}
	require.NoError(t, f.uc.Logout(sessionID))

	_, err = f.uc.ResolveSession(sessionID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated, "la sesión revocada no debe resolver")
}

func TestLogoutEsIdempotente(t *testing.T) {
	f := newAuthFixture(t)

	assert.NoError(t, f.uc.Logout("sesion-desconocida"))
	assert.NoError(t, f.uc.Logout("sesion-desconocida"))
}

func TestResolveSessionExpiradaFalla(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "ana@acme.com", true)

	expired := &entity.Session{
		ID:        "sesion-vieja",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, f.sessions.Create(expired))

	_, err := f.uc.ResolveSession("sesion-vieja")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
