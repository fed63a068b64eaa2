package method

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"scoringAPI/internal/domain"
)

// AuthConfig соли и логин администратора. Переменные: SCORING_AUTH_SALT, SCORING_AUTH_ADMIN_LOGIN, SCORING_AUTH_ADMIN_SALT.
type AuthConfig struct {
	Salt       string `envconfig:"SALT" default:"Otus"`
	AdminLogin string `envconfig:"ADMIN_LOGIN" default:"admin"`
	AdminSalt  string `envconfig:"ADMIN_SALT" default:"42"`
}

// adminHourLayout час по местному времени: токен админа действует до конца текущего часа.
const adminHourLayout = "2006010215"

// Verifier проверяет токен вызывающего по SHA-512 дайджесту.
type Verifier struct {
	cfg AuthConfig
	now func() time.Time
}

// NewVerifier создаёт проверку токенов с заданными солями.
func NewVerifier(cfg AuthConfig) *Verifier {
	return &Verifier{cfg: cfg, now: time.Now}
}

// Context собирает данные вызывающего из конверта.
func (v *Verifier) Context(req domain.MethodRequest) domain.AuthContext {
	return domain.AuthContext{
		Account: req.Account,
		Login:   req.Login,
		Token:   req.Token,
		IsAdmin: req.Login == v.cfg.AdminLogin,
	}
}

// Digest возвращает ожидаемый hex-дайджест для вызывающего.
func (v *Verifier) Digest(auth domain.AuthContext) string {
	var msg string
	if auth.IsAdmin {
		msg = v.now().Format(adminHourLayout) + v.cfg.AdminSalt
	} else {
		msg = auth.Account + auth.Login + v.cfg.Salt
	}
	sum := sha512.Sum512([]byte(msg))
	return hex.EncodeToString(sum[:])
}

// Check сравнивает токен с ожидаемым дайджестом за постоянное время.
func (v *Verifier) Check(auth domain.AuthContext) bool {
	return subtle.ConstantTimeCompare([]byte(v.Digest(auth)), []byte(auth.Token)) == 1
}

// Verify возвращает domain.ErrForbidden, если токен не совпал.
func (v *Verifier) Verify(auth domain.AuthContext) error {
	if !v.Check(auth) {
		return fmt.Errorf("%w: login %q", domain.ErrForbidden, auth.Login)
	}
	return nil
}
