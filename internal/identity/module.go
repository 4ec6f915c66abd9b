package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/inkpress/inkpress/internal/identity/inbound"
	"github.com/inkpress/inkpress/internal/identity/outbound/cache"
	"github.com/inkpress/inkpress/internal/identity/outbound/db"
	"github.com/inkpress/inkpress/internal/identity/outbound/mailer"
	"github.com/inkpress/inkpress/internal/identity/usecase"
	"github.com/inkpress/inkpress/internal/pkg/clock"
	"github.com/inkpress/inkpress/internal/pkg/config"
	"github.com/inkpress/inkpress/internal/pkg/goroutine"
	"github.com/inkpress/inkpress/internal/pkg/hash"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/inkpress/inkpress/internal/pkg/mail"
	"github.com/inkpress/inkpress/internal/pkg/otp"
	"github.com/inkpress/inkpress/internal/pkg/router"
	"github.com/inkpress/inkpress/internal/pkg/uid"
	"github.com/inkpress/inkpress/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Challenges *cache.Store               `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Totp       otp.OTP                    `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbUser := db.NewDB(dep.DBConn, dep.Instrument)
	otpMailer := mailer.New(dep.Mail, dep.Clock, dep.Instrument, dep.Config.GetString("app.site_name"))

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbUser,
		Challenges: dep.Challenges,
		Mailer:     otpMailer,
		Validator:  dep.Validator,
		Config:     dep.Config,
		HMAC:       dep.HMAC,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		OID:        dep.OID,
		Totp:       dep.Totp,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
