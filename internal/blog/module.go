package blog

import (
	"github.com/inkpress/inkpress/internal/blog/inbound"
	"github.com/inkpress/inkpress/internal/blog/outbound/db"
	"github.com/inkpress/inkpress/internal/blog/usecase"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/router"
	"github.com/inkpress/inkpress/internal/pkg/uid"
	"github.com/inkpress/inkpress/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbBlog := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbBlog,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
