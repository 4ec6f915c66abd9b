package digest

import (
	"net/http"

	"github.com/inkpress/inkpress/internal/digest/inbound"
	"github.com/inkpress/inkpress/internal/digest/outbound/scraper"
	"github.com/inkpress/inkpress/internal/digest/usecase"
	"github.com/inkpress/inkpress/internal/pkg/config"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/router"
	"github.com/inkpress/inkpress/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	source := scraper.New(
		&http.Client{Timeout: dep.Config.GetSecond("modules.digest.timeout_seconds")},
		scraper.Config{
			SourceURL: dep.Config.GetString("modules.digest.source_url"),
			Selector:  dep.Config.GetString("modules.digest.selector"),
		},
		dep.Instrument,
	)

	uc := usecase.New(usecase.Dependency{
		Source:     source,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
