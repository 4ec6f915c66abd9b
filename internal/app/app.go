package app

import (
	"context"
	"net/http"

	"github.com/inkpress/inkpress/internal/identity/outbound/cache"
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	totp      otp.OTP
	jwt       jwt.JWT

	// resources
	dbConn     *pgxpool.Pool
	cacheConn  *redis.Client
	challenges *cache.Store
	mail       mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
