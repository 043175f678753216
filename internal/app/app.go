// Package app wires dependencies and manages the service lifecycle.
package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gatekit/internal/pkg/clock"
	"github.com/shandysiswandi/gatekit/internal/pkg/config"
	"github.com/shandysiswandi/gatekit/internal/pkg/goroutine"
	"github.com/shandysiswandi/gatekit/internal/pkg/hash"
	"github.com/shandysiswandi/gatekit/internal/pkg/instrument"
	"github.com/shandysiswandi/gatekit/internal/pkg/jwt"
	"github.com/shandysiswandi/gatekit/internal/pkg/messaging"
	"github.com/shandysiswandi/gatekit/internal/pkg/otpcode"
	"github.com/shandysiswandi/gatekit/internal/pkg/router"
	"github.com/shandysiswandi/gatekit/internal/pkg/uid"
	"github.com/shandysiswandi/gatekit/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/mongo"
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
	bcrypt    hash.Hash
	uuid      uid.StringID
	otp       otpcode.Generator
	jwt       jwt.JWT

	// resources
	dbClient  *mongo.Client
	dbConn    *mongo.Database
	messaging messaging.Messaging

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
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
