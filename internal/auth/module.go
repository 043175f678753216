// Package auth wires the authentication module: register, login, and OTP
// verification in front of a user collection with configurable field names.
package auth

import (
	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"github.com/shandysiswandi/gatekit/internal/auth/inbound"
	"github.com/shandysiswandi/gatekit/internal/auth/outbound/db"
	"github.com/shandysiswandi/gatekit/internal/auth/outbound/mq"
	"github.com/shandysiswandi/gatekit/internal/auth/usecase"
	"github.com/shandysiswandi/gatekit/internal/pkg/clock"
	"github.com/shandysiswandi/gatekit/internal/pkg/config"
	"github.com/shandysiswandi/gatekit/internal/pkg/goroutine"
	"github.com/shandysiswandi/gatekit/internal/pkg/hash"
	"github.com/shandysiswandi/gatekit/internal/pkg/instrument"
	"github.com/shandysiswandi/gatekit/internal/pkg/jwt"
	"github.com/shandysiswandi/gatekit/internal/pkg/messaging"
	"github.com/shandysiswandi/gatekit/internal/pkg/otpcode"
	"github.com/shandysiswandi/gatekit/internal/pkg/router"
	"github.com/shandysiswandi/gatekit/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependency struct {
	DBConn     *mongo.Database            `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otpcode.Generator          `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, fieldMapFromConfig(dep.Config), dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// fieldMapFromConfig overlays configured physical field names onto the
// defaults, so the module can bind to differently-named schemas.
func fieldMapFromConfig(cfg config.Config) entity.FieldMap {
	fields := entity.DefaultFieldMap()

	overlay := func(dst *string, key string) {
		if v := cfg.GetString(key); v != "" {
			*dst = v
		}
	}

	overlay(&fields.User.Name, "modules.auth.fields.name")
	overlay(&fields.User.Email, "modules.auth.fields.email")
	overlay(&fields.User.Phone, "modules.auth.fields.phone")
	overlay(&fields.User.Password, "modules.auth.fields.password")
	overlay(&fields.OTP.User, "modules.auth.fields.otp_user")
	overlay(&fields.OTP.Code, "modules.auth.fields.otp_code")
	overlay(&fields.OTP.Expires, "modules.auth.fields.otp_expires")

	return fields
}
