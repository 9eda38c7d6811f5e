package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shandysiswandi/tgauth/internal/identity/inbound"
	"github.com/shandysiswandi/tgauth/internal/identity/outbound/cache"
	"github.com/shandysiswandi/tgauth/internal/identity/outbound/db"
	"github.com/shandysiswandi/tgauth/internal/identity/outbound/mq"
	"github.com/shandysiswandi/tgauth/internal/identity/usecase"
	"github.com/shandysiswandi/tgauth/internal/pkg/config"
	"github.com/shandysiswandi/tgauth/internal/pkg/ephemeral"
	"github.com/shandysiswandi/tgauth/internal/pkg/hash"
	"github.com/shandysiswandi/tgauth/internal/pkg/instrument"
	"github.com/shandysiswandi/tgauth/internal/pkg/jwt"
	"github.com/shandysiswandi/tgauth/internal/pkg/messaging"
	"github.com/shandysiswandi/tgauth/internal/pkg/otp"
	"github.com/shandysiswandi/tgauth/internal/pkg/router"
	"github.com/shandysiswandi/tgauth/internal/pkg/uid"
	"github.com/shandysiswandi/tgauth/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Store      ephemeral.Store            `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Bcrypt     hash.Hasher                `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.Issuer                 `validate:"required"`
}

// New wires the identity module and registers its HTTP endpoints. The
// returned usecase is the boundary the chat channel calls into.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	gen, err := otp.NewNumeric(dep.Config.GetInt("modules.identity.otp.length"))
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoCache:     cache.NewCache(dep.Store, dep.Validator, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UUID:          dep.UUID,
		OTP:           gen,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}
