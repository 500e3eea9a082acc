package components

import (
	"context"
	"log/slog"
	"time"

	"lending-core/internal/domain/user"
	"lending-core/internal/infra"
	"lending-core/internal/infra/db"
	"lending-core/internal/infra/memstore"
	"lending-core/internal/infra/readstore"
	"lending-core/internal/infra/repository"
	"lending-core/internal/infra/uow"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/config"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/pkg/password"
	"lending-core/internal/usecase/queries"
	"lending-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 30 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
	fx.Invoke(SeedAdmin),
)

// Persistence is everything the usecase layer reads and writes through,
// backed by either Postgres or the in-memory store.
type Persistence struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	CommandReads shared.CommandReads
	Users        queries.UserReadStore
	History      queries.HistoryReadStore
	Reservations queries.ReservationReadStore
	UserCreator  UserCreator
}

type UserCreator interface {
	Create(ctx context.Context, u *user.User) error
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage; state is lost on exit")
		store := memstore.New()
		return Persistence{
			UnitOfWork:   store,
			CommandReads: store.CommandReads(),
			Users:        store.UserReadStore(),
			History:      store.HistoryReadStore(),
			Reservations: store.ReservationReadStore(),
			UserCreator:  memoryUsers{store},
		}, nil
	default:
		pool, err := newPool(lc, cfg)
		if err != nil {
			return Persistence{}, err
		}
		users := repository.NewUserRepository(pool, logger)
		unitOfWork := uow.NewPostgresUoW(pool, logger)
		return Persistence{
			UnitOfWork:   unitOfWork,
			CommandReads: unitOfWork.CommandReads(),
			Users:        readstore.NewUserReadStore(users),
			History:      readstore.NewHistoryReadStore(pool, logger),
			Reservations: readstore.NewReservationReadStore(pool, logger),
			UserCreator:  users,
		}, nil
	}
}

func newPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
	return pool, nil
}

type memoryUsers struct{ store *memstore.Store }

func (m memoryUsers) Create(_ context.Context, u *user.User) error {
	m.store.PutUser(u)
	return nil
}

// SeedAdmin creates the first admin account from SEED_ADMIN_* so a fresh
// deployment can log in. An existing account with that email is left alone.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, users queries.UserReadStore, creator UserCreator, clk clock.Clock, logger *slog.Logger) {
	seed := cfg.Storage
	if seed.SeedAdminMail == "" || seed.SeedAdminPass == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			email, err := user.NewEmail(seed.SeedAdminMail)
			if err != nil {
				return errs.Wrap(err, "SEED_ADMIN_EMAIL")
			}
			if _, _, err := users.FindByEmail(ctx, email.Value()); err == nil {
				return nil
			} else if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrap(err, "look up seed admin")
			}

			pw, err := user.NewPassword(seed.SeedAdminPass)
			if err != nil {
				return errs.Wrap(err, "SEED_ADMIN_PASSWORD")
			}
			hash, err := password.HashPassword(pw.Value())
			if err != nil {
				return err
			}
			admin, err := user.NewUser(seed.SeedAdminName, email, hash, user.RoleAdmin, clk.Now())
			if err != nil {
				return err
			}
			if err := creator.Create(ctx, admin); err != nil && !infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrap(err, "create seed admin")
			}
			logger.Info("seed admin created", "user_id", admin.ID(), "email", email.Value())
			return nil
		},
	})
}
