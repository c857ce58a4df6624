package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/immxrko/fc-patron-sub000/external/push"
	"github.com/immxrko/fc-patron-sub000/internal/config"
	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
	"github.com/immxrko/fc-patron-sub000/internal/domain/goal"
	"github.com/immxrko/fc-patron-sub000/internal/domain/lineup"
	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/domain/opponent"
	"github.com/immxrko/fc-patron-sub000/internal/domain/player"
	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/domain/season"
	"github.com/immxrko/fc-patron-sub000/internal/infrastructure/repository/memory"
	"github.com/immxrko/fc-patron-sub000/internal/infrastructure/repository/postgres"
	"github.com/immxrko/fc-patron-sub000/internal/interfaces/httpapi"
	"github.com/immxrko/fc-patron-sub000/internal/platform/cache"
	idgen "github.com/immxrko/fc-patron-sub000/internal/platform/id"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
	"github.com/immxrko/fc-patron-sub000/internal/platform/resilience"
	"github.com/immxrko/fc-patron-sub000/internal/usecase"
)

type repositories struct {
	matches   match.Repository
	seasons   season.Repository
	opponents opponent.Repository
	players   player.Repository
	lineups   lineup.Repository
	cards     card.Repository
	goals     goal.Repository
	practices practice.Repository
}

// NewHTTPServer wires the whole service. The returned cleanup closes the
// database handle when one was opened; it is nil-safe to call.
func NewHTTPServer(cfg config.Config, httpLogger *slog.Logger, logger *logging.Logger) (*http.Server, func() error, error) {
	if httpLogger == nil {
		httpLogger = slog.Default()
	}
	if logger == nil {
		logger = logging.Default()
	}

	cleanup := func() error { return nil }

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if db != nil {
		cleanup = db.Close
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	matchSvc := usecase.NewMatchService(
		repos.matches,
		repos.seasons,
		repos.opponents,
		repos.players,
		repos.lineups,
		repos.cards,
		repos.goals,
		store,
		logger,
	)
	practiceSvc := usecase.NewPracticeService(repos.practices, logger)
	rosterSvc := usecase.NewRosterService(repos.players, repos.seasons, repos.opponents)
	statsSvc := usecase.NewStatsService(repos.seasons, repos.players, repos.lineups, repos.cards, repos.goals)

	if cfg.PushEnabled {
		notifier := push.NewClient(push.ClientConfig{
			WebhookURL: cfg.PushWebhookURL,
			Token:      cfg.PushToken,
			Timeout:    cfg.PushTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.PushCircuitEnabled,
				FailureThreshold: cfg.PushCircuitFailureCount,
				OpenTimeout:      cfg.PushCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.PushCircuitHalfOpenMaxReq,
			},
		}, idgen.NewRandomGenerator(), logger)
		matchSvc.SetResultNotifier(notifier)
	}

	handler := httpapi.NewHandler(matchSvc, practiceSvc, rosterSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("no DB_URL configured, using in-memory repositories")
		matchRepo := memory.NewMatchRepository(memory.SeedMatches())
		return repositories{
			matches:   matchRepo,
			seasons:   memory.NewSeasonRepository(memory.SeedSeasons()),
			opponents: memory.NewOpponentRepository(memory.SeedOpponents()),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			lineups:   memory.NewLineupRepository(matchRepo),
			cards:     memory.NewCardRepository(matchRepo),
			goals:     memory.NewGoalRepository(matchRepo),
			practices: memory.NewPracticeRepository(memory.SeedPractices()),
		}, nil, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("connected to database", "db_name", dbNameFromURL(dbURL))
	return repositories{
		matches:   postgres.NewMatchRepository(db),
		seasons:   postgres.NewSeasonRepository(db),
		opponents: postgres.NewOpponentRepository(db),
		players:   postgres.NewPlayerRepository(db),
		lineups:   postgres.NewLineupRepository(db),
		cards:     postgres.NewCardRepository(db),
		goals:     postgres.NewGoalRepository(db),
		practices: postgres.NewPracticeRepository(db),
	}, db, nil
}
