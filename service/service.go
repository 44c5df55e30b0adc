package service

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/siherrmann/nluparsers"
	"github.com/siherrmann/nluparsers/database"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
	loadSql "github.com/siherrmann/nluparsers/sql"
)

// Service serves a persisted BuiltinEntityParser whose gazetteer extensions
// are kept in PostgreSQL and replayed on startup.
type Service struct {
	DB         *helper.Database
	Extensions *database.GazetteerExtensionsDBHandler
	// Guards parser, which is swapped on reset
	mu         sync.RWMutex
	parser     *nluparsers.BuiltinEntityParser
	parserPath string
	opts       []nluparsers.Option
	// Logging
	log *slog.Logger
}

// NewService connects to the database, loads the parser persisted at
// parserPath and replays the stored extensions of its language.
func NewService(ctx context.Context, config *helper.DatabaseConfiguration, parserPath string, opts ...nluparsers.Option) (*Service, error) {
	// Logger
	handlerOpts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, handlerOpts))

	db := helper.NewDatabase("nluparsers", config, logger)
	return newService(ctx, db, parserPath, logger, opts...)
}

// newService closes db if the service cannot be set up.
func newService(ctx context.Context, db *helper.Database, parserPath string, logger *slog.Logger, opts ...nluparsers.Option) (*Service, error) {
	// Initialize database
	err := loadSql.Init(db.Instance)
	if err != nil {
		db.Close()
		return nil, helper.NewError("initialize database extensions", err)
	}

	// force=false to not reload if functions already exist
	extensions, err := database.NewGazetteerExtensionsDBHandler(db, false)
	if err != nil {
		db.Close()
		return nil, helper.NewError("create gazetteer extensions handler", err)
	}

	s := &Service{
		DB:         db,
		Extensions: extensions,
		parserPath: parserPath,
		opts:       append([]nluparsers.Option{nluparsers.WithLogger(logger)}, opts...),
		log:        logger,
	}

	parser, err := s.loadParser(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	s.parser = parser

	return s, nil
}

func (s *Service) loadParser(ctx context.Context) (*nluparsers.BuiltinEntityParser, error) {
	parser, err := nluparsers.FromPath(s.parserPath, s.opts...)
	if err != nil {
		return nil, helper.NewError("load parser", err)
	}

	applied, err := parser.ReplayGazetteerExtensions(ctx, s.Extensions)
	if err != nil {
		return nil, helper.NewError("replay gazetteer extensions", err)
	}

	s.log.Info("Loaded parser", slog.String("path", s.parserPath), slog.Int("replayed_values", applied))
	return parser, nil
}

// Close closes the database connection
func (s *Service) Close() error {
	if s.DB != nil && s.DB.Instance != nil {
		return s.DB.Instance.Close()
	}
	return nil
}

// Parser returns the current parser.
func (s *Service) Parser() *nluparsers.BuiltinEntityParser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parser
}

// Extract extracts the entities of sentence whose kind is in scope.
func (s *Service) Extract(sentence string, scope []ontology.BuiltinEntityKind) []model.BuiltinEntity {
	return s.Parser().Extract(sentence, scope)
}

// ExtendGazetteerEntity extends a gazetteer kind of the parser and stores
// the values so they survive a restart.
func (s *Service) ExtendGazetteerEntity(ctx context.Context, kind ontology.GazetteerEntityKind, values []model.EntityValue) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	err := s.parser.ExtendAndStoreGazetteerEntity(ctx, s.Extensions, kind, values)
	if err != nil {
		return helper.NewError("extend gazetteer entity", err)
	}

	s.log.Info("Extended gazetteer entity", slog.String("kind", kind.Identifier()), slog.Int("values", len(values)))
	return nil
}

// ResetGazetteerExtensions deletes the stored extensions of a gazetteer kind,
// or of all kinds when kind is nil, and reloads the parser from disk.
func (s *Service) ResetGazetteerExtensions(ctx context.Context, kind *ontology.GazetteerEntityKind) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var identifier *string
	if kind != nil {
		id := kind.Identifier()
		identifier = &id
	}

	deleted, err := s.Extensions.DeleteGazetteerExtensions(ctx, s.parser.Language().String(), identifier)
	if err != nil {
		return 0, helper.NewError("delete gazetteer extensions", err)
	}

	parser, err := s.loadParser(ctx)
	if err != nil {
		return deleted, err
	}
	s.parser = parser

	return deleted, nil
}
