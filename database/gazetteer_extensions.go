package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	loadSql "github.com/siherrmann/nluparsers/sql"
)

// GazetteerExtensionsDBHandlerFunctions defines the interface for gazetteer extension database operations.
type GazetteerExtensionsDBHandlerFunctions interface {
	InsertGazetteerExtension(ctx context.Context, extension *model.GazetteerExtension) error
	SelectGazetteerExtension(ctx context.Context, rid uuid.UUID) (*model.GazetteerExtension, error)
	SelectGazetteerExtensions(ctx context.Context, language string, entityIdentifier *string) ([]*model.GazetteerExtension, error)
	DeleteGazetteerExtensions(ctx context.Context, language string, entityIdentifier *string) (int64, error)
	DeleteGazetteerExtensionBatch(ctx context.Context, batchRID uuid.UUID) (int64, error)
}

// GazetteerExtensionsDBHandler stores the values added to gazetteer entities
// at runtime so they can be replayed into a freshly loaded parser.
type GazetteerExtensionsDBHandler struct {
	db *helper.Database
}

// NewGazetteerExtensionsDBHandler creates a new gazetteer extensions database handler.
// It loads the gazetteer extension SQL functions and creates the table.
// If force is true, it will reload the SQL functions even if they already exist.
func NewGazetteerExtensionsDBHandler(db *helper.Database, force bool) (*GazetteerExtensionsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	gazetteerExtensionsDbHandler := &GazetteerExtensionsDBHandler{
		db: db,
	}

	err := loadSql.LoadGazetteerExtensionsSql(gazetteerExtensionsDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load gazetteer extensions sql", err)
	}

	err = gazetteerExtensionsDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized GazetteerExtensionsDBHandler")

	return gazetteerExtensionsDbHandler, nil
}

// CreateTable creates the 'gazetteer_extensions' table and its indexes
// if they do not exist yet.
func (h *GazetteerExtensionsDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_gazetteer_extensions();`)
	if err != nil {
		log.Panicf("error initializing gazetteer_extensions table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table gazetteer_extensions")

	return nil
}

// InsertGazetteerExtension inserts the extension and fills in the columns
// set by the database.
func (h *GazetteerExtensionsDBHandler) InsertGazetteerExtension(ctx context.Context, extension *model.GazetteerExtension) error {
	metadata := extension.Metadata
	if metadata == nil {
		metadata = model.Metadata{}
	}

	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM insert_gazetteer_extension($1, $2, $3, $4, $5, $6)`,
		extension.BatchRID,
		extension.Language,
		extension.EntityIdentifier,
		extension.RawValue,
		extension.ResolvedValue,
		metadata,
	)

	err := scanGazetteerExtension(row, extension)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectGazetteerExtension retrieves an extension by RID
func (h *GazetteerExtensionsDBHandler) SelectGazetteerExtension(ctx context.Context, rid uuid.UUID) (*model.GazetteerExtension, error) {
	extension := &model.GazetteerExtension{}
	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM select_gazetteer_extension($1)`,
		rid,
	)

	err := scanGazetteerExtension(row, extension)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return extension, nil
}

// SelectGazetteerExtensions retrieves the extensions of a language in
// insertion order, optionally restricted to one entity identifier.
func (h *GazetteerExtensionsDBHandler) SelectGazetteerExtensions(ctx context.Context, language string, entityIdentifier *string) ([]*model.GazetteerExtension, error) {
	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_gazetteer_extensions($1, $2)`,
		language,
		entityIdentifier,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	extensions := []*model.GazetteerExtension{}
	for rows.Next() {
		extension := &model.GazetteerExtension{}
		err := scanGazetteerExtension(rows, extension)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		extensions = append(extensions, extension)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return extensions, nil
}

// DeleteGazetteerExtensions deletes the extensions of a language, optionally
// restricted to one entity identifier, and returns the number of deleted rows.
func (h *GazetteerExtensionsDBHandler) DeleteGazetteerExtensions(ctx context.Context, language string, entityIdentifier *string) (int64, error) {
	var deleted int64
	err := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT delete_gazetteer_extensions($1, $2)`,
		language,
		entityIdentifier,
	).Scan(&deleted)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return deleted, nil
}

// DeleteGazetteerExtensionBatch deletes the extensions added by one call.
func (h *GazetteerExtensionsDBHandler) DeleteGazetteerExtensionBatch(ctx context.Context, batchRID uuid.UUID) (int64, error) {
	var deleted int64
	err := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT delete_gazetteer_extension_batch($1)`,
		batchRID,
	).Scan(&deleted)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return deleted, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGazetteerExtension(row scanner, extension *model.GazetteerExtension) error {
	return row.Scan(
		&extension.ID,
		&extension.RID,
		&extension.BatchRID,
		&extension.Language,
		&extension.EntityIdentifier,
		&extension.RawValue,
		&extension.ResolvedValue,
		&extension.Metadata,
		&extension.CreatedAt,
	)
}
