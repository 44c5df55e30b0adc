package nluparsers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
)

// GazetteerExtensionStore keeps the values added to gazetteer entities at
// runtime. database.GazetteerExtensionsDBHandler implements it.
type GazetteerExtensionStore interface {
	InsertGazetteerExtension(ctx context.Context, extension *model.GazetteerExtension) error
	SelectGazetteerExtensions(ctx context.Context, language string, entityIdentifier *string) ([]*model.GazetteerExtension, error)
	DeleteGazetteerExtensionBatch(ctx context.Context, batchRID uuid.UUID) (int64, error)
}

// ExtendAndStoreGazetteerEntity records the values in store as one batch and
// then extends the gazetteer kind like ExtendGazetteerEntity. Either both
// happen or neither: a batch that cannot be stored completely is deleted
// again and the parser is left unchanged.
func (p *BuiltinEntityParser) ExtendAndStoreGazetteerEntity(ctx context.Context, store GazetteerExtensionStore, kind ontology.GazetteerEntityKind, values []model.EntityValue) error {
	if err := p.checkExtendable(kind); err != nil {
		return err
	}

	batch := uuid.New()
	for _, value := range values {
		extension := &model.GazetteerExtension{
			BatchRID:         batch,
			Language:         p.language.String(),
			EntityIdentifier: kind.Identifier(),
			RawValue:         value.RawValue,
			ResolvedValue:    value.ResolvedValue,
			Metadata:         model.Metadata{},
		}
		if err := store.InsertGazetteerExtension(ctx, extension); err != nil {
			return p.rollbackGazetteerExtensions(ctx, store, batch, helper.NewError("insert gazetteer extension", err))
		}
	}

	if err := p.ExtendGazetteerEntity(kind, values); err != nil {
		return p.rollbackGazetteerExtensions(ctx, store, batch, err)
	}
	return nil
}

// rollbackGazetteerExtensions deletes the rows of batch and returns cause,
// joined with the delete error if that fails too.
func (p *BuiltinEntityParser) rollbackGazetteerExtensions(ctx context.Context, store GazetteerExtensionStore, batch uuid.UUID, cause error) error {
	deleted, err := store.DeleteGazetteerExtensionBatch(ctx, batch)
	if err != nil {
		p.log.Error("Failed to roll back gazetteer extensions", slog.String("batch", batch.String()), slog.String("error", err.Error()))
		return errors.Join(cause, helper.NewError("delete gazetteer extension batch", err))
	}
	p.log.Warn("Rolled back gazetteer extensions", slog.String("batch", batch.String()), slog.Int64("deleted", deleted))
	return cause
}

// ReplayGazetteerExtensions applies the stored extensions of the parser's
// language, batch by batch in insertion order, and returns the number of
// values applied.
func (p *BuiltinEntityParser) ReplayGazetteerExtensions(ctx context.Context, store GazetteerExtensionStore) (int, error) {
	extensions, err := store.SelectGazetteerExtensions(ctx, p.language.String(), nil)
	if err != nil {
		return 0, helper.NewError("select gazetteer extensions", err)
	}

	applied := 0
	for start := 0; start < len(extensions); {
		end := start + 1
		for end < len(extensions) &&
			extensions[end].BatchRID == extensions[start].BatchRID &&
			extensions[end].EntityIdentifier == extensions[start].EntityIdentifier {
			end++
		}

		kind, err := ontology.GazetteerKindFromIdentifier(extensions[start].EntityIdentifier)
		if err != nil {
			return applied, helper.NewError("replay gazetteer extension", err)
		}
		values := make([]model.EntityValue, 0, end-start)
		for _, extension := range extensions[start:end] {
			values = append(values, extension.EntityValue())
		}
		if err := p.ExtendGazetteerEntity(kind, values); err != nil {
			return applied, err
		}
		applied += len(values)
		start = end
	}

	p.log.Info("Replayed gazetteer extensions", slog.Int("values", applied))
	return applied, nil
}
