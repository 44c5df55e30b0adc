package nluparsers

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/siherrmann/nluparsers/core/gazetteer"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
)

const gazetteerParserDirectory = "gazetteer_entity_parser"

// Persist writes the parser into path, which must not exist yet.
func (p *BuiltinEntityParser) Persist(path string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := os.Mkdir(path, 0o755); err != nil {
		return helper.IOError(path, err)
	}

	metadata := model.BuiltinParserMetadata{Language: p.language}
	if p.gazetteer != nil {
		if err := p.gazetteer.Persist(filepath.Join(path, gazetteerParserDirectory)); err != nil {
			return helper.NewError("persist gazetteer parser", err)
		}
		directory := gazetteerParserDirectory
		metadata.GazetteerParser = &directory
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return helper.NewError("builtin parser metadata marshal", err)
	}
	metadataPath := filepath.Join(path, gazetteer.MetadataFile)
	if err := os.WriteFile(metadataPath, data, 0o644); err != nil {
		return helper.IOError(metadataPath, err)
	}

	p.log.Info("Persisted BuiltinEntityParser", "path", path)
	return nil
}

// FromPath loads a parser written by Persist.
func FromPath(path string, opts ...Option) (*BuiltinEntityParser, error) {
	metadataPath := filepath.Join(path, gazetteer.MetadataFile)
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, helper.ConfigurationError("missing builtin parser metadata %s", metadataPath)
		}
		return nil, helper.IOError(metadataPath, err)
	}

	var metadata model.BuiltinParserMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, helper.ConfigurationError("malformed %s: %v", metadataPath, err)
	}

	config := model.BuiltinEntityParserConfig{Language: metadata.Language}
	if metadata.GazetteerParser != nil {
		gazetteerPath := filepath.Join(path, *metadata.GazetteerParser)
		info, err := os.Stat(gazetteerPath)
		if err != nil || !info.IsDir() {
			return nil, helper.ConfigurationError("missing gazetteer parser directory %s", gazetteerPath)
		}
		config.GazetteerParserPath = &gazetteerPath
	}

	return NewBuiltinEntityParser(config, opts...)
}
