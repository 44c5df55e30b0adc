package matcher

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
)

// EntityParserFile is the name of the file holding a dumped matcher.
const EntityParserFile = "entity_parser.json"

// Dump writes the matcher into dir, which must not exist yet.
func (m *Matcher) Dump(dir string) error {
	if err := os.Mkdir(dir, 0o755); err != nil {
		return helper.IOError(dir, err)
	}

	dump := model.EntityParserDump{Config: m.config}
	if m.license != nil {
		filename := m.license.Filename
		dump.LicenseFilename = &filename

		licensePath := filepath.Join(dir, filename)
		if err := os.WriteFile(licensePath, []byte(m.license.Content), 0o644); err != nil {
			return helper.IOError(licensePath, err)
		}
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return helper.NewError("entity parser marshal", err)
	}

	path := filepath.Join(dir, EntityParserFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return helper.IOError(path, err)
	}
	return nil
}

// Load reads a matcher written by Dump.
func Load(dir string) (*Matcher, error) {
	path := filepath.Join(dir, EntityParserFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, helper.ConfigurationError("missing %s", path)
		}
		return nil, helper.IOError(path, err)
	}

	var dump model.EntityParserDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, helper.ConfigurationError("malformed %s: %v", path, err)
	}

	var license *model.LicenseInfo
	if dump.LicenseFilename != nil {
		licensePath := filepath.Join(dir, *dump.LicenseFilename)
		content, err := os.ReadFile(licensePath)
		if err != nil {
			return nil, helper.IOError(licensePath, err)
		}
		license = &model.LicenseInfo{Filename: *dump.LicenseFilename, Content: string(content)}
	}

	m, err := New(dump.Config, license)
	if err != nil {
		return nil, helper.NewError("entity parser load", err)
	}
	return m, nil
}
