package ontology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{"en", EN, false},
		{"FR", FR, false},
		{"pt_BR", PT_BR, false},
		{"pt-PT", PT_PT, false},
		{" ja ", JA, false},
		{"nl", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lang, err := ParseLanguage(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestLanguageJSON(t *testing.T) {
	t.Run("Round trip every language", func(t *testing.T) {
		for _, lang := range AllLanguages() {
			data, err := json.Marshal(lang)
			require.NoError(t, err)

			var decoded Language
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, lang, decoded)
		}
	})

	t.Run("Unknown language fails to decode", func(t *testing.T) {
		var lang Language
		assert.Error(t, json.Unmarshal([]byte(`"xx"`), &lang))
	})
}
