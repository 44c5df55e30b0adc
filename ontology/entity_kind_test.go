package ontology

import (
	"encoding/json"
	"testing"

	"github.com/siherrmann/nluparsers/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierRoundTrip(t *testing.T) {
	for _, kind := range AllBuiltinEntityKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			parsed, err := FromIdentifier(kind.Identifier())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		})
	}
}

func TestFromIdentifier(t *testing.T) {
	t.Run("Unknown identifier returns configuration error", func(t *testing.T) {
		_, err := FromIdentifier("snips/unknown")

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})

	t.Run("Identifiers fail on the first unknown entry", func(t *testing.T) {
		_, err := FromIdentifiers([]string{"snips/number", "snips/nope"})

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})

	t.Run("Shortname of amount of money", func(t *testing.T) {
		name, err := Shortname("snips/amountOfMoney")

		require.NoError(t, err)
		assert.Equal(t, "AmountOfMoney", name)
	})
}

func TestKindPartition(t *testing.T) {
	t.Run("Grammar and gazetteer kinds are disjoint and complete", func(t *testing.T) {
		var grammar, gazetteer int
		for _, kind := range AllBuiltinEntityKinds() {
			assert.NotEqual(t, kind.IsGrammarKind(), kind.IsGazetteerKind(), kind.String())
			if kind.IsGrammarKind() {
				grammar++
			} else {
				gazetteer++
			}
		}

		assert.Equal(t, 11, grammar)
		assert.Equal(t, 6, gazetteer)
		assert.Len(t, GrammarEntityKinds(), 11)
	})

	t.Run("Gazetteer kinds convert both ways", func(t *testing.T) {
		for _, kind := range AllGazetteerEntityKinds() {
			back, ok := kind.BuiltinKind().TryIntoGazetteerKind()

			assert.True(t, ok)
			assert.Equal(t, kind, back)
		}

		_, ok := KindNumber.TryIntoGazetteerKind()
		assert.False(t, ok)
	})

	t.Run("Grammar identifier is not a gazetteer identifier", func(t *testing.T) {
		_, err := GazetteerKindFromIdentifier("snips/number")
		assert.ErrorIs(t, err, helper.ErrConfiguration)

		kind, err := GazetteerKindFromIdentifier("snips/musicArtist")
		require.NoError(t, err)
		assert.Equal(t, GazetteerMusicArtist, kind)
	})
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal([]BuiltinEntityKind{KindDatetime, KindCity})
	require.NoError(t, err)
	assert.Equal(t, `["snips/datetime","snips/city"]`, string(data))

	var kinds []BuiltinEntityKind
	require.NoError(t, json.Unmarshal(data, &kinds))
	assert.Equal(t, []BuiltinEntityKind{KindDatetime, KindCity}, kinds)
}

func TestFromName(t *testing.T) {
	kind, err := FromName("amountofmoney")
	require.NoError(t, err)
	assert.Equal(t, KindAmountOfMoney, kind)

	_, err = FromName("Weather")
	assert.Error(t, err)
}
