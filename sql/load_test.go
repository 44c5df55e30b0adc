package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	t.Run("Initialize database extensions", func(t *testing.T) {
		err := Init(db.Instance)
		assert.NoError(t, err)

		var exists bool
		err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_extension WHERE extname = 'pgcrypto');").Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "pgcrypto extension should be created")
	})

	t.Run("Initialize database extensions is idempotent", func(t *testing.T) {
		err := Init(db.Instance)
		assert.NoError(t, err)

		err = Init(db.Instance)
		assert.NoError(t, err)
	})
}

func TestLoadGazetteerExtensionsSql(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	t.Run("Load gazetteer extensions SQL functions", func(t *testing.T) {
		err := LoadGazetteerExtensionsSql(db.Instance, false)
		assert.NoError(t, err)

		for _, funcName := range GazetteerExtensionsFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Function %s should exist", funcName)
		}
	})

	t.Run("Load gazetteer extensions SQL is idempotent without force", func(t *testing.T) {
		err := LoadGazetteerExtensionsSql(db.Instance, false)
		assert.NoError(t, err)
	})

	t.Run("Load gazetteer extensions SQL with force reloads", func(t *testing.T) {
		err := LoadGazetteerExtensionsSql(db.Instance, true)
		assert.NoError(t, err)

		for _, funcName := range GazetteerExtensionsFunctions {
			var exists bool
			err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);", funcName).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "Function %s should exist after force reload", funcName)
		}
	})

	t.Run("Init function creates the table", func(t *testing.T) {
		_, err := db.Instance.Exec("SELECT init_gazetteer_extensions();")
		require.NoError(t, err)

		var exists bool
		err = db.Instance.QueryRow("SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = 'gazetteer_extensions');").Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "gazetteer_extensions table should exist")
	})
}

func TestLoadAllSql(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	t.Run("Load all SQL functions", func(t *testing.T) {
		err := LoadAllSql(db.Instance, false)
		assert.NoError(t, err)

		exists, err := checkFunctions(db.Instance, GazetteerExtensionsFunctions)
		require.NoError(t, err)
		assert.True(t, exists, "Gazetteer extensions functions should exist")
	})

	t.Run("Load all SQL with force reloads", func(t *testing.T) {
		err := LoadAllSql(db.Instance, true)
		assert.NoError(t, err)
	})
}

func TestCheckFunctions(t *testing.T) {
	db := initDB(t)
	defer db.Close()

	t.Run("Check functions returns false when functions don't exist", func(t *testing.T) {
		exists, err := checkFunctions(db.Instance, []string{"nonexistent_function"})
		assert.NoError(t, err)
		assert.False(t, exists, "Should return false for nonexistent function")
	})

	t.Run("Check functions returns true when all functions exist", func(t *testing.T) {
		err := LoadGazetteerExtensionsSql(db.Instance, false)
		require.NoError(t, err)

		exists, err := checkFunctions(db.Instance, GazetteerExtensionsFunctions)
		assert.NoError(t, err)
		assert.True(t, exists, "Should return true when all functions exist")
	})

	t.Run("Check functions returns false when some functions don't exist", func(t *testing.T) {
		exists, err := checkFunctions(db.Instance, []string{"init_gazetteer_extensions", "nonexistent_function"})
		assert.NoError(t, err)
		assert.False(t, exists, "Should return false when some functions don't exist")
	})

	t.Run("Check functions with empty list", func(t *testing.T) {
		exists, err := checkFunctions(db.Instance, []string{})
		assert.NoError(t, err)
		assert.False(t, exists, "Should return false for empty function list")
	})
}

func TestEmbeddedSQL(t *testing.T) {
	t.Run("Init SQL is embedded", func(t *testing.T) {
		assert.NotEmpty(t, initSQL, "initSQL should be embedded")
		assert.Contains(t, initSQL, "CREATE EXTENSION", "Should contain CREATE EXTENSION")
	})

	t.Run("Gazetteer extensions SQL is embedded", func(t *testing.T) {
		assert.NotEmpty(t, gazetteerExtensionsSQL, "gazetteerExtensionsSQL should be embedded")
		for _, funcName := range GazetteerExtensionsFunctions {
			assert.Contains(t, gazetteerExtensionsSQL, "FUNCTION "+funcName+"(", "Should define %s", funcName)
		}
	})
}
