package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"

	"github.com/lib/pq"
)

//go:embed init.sql
var initSQL string

//go:embed gazetteer_extensions.sql
var gazetteerExtensionsSQL string

// GazetteerExtensionsFunctions lists the functions gazetteer_extensions.sql defines.
var GazetteerExtensionsFunctions = []string{
	"init_gazetteer_extensions",
	"insert_gazetteer_extension",
	"select_gazetteer_extension",
	"select_gazetteer_extensions",
	"delete_gazetteer_extensions",
	"delete_gazetteer_extension_batch",
}

// Init enables the extensions the tables rely on (gen_random_uuid).
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	log.Println("Database extensions initialized successfully")
	return nil
}

// LoadGazetteerExtensionsSql creates the gazetteer extension functions.
// Without force nothing is executed if they all exist already.
func LoadGazetteerExtensionsSql(db *sql.DB, force bool) error {
	return load(db, "gazetteer extensions", gazetteerExtensionsSQL, GazetteerExtensionsFunctions, force)
}

// LoadAllSql loads all SQL functions
func LoadAllSql(db *sql.DB, force bool) error {
	return LoadGazetteerExtensionsSql(db, force)
}

func load(db *sql.DB, name string, script string, functions []string, force bool) error {
	if !force {
		exist, err := checkFunctions(db, functions)
		if err != nil {
			return fmt.Errorf("error checking existing %s functions: %w", name, err)
		}
		if exist {
			return nil
		}
	}

	if _, err := db.Exec(script); err != nil {
		return fmt.Errorf("error executing %s SQL: %w", name, err)
	}

	exist, err := checkFunctions(db, functions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required %s SQL functions were created", name)
	}

	log.Printf("SQL %s functions loaded successfully", name)
	return nil
}

// checkFunctions reports whether every function in sqlFunctions exists.
// An empty list reports false.
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	if len(sqlFunctions) == 0 {
		return false, nil
	}

	var found int
	err := db.QueryRow(
		`SELECT COUNT(DISTINCT proname) FROM pg_proc WHERE proname = ANY($1);`,
		pq.Array(sqlFunctions),
	).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("error checking existence of functions %v: %w", sqlFunctions, err)
	}
	if found < len(sqlFunctions) {
		log.Printf("%d of %d functions do not exist", len(sqlFunctions)-found, len(sqlFunctions))
		return false, nil
	}
	return true, nil
}
