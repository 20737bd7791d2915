package seeder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

const seedDir = "db/seeders"

type seed struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
	Values  [][]any  `json:"values"`
}

func Seed(db *sql.DB) error {
	sqlxDB := sqlx.NewDb(db, "sqlite3")

	files, err := os.ReadDir(seedDir)
	if err != nil {
		return fmt.Errorf("error in reading seeder directory, err: %w", err)
	}

	for _, file := range files {
		f := strings.Split(file.Name(), ".")
		if file.IsDir() || f[len(f)-1] != "json" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(seedDir, file.Name()))
		if err != nil {
			return fmt.Errorf("error reading file, err: %w", err)
		}

		var data seed

		if err = sonic.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("error during un-marshaling file content, err: %w", err)
		}

		if err := execQuery(data, sqlxDB, file.Name()); err != nil {
			log.Println(err)
		}
	}

	return nil
}

func execQuery(data seed, db *sqlx.DB, fileName string) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)`,
		data.Table,
		strings.Join(data.Columns, ","),
		preparedInsertQuery(data.Columns),
	)

	for _, value := range data.Values {
		value, err := hashUserPassword(data.Table, data.Columns, value)
		if err != nil {
			return err
		}

		if _, err := db.Exec(query, value...); err != nil {
			if !IsDuplicateEntry(err) {
				log.Printf(
					"error in running seeder file %s. err: %s",
					fileName,
					err,
				)
			}
		}
	}

	return nil
}

// hashUserPassword replaces the plain password column of a users seed row
// with its bcrypt hash, so seed files never have to carry precomputed
// hashes.
func hashUserPassword(table string, columns []string, value []any) ([]any, error) {
	if table != "users" {
		return value, nil
	}

	for i, col := range columns {
		if col != "password" || i >= len(value) {
			continue
		}

		plain, ok := value[i].(string)
		if !ok {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}

		hashed := make([]any, len(value))
		copy(hashed, value)
		hashed[i] = string(hash)
		return hashed, nil
	}

	return value, nil
}

func preparedInsertQuery(columns []string) string {
	var query string

	for i := 0; i < len(columns); i++ {
		if i != len(columns)-1 {
			query += "?,"
			continue
		}

		query += "?"
	}

	return query
}

func IsDuplicateEntry(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
