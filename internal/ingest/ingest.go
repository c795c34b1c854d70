// Package ingest converts the raw county election CSV (MIT election lab
// format) into the SQLite database the dataset package reads.
package ingest

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// batchSize bounds how many rows are inserted per transaction.
const batchSize = 10000

const schema = `
CREATE TABLE election_results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	state TEXT,
	county_name TEXT,
	year INTEGER,
	state_po TEXT,
	county_fips TEXT,
	office TEXT,
	candidate TEXT,
	party TEXT,
	candidatevotes INTEGER,
	totalvotes INTEGER,
	version TEXT,
	mode TEXT
);`

const insertStmt = `
INSERT INTO election_results (
	state, county_name, year, state_po, county_fips,
	office, candidate, party, candidatevotes, totalvotes,
	version, mode
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

var columns = []string{
	"state", "county_name", "year", "state_po", "county_fips",
	"office", "candidate", "party", "candidatevotes", "totalvotes",
	"version", "mode",
}

// ImportCSV rebuilds dbPath from csvPath and returns the number of rows
// imported. The results table is dropped first so re-runs start clean.
func ImportCSV(csvPath, dbPath string, logger *log.Logger) (int, error) {
	if logger == nil {
		logger = log.Default()
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("DROP TABLE IF EXISTS election_results"); err != nil {
		return 0, fmt.Errorf("drop table: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return 0, fmt.Errorf("csv missing column %q", col)
		}
	}

	count := 0
	batch := make([][]any, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		stmt, err := tx.Prepare(insertStmt)
		if err != nil {
			tx.Rollback()
			return err
		}
		for _, row := range batch {
			if _, err := stmt.Exec(row...); err != nil {
				stmt.Close()
				tx.Rollback()
				return err
			}
		}
		stmt.Close()
		if err := tx.Commit(); err != nil {
			return err
		}
		logger.Debug("imported batch", "rows", count)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read csv row: %w", err)
		}
		field := func(name string) string {
			i := idx[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}
		batch = append(batch, []any{
			field("state"), field("county_name"), safeInt(field("year")),
			field("state_po"), field("county_fips"), field("office"),
			field("candidate"), field("party"), safeInt(field("candidatevotes")),
			safeInt(field("totalvotes")), field("version"), field("mode"),
		})
		count++
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return count, fmt.Errorf("insert batch: %w", err)
			}
		}
	}
	if err := flush(); err != nil {
		return count, fmt.Errorf("insert batch: %w", err)
	}

	logger.Info("import complete", "rows", count, "db", dbPath)
	return count, nil
}

// safeInt coerces vote counts that appear as "100", "100.0" or blank.
func safeInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
