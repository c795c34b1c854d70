package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "election.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE election_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		state TEXT, county_name TEXT, year INTEGER, state_po TEXT,
		county_fips TEXT, office TEXT, candidate TEXT, party TEXT,
		candidatevotes INTEGER, totalvotes INTEGER, version TEXT, mode TEXT
	)`); err != nil {
		t.Fatal(err)
	}

	rows := [][]any{
		{"ALABAMA", "AUTAUGA", 2020, "AL", "01001", "US PRESIDENT", "JOSEPH R BIDEN JR", "DEMOCRAT", 7503, 27770},
		{"ALABAMA", "AUTAUGA", 2020, "AL", "01001", "US PRESIDENT", "DONALD J TRUMP", "REPUBLICAN", 19838, 27770},
		{"ALABAMA", "AUTAUGA", 2020, "AL", "01001", "US PRESIDENT", "JO JORGENSEN", "LIBERTARIAN", 350, 27770},
		{"ALABAMA", "AUTAUGA", 2020, "AL", "01001", "US PRESIDENT", "OTHER", "OTHER", 79, 27770},
		{"ALABAMA", "AUTAUGA", 2016, "AL", "01001", "US PRESIDENT", "HILLARY CLINTON", "DEMOCRAT", 5936, 24973},
		{"ALABAMA", "AUTAUGA", 2016, "AL", "01001", "US PRESIDENT", "DONALD TRUMP", "REPUBLICAN", 18172, 24973},
		// Row with a blank fips must be ignored.
		{"ALABAMA", "", 2020, "AL", "", "US PRESIDENT", "X", "DEMOCRAT", 1, 1},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO election_results
			(state, county_name, year, state_po, county_fips, office, candidate, party, candidatevotes, totalvotes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, r...); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestLoadSQLiteAggregates(t *testing.T) {
	ds, err := LoadSQLite(writeTestDB(t))
	if err != nil {
		t.Fatal(err)
	}

	years := ds.Years()
	if len(years) != 2 || years[0] != 2016 || years[1] != 2020 {
		t.Fatalf("years: %v", years)
	}

	rec, ok := ds.Record(2020, "01001")
	if !ok {
		t.Fatal("county record missing")
	}
	if rec.Dem != 7503 || rec.Rep != 19838 {
		t.Errorf("major party counts: %+v", rec)
	}
	if rec.Other != 429 {
		t.Errorf("residual should sum non-major rows: got %f", rec.Other)
	}
	if rec.Total != 27770 {
		t.Errorf("total: got %f", rec.Total)
	}
	if rec.MinorA == nil || rec.MinorA.Candidate != "JO JORGENSEN" {
		t.Errorf("largest minor candidate: %+v", rec.MinorA)
	}
	if rec.MinorB == nil || rec.MinorB.Candidate != "OTHER" {
		t.Errorf("second minor candidate: %+v", rec.MinorB)
	}

	if _, ok := ds.Record(2020, ""); ok {
		t.Error("blank-fips rows must be dropped")
	}
}

func TestLoadSQLiteFallsBackToCandidateSum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notables.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE election_results (
		year INTEGER, county_fips TEXT, candidate TEXT, party TEXT,
		candidatevotes INTEGER, totalvotes INTEGER
	)`); err != nil {
		t.Fatal(err)
	}
	// totalvotes missing (zero): the loader recovers it from the rows.
	if _, err := db.Exec(`INSERT INTO election_results VALUES
		(2000, '99999', 'A', 'DEMOCRAT', 60, 0),
		(2000, '99999', 'B', 'REPUBLICAN', 40, 0)`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	ds, err := LoadSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	rec, _ := ds.Record(2000, "99999")
	if rec.Total != 100 {
		t.Errorf("total should fall back to candidate sum: got %f", rec.Total)
	}
}
