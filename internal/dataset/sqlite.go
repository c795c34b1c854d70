package dataset

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// Major party labels as they appear in the MIT election lab county files.
const (
	partyDemocrat   = "DEMOCRAT"
	partyRepublican = "REPUBLICAN"
)

// LoadSQLite reads an election_results database (see internal/ingest for the
// schema) and aggregates candidate rows into per-year, per-county records.
// Non-major parties are summed into the residual category; the two largest
// named residual candidates per county are kept as MinorA/MinorB.
func LoadSQLite(path string) (*Dataset, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT year, county_fips, candidate, party, candidatevotes, totalvotes
		FROM election_results
		WHERE county_fips != ''
		ORDER BY year, county_fips
	`)
	if err != nil {
		return nil, fmt.Errorf("query election_results: %w", err)
	}
	defer rows.Close()

	type residual struct {
		candidate string
		votes     float64
	}
	data := make(map[int]map[string]Record)
	minors := make(map[int]map[string][]residual)

	for rows.Next() {
		var (
			year            int
			fips, cand, pty string
			votes, total    float64
		)
		if err := rows.Scan(&year, &fips, &cand, &pty, &votes, &total); err != nil {
			return nil, fmt.Errorf("scan election row: %w", err)
		}

		period := data[year]
		if period == nil {
			period = make(map[string]Record)
			data[year] = period
			minors[year] = make(map[string][]residual)
		}

		rec := period[fips]
		if total > rec.Total {
			rec.Total = total
		}
		switch strings.ToUpper(pty) {
		case partyDemocrat:
			rec.Dem += votes
		case partyRepublican:
			rec.Rep += votes
		default:
			rec.Other += votes
			if cand != "" && votes > 0 {
				minors[year][fips] = append(minors[year][fips], residual{cand, votes})
			}
		}
		period[fips] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate election rows: %w", err)
	}

	// Some files leave totalvotes blank; fall back to the candidate sum.
	for year, period := range data {
		for fips, rec := range period {
			if sum := rec.Dem + rec.Rep + rec.Other; rec.Total < sum {
				rec.Total = sum
			}
			entries := minors[year][fips]
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].votes != entries[j].votes {
					return entries[i].votes > entries[j].votes
				}
				return entries[i].candidate < entries[j].candidate
			})
			if len(entries) > 0 {
				rec.MinorA = &MinorEntry{Candidate: entries[0].candidate, Votes: entries[0].votes}
			}
			if len(entries) > 1 {
				rec.MinorB = &MinorEntry{Candidate: entries[1].candidate, Votes: entries[1].votes}
			}
			period[fips] = rec
		}
	}

	if len(data) == 0 {
		return nil, ErrNoPeriods
	}
	return New(data), nil
}
