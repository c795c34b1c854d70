package dataset

import (
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/votemap/internal/geo"
)

// LoadAll reads geometry and attributes concurrently. Either path failing
// fails the whole load; there is no meaningful partial state to start from.
func LoadAll(geomPath, dbPath string) ([]geo.Unit, *Dataset, error) {
	var (
		units []geo.Unit
		ds    *Dataset
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		units, err = geo.Load(geomPath)
		return err
	})
	g.Go(func() error {
		var err error
		ds, err = LoadSQLite(dbPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return units, ds, nil
}
