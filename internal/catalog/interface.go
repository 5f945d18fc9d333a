package catalog

// Interface is the catalog contract used by the application.
type Interface interface {
	List() ([]Place, error)
	Get(id int64) (Place, error)
	Add(p Place) (int64, error)
	Seed(places []Place) (int, error)
	Close() error
}

// Verify Store implements Interface at compile time.
var _ Interface = (*Store)(nil)
