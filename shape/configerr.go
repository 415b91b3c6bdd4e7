package shape

import "github.com/HellOwhatAs/ln/lnerr"

// configErr wraps err (one of this package's sentinels) into a
// *lnerr.ConfigError tagged with the given constructor name.
func configErr(where string, err error) error {
	return lnerr.NewConfigError("shape", where, err)
}
