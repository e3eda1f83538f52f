package gconf

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// ErrInitialized is returned when a package configuration is written a
// second time during initialization.
var ErrInitialized = errors.Register(110, "already initialized")

// ReadStore is a read-only subset of the KVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
}

// Store is a subset of the KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

func confKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Configuration is implemented by package configuration objects.
type Configuration interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	Validate() error
}

// Save validates the object and writes it to the configuration
// singleton of the given package.
func Save(db Store, pkg string, src Configuration) error {
	key := confKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration singleton of the given package into dst.
// ErrNotFound is returned when the package was never configured.
func Load(db ReadStore, pkg string, dst Configuration) error {
	key := confKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// InitConfig takes opts["conf"][pkg], parses it into the given
// configuration object, validates it and stores it under the proper key.
// A package can be initialized only once. A second call fails with
// ErrInitialized and leaves the stored configuration untouched.
func InitConfig(db Store, opts ledger.Options, pkg string, conf Configuration) error {
	key := confKey(pkg)
	switch ok, err := db.Has(key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(ErrInitialized, "%q configuration", pkg)
	}

	var confOptions ledger.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %q package", pkg)
	}
	return Save(db, pkg, conf)
}
