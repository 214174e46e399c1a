// Package database wraps the embedded document store holding the user
// registry. It is memory-backed by default and single-file backed when a
// data file is configured; callers see the mongo-driver surface either way.
package database

import (
	"log"
	"time"

	"github.com/256dpi/lungo"
)

var (
	Client lungo.IClient
	Users  lungo.ICollection

	engine *lungo.Engine
)

// Connect opens the embedded store and binds the collection handles. An
// empty dataFile selects the in-memory store (used by tests and the default
// dev setup); otherwise state is persisted to the given file.
func Connect(dataFile string) error {
	var backing lungo.Store = lungo.NewMemoryStore()
	if dataFile != "" {
		backing = lungo.NewFileStore(dataFile, 0o644)
		log.Printf("using data file %s", dataFile)
	}

	client, eng, err := lungo.Open(nil, lungo.Options{
		Store:          backing,
		ExpireInterval: time.Minute,
	})
	if err != nil {
		return err
	}

	Client = client
	engine = eng

	db := client.Database("educonnect")
	Users = db.Collection("users")

	return nil
}

// Disconnect closes the engine, flushing a file-backed store.
func Disconnect() {
	if engine != nil {
		engine.Close()
		engine = nil
	}
}
