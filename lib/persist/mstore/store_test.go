package mstore

import (
	"testing"

	"github.com/ValentinKolb/pKV/lib/persist"
	persisttesting "github.com/ValentinKolb/pKV/lib/persist/testing"
)

func Test(t *testing.T) {
	persisttesting.RunStoreTests(t, "MemoryStore", func() persist.IStore {
		return NewMemoryStore()
	})
}
