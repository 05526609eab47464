package mstore

import (
	"sort"

	"github.com/ValentinKolb/pKV/lib/persist"
	"github.com/puzpuzpuz/xsync/v3"
)

type storeImpl struct {
	data *xsync.MapOf[string, string]
}

// NewMemoryStore creates a new in-memory store instance.
// Nothing is written to disk, the values are lost when the store is garbage collected.
func NewMemoryStore() persist.IStore {
	return &storeImpl{
		data: xsync.NewMapOf[string, string](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see persist/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) GetValue(key string) (string, error) {
	value, _ := s.data.Load(key)
	return value, nil
}

func (s *storeImpl) GetIntValue(key string) (int, error) {
	value, _ := s.data.Load(key)
	return persist.ParseInt(value), nil
}

func (s *storeImpl) SetValue(key string, value string) error {
	if err := persist.ValidateRecord(key, value); err != nil {
		return err
	}
	s.data.Store(key, value)
	return nil
}

func (s *storeImpl) SetIntValue(key string, value int) error {
	return s.SetValue(key, persist.FormatInt(value))
}

func (s *storeImpl) SetValues(values map[string]string) error {
	if err := persist.ValidateRecords(values); err != nil {
		return err
	}
	for k, v := range values {
		s.data.Store(k, v)
	}
	return nil
}

func (s *storeImpl) Delete(key string) error {
	s.data.Delete(key)
	return nil
}

func (s *storeImpl) Has(key string) (bool, error) {
	_, ok := s.data.Load(key)
	return ok, nil
}

func (s *storeImpl) Keys() ([]string, error) {
	keys := make([]string, 0, s.data.Size())
	s.data.Range(func(key string, _ string) bool {
		keys = append(keys, key)
		return true
	})
	sort.Strings(keys)
	return keys, nil
}

func (s *storeImpl) All() (map[string]string, error) {
	records := make(map[string]string, s.data.Size())
	s.data.Range(func(key string, value string) bool {
		records[key] = value
		return true
	})
	return records, nil
}
