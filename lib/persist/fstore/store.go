package fstore

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/ValentinKolb/pKV/lib/common"
	"github.com/ValentinKolb/pKV/lib/persist"
	"github.com/ValentinKolb/pKV/lib/persist/codec"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var (
	log = logger.GetLogger("persist")

	// pathLocks holds one mutex per backing file. All stores of this process that
	// resolve to the same file serialize their load-modify-write sequences on it.
	pathLocks = xsync.NewMapOf[string, *sync.Mutex]()
)

// Store is a persist.IStore that keeps its record set in a single file.
// Every operation reads the complete file and every write rewrites it completely,
// nothing is cached between calls.
type Store struct {
	fs    afero.Fs
	codec codec.ICodec

	mu     sync.Mutex // guards config
	config persist.Config
}

var _ persist.IStore = (*Store)(nil)

// NewStore creates a new file store operating on fs. If fs is nil the OS filesystem is used.
// The configuration is validated, but no file is touched until the first operation.
//
// Usage:
//
//	s, err := fstore.NewStore(nil, persist.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	width, err := s.GetIntValue("WindowWidth")
func NewStore(fs afero.Fs, config persist.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c, err := codec.New(config.Codec, config.Pretty)
	if err != nil {
		return nil, persist.WrapError(persist.RetCInvalidConfig, "creating codec", err)
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{
		fs:     fs,
		codec:  c,
		config: config,
	}, nil
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// AppName returns the configured application name.
// It is empty until the first operation resolves the default, unless it was set explicitly.
func (s *Store) AppName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.AppName
}

// SetAppName changes the application name used for all following operations.
// Values stored under the previous name are not migrated.
func (s *Store) SetAppName(name string) error {
	if err := persist.ValidateName("app name", name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.AppName = name
	return nil
}

// FileName returns the name of the backing file.
func (s *Store) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.FileName
}

// SetFileName changes the backing file name used for all following operations.
// Values stored under the previous name are not migrated.
func (s *Store) SetFileName(name string) error {
	if err := persist.ValidateName("file name", name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.FileName = name
	return nil
}

// Config returns a copy of the current configuration.
func (s *Store) Config() persist.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Path returns the path of the backing file. If no application name is set yet,
// the name of the running executable is resolved and kept for all following calls.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config.AppName == "" {
		s.config.AppName = persist.DefaultAppName()
		log.Debugf("no app name configured, using %q", s.config.AppName)
	}
	return persist.ResolvePath(s.config.DataDir, s.config.AppName, s.config.FileName)
}

// --------------------------------------------------------------------------
// Internal file operations (used by interface methods)
// --------------------------------------------------------------------------

// acquire resolves the backing file and locks it for this process.
// The returned function releases the lock.
func (s *Store) acquire() (string, func()) {
	path := s.Path()
	m, _ := pathLocks.LoadOrCompute(path, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	m.Lock()
	return path, m.Unlock
}

// load reads the record set from path. The directory and an empty file are created if missing.
// Content that cannot be decoded is treated as an empty record set.
func (s *Store) load(path string) (map[string]string, error) {
	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, ioError("creating directory", err)
	}

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, ioError("checking file", err)
	}
	if !exists {
		if err := afero.WriteFile(s.fs, path, []byte{}, filePerm); err != nil {
			return nil, ioError("creating file", err)
		}
		log.Debugf("created %s", path)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, ioError("reading file", err)
	}
	common.StoreReads.Inc()

	records, err := s.codec.Decode(data)
	if err != nil {
		common.StoreRecovered.Inc()
		log.Warningf("content of %s is not a valid record set, treating it as empty: %v", path, err)
		return make(map[string]string), nil
	}
	return records, nil
}

// save encodes records and overwrites the file at path with it.
func (s *Store) save(path string, records map[string]string) error {
	data, err := s.codec.Encode(records)
	if err != nil {
		return persist.WrapError(persist.RetCInternalError, "encoding records", err)
	}
	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		return ioError("writing file", err)
	}
	common.StoreWrites.Inc()
	common.StoreRecords.Update(float64(len(records)))
	return nil
}

// view loads the record set and passes it to fn.
func (s *Store) view(fn func(records map[string]string)) error {
	path, unlock := s.acquire()
	defer unlock()

	records, err := s.load(path)
	if err != nil {
		return err
	}
	fn(records)
	return nil
}

// update loads the record set, passes it to fn and writes it back if fn reports a change.
func (s *Store) update(fn func(records map[string]string) (changed bool)) error {
	path, unlock := s.acquire()
	defer unlock()

	records, err := s.load(path)
	if err != nil {
		return err
	}
	if !fn(records) {
		return nil
	}
	return s.save(path, records)
}

func ioError(msg string, err error) error {
	common.StoreIOErrors.Inc()
	return persist.WrapError(persist.RetCIOError, msg, err)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see persist/interface.go)
// --------------------------------------------------------------------------

func (s *Store) GetValue(key string) (string, error) {
	var value string
	err := s.view(func(records map[string]string) {
		value = records[key]
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) GetIntValue(key string) (int, error) {
	value, err := s.GetValue(key)
	if err != nil {
		return 0, err
	}
	return persist.ParseInt(value), nil
}

func (s *Store) SetValue(key string, value string) error {
	if err := persist.ValidateRecord(key, value); err != nil {
		return err
	}
	return s.update(func(records map[string]string) bool {
		records[key] = value
		return true
	})
}

func (s *Store) SetIntValue(key string, value int) error {
	return s.SetValue(key, persist.FormatInt(value))
}

func (s *Store) SetValues(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	if err := persist.ValidateRecords(values); err != nil {
		return err
	}
	return s.update(func(records map[string]string) bool {
		for k, v := range values {
			records[k] = v
		}
		return true
	})
}

func (s *Store) Delete(key string) error {
	return s.update(func(records map[string]string) bool {
		if _, ok := records[key]; !ok {
			return false
		}
		delete(records, key)
		return true
	})
}

func (s *Store) Has(key string) (bool, error) {
	var found bool
	err := s.view(func(records map[string]string) {
		_, found = records[key]
	})
	return found, err
}

func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.view(func(records map[string]string) {
		keys = make([]string, 0, len(records))
		for k := range records {
			keys = append(keys, k)
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) All() (map[string]string, error) {
	var all map[string]string
	err := s.view(func(records map[string]string) {
		all = records
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
