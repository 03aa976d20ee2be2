package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	tempFilePattern = ".auth-*.toml.tmp"
	updatedAtLayout = "2006-01-02T15:04:05Z"
)

// Store persists credentials as [profiles.<name>] tables in one TOML file.
// Reads degrade to "not found" on a corrupt file; writes never do.
type Store struct {
	path  string
	clock ports.Clock
	log   *zap.Logger
	mu    *sync.RWMutex
}

type Option func(*Store)

func WithClock(clock ports.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("credential store path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve credential store path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	s := &Store{
		path:  absPath,
		clock: ports.SystemClock{},
		log:   zap.NewNop(),
		mu:    lockForPath(absPath),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context, profile domain.ProfileName) (domain.Credential, bool, error) {
	if err := profile.Validate(); err != nil {
		return domain.Credential{}, false, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.readLenient()
	if !ok {
		return domain.Credential{}, false, nil
	}

	entry, found := file.Profiles[string(profile)]
	if !found || entry.SessData == "" {
		return domain.Credential{}, false, nil
	}

	credential := domain.Credential{SessData: entry.SessData}
	if entry.BiliJct != nil {
		credential.BiliJct = *entry.BiliJct
	}
	return credential, true, nil
}

func (s *Store) List(ctx context.Context) ([]domain.ProfileSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.readLenient()
	if !ok {
		return nil, nil
	}

	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	summaries := make([]domain.ProfileSummary, 0, len(names))
	for _, name := range names {
		entry := file.Profiles[name]
		summary := domain.ProfileSummary{
			Name:       domain.ProfileName(name),
			Credential: domain.Credential{SessData: entry.SessData},
		}
		if entry.BiliJct != nil {
			summary.Credential.BiliJct = *entry.BiliJct
		}
		if entry.UpdatedAt != nil {
			summary.UpdatedAt = parseTime(*entry.UpdatedAt)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *Store) Save(ctx context.Context, profile domain.ProfileName, sessData string, biliJct *string) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return &domain.StoreError{Op: "create credential directory", Path: dir, Err: err}
	}

	file, err := s.readForWrite()
	if err != nil {
		return err
	}

	entry, ok := file.Profiles[string(profile)]
	if !ok {
		entry = profileSchema{Extra: map[string]any{}}
	}
	entry.SessData = sessData
	if biliJct != nil {
		value := *biliJct
		entry.BiliJct = &value
	}
	updatedAt := s.clock.Now().UTC().Truncate(time.Second).Format(updatedAtLayout)
	entry.UpdatedAt = &updatedAt
	file.Profiles[string(profile)] = entry

	if err := ctx.Err(); err != nil {
		return err
	}

	data, dropped := encodeFile(file)
	for _, key := range dropped {
		s.log.Warn("dropping credential store field that cannot be re-encoded", zap.String("field", key))
	}

	return s.writeFile(data)
}

// readLenient is the load path: any read or decode problem means "no store".
func (s *Store) readLenient() (fileSchema, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Debug("credential store unreadable", zap.String("path", s.path), zap.Error(err))
		}
		return fileSchema{}, false
	}

	file, err := decodeFile(data)
	if err != nil {
		s.log.Debug("credential store invalid, treating as empty", zap.String("path", s.path), zap.Error(err))
		return fileSchema{}, false
	}

	return file, true
}

// readForWrite is the save path: a corrupt file is replaced, but an I/O
// failure surfaces so a credential is never silently lost.
func (s *Store) readForWrite() (fileSchema, error) {
	empty := fileSchema{Profiles: map[string]profileSchema{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return empty, nil
		}
		return fileSchema{}, &domain.StoreError{Op: "read credential store", Path: s.path, Err: err}
	}

	file, err := decodeFile(data)
	if err != nil {
		s.log.Warn("credential store invalid, rewriting from scratch", zap.String("path", s.path), zap.Error(err))
		return empty, nil
	}

	return file, nil
}

func (s *Store) writeFile(data []byte) error {
	dir := filepath.Dir(s.path)

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return &domain.StoreError{Op: "create temp credential store", Path: dir, Err: err}
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return &domain.StoreError{Op: "write temp credential store", Path: tempName, Err: err}
	}

	if err := tempFile.Close(); err != nil {
		return &domain.StoreError{Op: "close temp credential store", Path: tempName, Err: err}
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return &domain.StoreError{Op: "replace credential store", Path: s.path, Err: err}
	}

	cleanup = false
	s.restrictPermissions()

	return nil
}

// restrictPermissions is best-effort and never fails a save.
func (s *Store) restrictPermissions() {
	if runtime.GOOS == "windows" {
		return
	}
	if err := os.Chmod(s.path, storeFileMode); err != nil {
		s.log.Debug("restrict credential store permissions", zap.String("path", s.path), zap.Error(err))
	}
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
