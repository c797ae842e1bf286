package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"legalresearch-backend/models"
	"legalresearch-backend/storage"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMalformedCorpus     = errors.New("malformed corpus")
	ErrUnknownCorpusSource = errors.New("unknown corpus source")
)

// Source supplies the raw corpora at startup
type Source interface {
	ListStatutes(ctx context.Context) ([]models.StatuteRecord, error)
	ListCases(ctx context.Context) ([]models.CaseRecord, error)
}

// SourceType selects where the corpora are read from
type SourceType string

const (
	SourceTypeStorage  SourceType = "storage"
	SourceTypePostgres SourceType = "postgres"
)

// Config holds configuration for corpus loading
type Config struct {
	Source      SourceType
	Prefix      string // Key prefix inside storage
	StatutesKey string
	CasesKey    string
}

// ConfigFromEnv reads the corpus configuration from environment variables
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Source:      SourceType(os.Getenv("CORPUS_SOURCE")),
		Prefix:      os.Getenv("CORPUS_PREFIX"),
		StatutesKey: os.Getenv("CORPUS_STATUTES_KEY"),
		CasesKey:    os.Getenv("CORPUS_CASES_KEY"),
	}
	if cfg.Source == "" {
		cfg.Source = SourceTypeStorage
	}
	if cfg.StatutesKey == "" {
		cfg.StatutesKey = "statutes.json"
	}
	if cfg.CasesKey == "" {
		cfg.CasesKey = "cases.json"
	}

	switch cfg.Source {
	case SourceTypeStorage, SourceTypePostgres:
		return cfg, nil
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnknownCorpusSource, cfg.Source)
	}
}

// StorageSource reads corpus files (JSON or YAML) from a storage backend
type StorageSource struct {
	storage     storage.Storage
	statutesKey string
	casesKey    string
}

// NewStorageSource creates a source reading the configured keys from st
func NewStorageSource(st storage.Storage, cfg Config) *StorageSource {
	return &StorageSource{
		storage:     st,
		statutesKey: storage.ObjectKey(cfg.Prefix, cfg.StatutesKey),
		casesKey:    storage.ObjectKey(cfg.Prefix, cfg.CasesKey),
	}
}

// ListStatutes downloads and decodes the statutes file
func (s *StorageSource) ListStatutes(ctx context.Context) ([]models.StatuteRecord, error) {
	data, err := s.read(ctx, s.statutesKey)
	if err != nil {
		return nil, err
	}
	statutes, err := decodeRecords[models.StatuteRecord](FormatFromKey(s.statutesKey), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.statutesKey, err)
	}
	return statutes, nil
}

// ListCases downloads and decodes the cases file
func (s *StorageSource) ListCases(ctx context.Context) ([]models.CaseRecord, error) {
	data, err := s.read(ctx, s.casesKey)
	if err != nil {
		return nil, err
	}
	cases, err := decodeRecords[models.CaseRecord](FormatFromKey(s.casesKey), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.casesKey, err)
	}
	return cases, nil
}

func (s *StorageSource) read(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", key, err)
	}
	return data, nil
}

// Load reads both corpora from src, validates every record and builds the store.
// Any failure here must stop the process from serving.
func Load(ctx context.Context, src Source) (*Store, error) {
	statutes, err := src.ListStatutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load statutes: %w", err)
	}
	cases, err := src.ListCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cases: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	for i, s := range statutes {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("%w: statute %d: %v", ErrMalformedCorpus, i, err)
		}
	}
	for i, c := range cases {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%w: case %d: %v", ErrMalformedCorpus, i, err)
		}
	}

	return NewStore(statutes, cases), nil
}
