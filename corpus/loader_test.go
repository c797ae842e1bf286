package corpus

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legalresearch-backend/models"
	"legalresearch-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statutesJSON = `[
  {"doc_id": "S-1", "title": "Cal. Code Civ. Proc. § 337", "citation": "CCP 337", "jurisdiction": "California", "case_type": "contract dispute", "url": "https://example.test/s1"},
  {"doc_id": "S-2", "title": "UCC 2-714", "jurisdiction": "Federal"}
]`

const casesJSON = `[
  {"doc_id": "C-1", "title": "Acme v. Widget", "jurisdiction": "California", "case_type": "contract dispute", "url": null}
]`

func newLocalStorage(t *testing.T, files map[string]string) storage.Storage {
	t.Helper()
	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	for key, body := range files {
		_, err := st.Upload(context.Background(), key, strings.NewReader(body))
		require.NoError(t, err)
	}
	return st
}

func defaultConfig() Config {
	return Config{Source: SourceTypeStorage, StatutesKey: "statutes.json", CasesKey: "cases.json"}
}

func TestLoad_FromStorage(t *testing.T) {
	st := newLocalStorage(t, map[string]string{
		"statutes.json": statutesJSON,
		"cases.json":    casesJSON,
	})

	store, err := Load(context.Background(), NewStorageSource(st, defaultConfig()))
	require.NoError(t, err)

	statutes := store.Statutes()
	require.Len(t, statutes, 2)
	assert.Equal(t, "S-1", statutes[0].DocID)
	assert.Equal(t, "CCP 337", *statutes[0].Citation)
	assert.Nil(t, statutes[1].Citation, "missing optional field loads as nil")

	cases := store.Cases()
	require.Len(t, cases, 1)
	assert.Nil(t, cases[0].URL)
}

func TestLoad_WithPrefixAndYAML(t *testing.T) {
	st := newLocalStorage(t, map[string]string{
		"corpus/statutes.yaml": "- doc_id: S-9\n  title: Texas Bus. & Com. Code\n  jurisdiction: Texas\n",
		"corpus/cases.yml":     "- doc_id: C-9\n  case_type: sales contracts\n",
	})
	cfg := Config{Source: SourceTypeStorage, Prefix: "corpus", StatutesKey: "statutes.yaml", CasesKey: "cases.yml"}

	store, err := Load(context.Background(), NewStorageSource(st, cfg))
	require.NoError(t, err)
	assert.Equal(t, "Texas", *store.Statutes()[0].Jurisdiction)
	assert.Equal(t, "sales contracts", *store.Cases()[0].CaseType)
}

func TestLoad_MalformedCorpus(t *testing.T) {
	tests := []struct {
		name     string
		statutes string
	}{
		{name: "object instead of list", statutes: `{"doc_id": "S-1"}`},
		{name: "null document", statutes: `null`},
		{name: "empty file", statutes: ``},
		{name: "wrong field type", statutes: `[{"doc_id": "S-1", "title": 42}]`},
		{name: "missing doc_id", statutes: `[{"title": "No id"}]`},
		{name: "null element", statutes: `[null]`},
		{name: "trailing data", statutes: `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newLocalStorage(t, map[string]string{
				"statutes.json": tt.statutes,
				"cases.json":    casesJSON,
			})

			_, err := Load(context.Background(), NewStorageSource(st, defaultConfig()))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCorpus)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	st := newLocalStorage(t, map[string]string{"statutes.json": statutesJSON})

	_, err := Load(context.Background(), NewStorageSource(st, defaultConfig()))
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

type fakeSource struct {
	statutes []models.StatuteRecord
	cases    []models.CaseRecord
	err      error
}

func (f fakeSource) ListStatutes(ctx context.Context) ([]models.StatuteRecord, error) {
	return f.statutes, f.err
}

func (f fakeSource) ListCases(ctx context.Context) ([]models.CaseRecord, error) {
	return f.cases, f.err
}

func TestLoad_SourceError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := Load(context.Background(), fakeSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestLoad_ValidatesCases(t *testing.T) {
	_, err := Load(context.Background(), fakeSource{
		statutes: []models.StatuteRecord{{DocID: "S-1"}},
		cases:    []models.CaseRecord{{Title: models.String("untitled")}},
	})
	assert.ErrorIs(t, err, ErrMalformedCorpus)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CORPUS_SOURCE", "")
	t.Setenv("CORPUS_PREFIX", "")
	t.Setenv("CORPUS_STATUTES_KEY", "")
	t.Setenv("CORPUS_CASES_KEY", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, SourceTypeStorage, cfg.Source)
	assert.Equal(t, "statutes.json", cfg.StatutesKey)
	assert.Equal(t, "cases.json", cfg.CasesKey)

	t.Setenv("CORPUS_SOURCE", "mongo")
	_, err = ConfigFromEnv()
	assert.ErrorIs(t, err, ErrUnknownCorpusSource)
}

func TestFormatFromKey(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromKey("statutes.json"))
	assert.Equal(t, FormatYAML, FormatFromKey("a/b/cases.YML"))
	assert.Equal(t, FormatJSON, FormatFromKey("cases"))
}
