package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cardcompare/pkg/database"
	"cardcompare/pkg/models"
)

//go:embed data/cards.yaml
var defaultData []byte

// Default returns the catalog built from the embedded data file.
func Default() (*Catalog, error) {
	cards, err := decodeYAML(defaultData)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return New(cards)
}

// Load builds a catalog from source:
//
//	""                     embedded data
//	*.yaml, *.yml, *.json  data file on disk
//	*.db, *.sqlite         SQLite snapshot written by WriteSQLite
func Load(ctx context.Context, source string) (*Catalog, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Default()
	}

	var (
		cards []models.Card
		err   error
	)
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		cards, err = readFile(source, decodeYAML)
	case ".json":
		cards, err = readFile(source, decodeJSON)
	case ".db", ".sqlite", ".sqlite3":
		cards, err = readSQLite(ctx, source)
	default:
		return nil, fmt.Errorf("unsupported catalog source %q", source)
	}
	if err != nil {
		return nil, err
	}
	return New(cards)
}

// WriteSQLite exports the catalog to a SQLite snapshot at path.
func WriteSQLite(ctx context.Context, c *Catalog, path string) error {
	db, err := database.Open(database.Config{Path: path})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}
	return database.SaveCards(ctx, db, c.cards)
}

func readFile(path string, decode func([]byte) ([]models.Card, error)) ([]models.Card, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cards, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return cards, nil
}

func readSQLite(ctx context.Context, path string) ([]models.Card, error) {
	db, err := database.Open(database.Config{Path: path, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return database.LoadCards(ctx, db)
}

func decodeYAML(b []byte) ([]models.Card, error) {
	var cards []models.Card
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func decodeJSON(b []byte) ([]models.Card, error) {
	var cards []models.Card
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cards); err != nil {
		return nil, err
	}
	return cards, nil
}
