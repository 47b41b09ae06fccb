package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"cardcompare/pkg/models"
)

// SaveCards replaces the snapshot contents with cards, preserving their order.
func SaveCards(ctx context.Context, db *sql.DB, cards []models.Card) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cards`); err != nil {
		return fmt.Errorf("clear cards: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cards (id, slug, position, name, bank, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for i, c := range cards {
		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal card %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Slug, i, c.Name, c.Bank, string(payload)); err != nil {
			return fmt.Errorf("insert card %s: %w", c.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (key, value) VALUES ('exported_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write snapshot meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LoadCards reads every card of a snapshot in stored order.
func LoadCards(ctx context.Context, db *sql.DB) ([]models.Card, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, payload FROM cards ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var out []models.Card
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		var c models.Card
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			return nil, fmt.Errorf("decode card %s: %w", id, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return out, nil
}
