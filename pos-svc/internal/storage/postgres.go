package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"waiterman/pos-svc/internal/domain"
)

type PostgresTicketLog struct {
	DB *sql.DB
}

func NewPostgresTicketLog(db *sql.DB) *PostgresTicketLog {
	return &PostgresTicketLog{DB: db}
}

func (r *PostgresTicketLog) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kot_tickets (
			id         TEXT PRIMARY KEY,
			order_id   TEXT NOT NULL,
			table_id   TEXT NOT NULL DEFAULT '',
			channel    TEXT NOT NULL,
			lines      JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS kot_tickets_order_id_idx ON kot_tickets (order_id)`)
	return err
}

func (r *PostgresTicketLog) RecordTicket(ctx context.Context, ticket domain.KitchenTicket) error {
	lines, err := json.Marshal(ticket.Lines)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO kot_tickets (id, order_id, table_id, channel, lines, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ticket.ID, ticket.OrderID, ticket.TableID, string(ticket.Channel), lines, ticket.CreatedAt)
	return err
}

func (r *PostgresTicketLog) ListTickets(ctx context.Context, orderID string) ([]domain.KitchenTicket, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, table_id, channel, lines, created_at
		FROM kot_tickets
		WHERE order_id = $1
		ORDER BY created_at DESC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []domain.KitchenTicket{}
	for rows.Next() {
		var (
			t       domain.KitchenTicket
			channel string
			lines   []byte
		)
		if err := rows.Scan(&t.ID, &t.OrderID, &t.TableID, &channel, &lines, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Channel = domain.Channel(channel)
		if err := json.Unmarshal(lines, &t.Lines); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
