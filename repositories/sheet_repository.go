package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/dues-ledger/models"
)

// SheetRepository is a named grid of cells whose first row is a header.
// Rows and columns are 1-based.
type SheetRepository interface {
	// ReadAllRecords returns every data row, in row order, keyed by header.
	ReadAllRecords(ctx context.Context) ([]models.Member, error)
	// WriteCell replaces the value of a single cell.
	WriteCell(ctx context.Context, row, col int, value string) error
	// AppendRow writes values into the row after the last used one.
	AppendRow(ctx context.Context, values []string) error
	// RowCount returns the number of used rows, header included.
	RowCount(ctx context.Context) (int, error)
}

// sheetRepository implements SheetRepository on the sheet_cells table
type sheetRepository struct {
	db    *sql.DB
	sheet string
}

// NewSheetRepository creates a repository for the named sheet
func NewSheetRepository(db *sql.DB, sheet string) SheetRepository {
	return &sheetRepository{db: db, sheet: sheet}
}

// ReadAllRecords loads the header and every data row below it. Rows with
// no stored cells between used rows come back as blank records so that a
// record's position always matches its row index.
func (r *sheetRepository) ReadAllRecords(ctx context.Context) ([]models.Member, error) {
	query := `
		SELECT row_index, col_index, value
		FROM sheet_cells
		WHERE sheet = ?
		ORDER BY row_index ASC, col_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query, r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to query sheet %q: %w", r.sheet, err)
	}
	defer rows.Close()

	grid := make(map[int]map[int]string)
	maxRow := 0
	for rows.Next() {
		var row, col int
		var value string
		if err := rows.Scan(&row, &col, &value); err != nil {
			return nil, fmt.Errorf("failed to scan sheet cell: %w", err)
		}
		if grid[row] == nil {
			grid[row] = make(map[int]string)
		}
		grid[row][col] = value
		if row > maxRow {
			maxRow = row
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sheet cells: %w", err)
	}

	header := denseRow(grid[models.HeaderRow])
	if len(header) == 0 {
		return nil, nil
	}

	members := make([]models.Member, 0, maxRow-models.HeaderRow)
	for row := models.HeaderRow + 1; row <= maxRow; row++ {
		cells := make([]string, len(header))
		for col, value := range grid[row] {
			if col <= len(header) {
				cells[col-1] = value
			}
		}
		members = append(members, models.NewMember(row, header, cells))
	}

	return members, nil
}

// WriteCell upserts a single cell
func (r *sheetRepository) WriteCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid cell coordinate (%d, %d)", row, col)
	}

	query := `
		INSERT INTO sheet_cells (sheet, row_index, col_index, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (sheet, row_index, col_index)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, r.sheet, row, col, value, time.Now()); err != nil {
		return fmt.Errorf("failed to write cell (%d, %d): %w", row, col, err)
	}
	return nil
}

// AppendRow inserts a new row below the last used row
func (r *sheetRepository) AppendRow(ctx context.Context, values []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lastRow int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(row_index), 0) FROM sheet_cells WHERE sheet = ?`,
		r.sheet,
	).Scan(&lastRow)
	if err != nil {
		return fmt.Errorf("failed to find last row: %w", err)
	}

	// An empty row still needs one cell to occupy its index.
	if len(values) == 0 {
		values = []string{""}
	}

	now := time.Now()
	for i, value := range values {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sheet_cells (sheet, row_index, col_index, value, updated_at) VALUES (?, ?, ?, ?, ?)`,
			r.sheet, lastRow+1, i+1, value, now,
		)
		if err != nil {
			return fmt.Errorf("failed to append cell %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit appended row: %w", err)
	}
	return nil
}

// RowCount returns the highest used row index
func (r *sheetRepository) RowCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(row_index), 0) FROM sheet_cells WHERE sheet = ?`,
		r.sheet,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return count, nil
}

// denseRow turns a sparse column map into a slice ending at the last
// non-empty cell.
func denseRow(cells map[int]string) []string {
	last := 0
	for col, value := range cells {
		if value != "" && col > last {
			last = col
		}
	}

	out := make([]string, last)
	for col, value := range cells {
		if col <= last {
			out[col-1] = value
		}
	}
	return out
}
