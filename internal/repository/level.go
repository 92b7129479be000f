package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/colorsort-server/internal/levels"
)

// Level is a stored puzzle level: the JSON rows payload served to
// clients plus a gob snapshot of the same level for analysis endpoints.
type Level struct {
	LevelId    int
	Number     int
	BaseCount  int
	BaseHeight int
	Steps      int
	Explored   int
	Rows       []byte
	State      []byte
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

// Decode restores the stored level from its gob snapshot.
func (l Level) Decode() (*levels.Level, error) {
	return levels.Decode(l.State)
}

type SaveLevelParams struct {
	Number     int
	BaseCount  int
	BaseHeight int
	Steps      int
	Explored   int
}

func saveArgs(lvl *levels.Level, params SaveLevelParams) (pgx.NamedArgs, error) {
	rows, err := json.Marshal(lvl)
	if err != nil {
		return nil, err
	}
	state, err := lvl.Bytes()
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"number":      params.Number,
		"base_count":  params.BaseCount,
		"base_height": params.BaseHeight,
		"steps":       params.Steps,
		"explored":    params.Explored,
		"rows":        rows,
		"state":       state,
	}, nil
}

func (q Queries) CreateLevel(
	ctx context.Context, lvl *levels.Level, params SaveLevelParams,
) (*Level, error) {
	args, err := saveArgs(lvl, params)
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO level (
			number, base_count, base_height, steps, explored, "rows", state
		)
		VALUES (
			@number, @base_count, @base_height, @steps, @explored, @rows, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[Level],
	)
}

func (q Queries) UpsertLevel(
	ctx context.Context, lvl *levels.Level, params SaveLevelParams,
) (*Level, error) {
	args, err := saveArgs(lvl, params)
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO level (
			number, base_count, base_height, steps, explored, "rows", state
		)
		VALUES (
			@number, @base_count, @base_height, @steps, @explored, @rows, @state
		)
		ON CONFLICT (number) DO UPDATE SET
			base_count = excluded.base_count,
			base_height = excluded.base_height,
			steps = excluded.steps,
			explored = excluded.explored,
			"rows" = excluded."rows",
			state = excluded.state,
			updated_at = now()
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[Level],
	)
}

func (q Queries) FetchLevel(ctx context.Context, number int) (*Level, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM level WHERE number = $1",
		number,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[Level],
	)
}

func (q Queries) ListLevels(ctx context.Context) ([]*Level, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM level ORDER BY number",
	)
	return pgx.CollectRows(
		rows, pgx.RowToAddrOfStructByName[Level],
	)
}

func (q Queries) DeleteLevel(ctx context.Context, number int) (int64, error) {
	tag, err := q.db.Exec(
		ctx,
		"DELETE FROM level WHERE number = $1",
		number,
	)
	return tag.RowsAffected(), err
}
