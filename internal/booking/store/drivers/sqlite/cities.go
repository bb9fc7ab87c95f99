package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/ridewise/cabbook/internal/booking/domain"
	"github.com/ridewise/cabbook/internal/booking/store"
)

type citiesRepo struct {
	db *sql.DB
}

const cityColumns = `id, name, available, created_at, updated_at`

func (r *citiesRepo) GetCityByID(ctx context.Context, id string) (domain.City, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cityColumns+` FROM cities WHERE id = ?`, id)

	var c domain.City
	if err := row.Scan(&c.ID, &c.Name, &c.Available, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.City{}, mapNotFound(err)
	}
	return c, nil
}

func (r *citiesRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cityColumns+` FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Available, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *citiesRepo) CreateCity(ctx context.Context, c domain.City) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cities (id, name, available, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Available, now, now)
	return mapConflict(err)
}

func (r *citiesRepo) UpdateCity(ctx context.Context, c domain.City) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cities SET name = ?, available = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Available, time.Now().UTC(), c.ID)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowAffected(res)
}

func (r *citiesRepo) DeleteCity(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
