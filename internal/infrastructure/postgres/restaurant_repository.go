package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/internal/domain/repository"
)

type RestaurantRepository struct {
	db DBTX
}

func NewRestaurantRepository(db DBTX) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

const restaurantColumns = `id, name, description, category, has_delivery, contact_email, contact_number,
	city, street, postal_code, logo_url, created_by_id, created_at, updated_at`

func scanRestaurant(row pgx.Row, r *entity.Restaurant) error {
	return row.Scan(
		&r.ID, &r.Name, &r.Description, &r.Category, &r.HasDelivery, &r.ContactEmail, &r.ContactNumber,
		&r.Address.City, &r.Address.Street, &r.Address.PostalCode, &r.LogoURL, &r.CreatedByID,
		&r.CreatedAt, &r.UpdatedAt,
	)
}

func (repo *RestaurantRepository) Create(ctx context.Context, r *entity.Restaurant) error {
	row := repo.db.QueryRow(ctx, `
		INSERT INTO restaurants (name, description, category, has_delivery, contact_email, contact_number,
			city, street, postal_code, logo_url, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, r.Name, r.Description, r.Category, r.HasDelivery, r.ContactEmail, r.ContactNumber,
		r.Address.City, r.Address.Street, r.Address.PostalCode, r.LogoURL, r.CreatedByID)

	return mapErr(row.Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt))
}

func (repo *RestaurantRepository) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	r := &entity.Restaurant{}
	row := repo.db.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	if err := scanRestaurant(row, r); err != nil {
		return nil, mapErr(err)
	}
	return r, nil
}

// List returns one page matching q plus the total number of matches.
func (repo *RestaurantRepository) List(ctx context.Context, q entity.RestaurantQuery) ([]entity.Restaurant, int, error) {
	where, args := restaurantFilter(q)

	var total int
	if err := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.PageSize, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM restaurants%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		restaurantColumns, where, restaurantOrder(q), len(args)-1, len(args))

	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]entity.Restaurant, 0, q.PageSize)
	for rows.Next() {
		var r entity.Restaurant
		if err := scanRestaurant(rows, &r); err != nil {
			return nil, 0, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func restaurantFilter(q entity.RestaurantQuery) (string, []any) {
	var conds []string
	var args []any
	if phrase := strings.TrimSpace(q.SearchPhrase); phrase != "" {
		args = append(args, "%"+strings.ToLower(phrase)+"%")
		conds = append(conds, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(description) LIKE $%d)", len(args), len(args)))
	}
	if category := strings.TrimSpace(q.Category); category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("LOWER(category) = LOWER($%d)", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// restaurantOrder only ever emits whitelisted column names.
func restaurantOrder(q entity.RestaurantQuery) string {
	col, ok := entity.RestaurantSortColumns[q.SortBy]
	if !ok {
		return "id"
	}
	dir := "ASC"
	if q.Descending() {
		dir = "DESC"
	}
	return col + " " + dir + ", id"
}

func (repo *RestaurantRepository) Update(ctx context.Context, r *entity.Restaurant) error {
	row := repo.db.QueryRow(ctx, `
		UPDATE restaurants
		SET name = $1, description = $2, has_delivery = $3, logo_url = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, r.Name, r.Description, r.HasDelivery, r.LogoURL, r.ID)

	return mapErr(row.Scan(&r.UpdatedAt))
}

func (repo *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (repo *RestaurantRepository) CountByCreator(ctx context.Context, userID int64) (int, error) {
	var n int
	err := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants WHERE created_by_id = $1`, userID).Scan(&n)
	return n, err
}

var _ repository.RestaurantRepository = (*RestaurantRepository)(nil)
