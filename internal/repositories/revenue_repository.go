package repositories

import (
	"context"
	"time"

	"dashboard-backend/internal/metrics"
	"dashboard-backend/internal/models"
)

type RevenueRepository struct {
	DB DB
}

func NewRevenueRepository(db DB) *RevenueRepository {
	return &RevenueRepository{DB: db}
}

// All returns the monthly revenue summary unmodified, in storage order.
func (r *RevenueRepository) All(ctx context.Context) ([]models.Revenue, error) {
	const op = "failed to fetch revenue data"
	defer metrics.ObserveQuery("revenue.all", time.Now())

	rows, err := r.DB.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, storeFail(op, err)
	}
	defer rows.Close()

	var revenue []models.Revenue
	for rows.Next() {
		var rev models.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, storeFail(op, err)
		}
		revenue = append(revenue, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFail(op, err)
	}
	return revenue, nil
}
