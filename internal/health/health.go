package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Checker struct {
	db *pgxpool.Pool
}

type Status struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewChecker(db *pgxpool.Pool) *Checker {
	return &Checker{db: db}
}

// Check pings the store with a short deadline and reports its latency. The
// data layer has no other dependency worth probing.
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.db.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	dbHealth := DatabaseHealth{Status: "healthy", ResponseTime: elapsed}
	status := "healthy"
	if err != nil {
		dbHealth.Status = "unhealthy"
		status = "unhealthy"
	}

	return Status{Status: status, Database: dbHealth}
}
