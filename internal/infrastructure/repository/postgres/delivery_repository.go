package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/delivery"
	qb "github.com/riskibarqy/cricket-scorecard/internal/platform/querybuilder"
)

type DeliveryRepository struct {
	ext sqlx.ExtContext
}

func NewDeliveryRepository(ext sqlx.ExtContext) *DeliveryRepository {
	return &DeliveryRepository{ext: ext}
}

// CreateBatch inserts all deliveries of one inning in a single
// statement. Generated IDs follow insertion order, which later queries
// rely on as play order.
func (r *DeliveryRepository) CreateBatch(ctx context.Context, deliveries []delivery.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	insert := qb.InsertInto("deliveries").
		Columns("inning_id", "over_number", "ball_number", "batter", "bowler", "runs", "wicket", "dismissal_type")
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return err
		}
		insert.Values(d.InningID, d.Over, d.Ball, d.Batter, d.Bowler, d.Runs, d.Wicket, d.DismissalType)
	}

	query, args, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert deliveries query: %w", err)
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert deliveries: %w", err)
	}

	return nil
}
