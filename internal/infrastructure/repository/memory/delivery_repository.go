package memory

import (
	"context"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/delivery"
)

type deliveryRepository struct {
	state *state
}

func (r *deliveryRepository) CreateBatch(_ context.Context, deliveries []delivery.Delivery) error {
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return err
		}
		r.state.nextDeliveryID++
		d.ID = r.state.nextDeliveryID
		r.state.deliveries = append(r.state.deliveries, d)
	}

	return nil
}
