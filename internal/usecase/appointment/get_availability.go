package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	slots *domain.SlotSet
	clock timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	slots *domain.SlotSet,
	clock timezone.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
		clock: clock,
	}
}

// Execute classifies each candidate slot as available, taken or in the
// past. It only reads, so repeated calls without writes agree.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.SlotAvailability, error) {

	if in.BarberID == 0 {
		return nil, httperr.ErrMissing("barber_id")
	}
	if in.Date == "" {
		return nil, httperr.ErrMissing("date")
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	candidates := uc.slots.Values()
	if len(in.Candidates) > 0 {
		candidates = make([]string, 0, len(in.Candidates))
		for _, c := range in.Candidates {
			norm, err := domain.NormalizeClock(c)
			if err != nil {
				return nil, httperr.ErrBusiness(httperr.CodeInvalidSlot)
			}
			candidates = append(candidates, norm)
		}
	}

	booked, err := uc.repo.ListBookedForDay(ctx, in.BarberID, date)
	if err != nil {
		return nil, err
	}

	return domain.Classify(date, candidates, booked, uc.clock()), nil
}
