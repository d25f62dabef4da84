package scheduler

import (
	"context"
	"time"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/pixels"
)

var confirmationDays = []int{7, 14, 21}

// FireConfirmationPixels reports, once per window, whether each submitted opt-out
// was confirmed removed within 7, 14 and 21 days of submission
func (j *Jobs) FireConfirmationPixels(ctx context.Context, data []domain.BrokerProfileQueryData) error {
	now := j.clock.Now()
	for _, d := range data {
		for _, o := range d.OptOutJobData {
			if o.SubmittedSuccessfullyDate == nil {
				continue
			}
			submitted := *o.SubmittedSuccessfullyDate
			for _, days := range confirmationDays {
				if confirmationPixelFired(o, days) {
					continue
				}
				deadline := submitted.Add(time.Duration(days) * 24 * time.Hour)
				if now.Before(deadline) {
					continue
				}

				removed := o.ExtractedProfile.RemovedDate
				confirmed := removed != nil && !removed.After(deadline)
				j.pixels.Fire(pixels.OptOutConfirmation(days, confirmed, d.Broker.Name))
				if err := j.dm.MarkConfirmationPixelFired(ctx, o.BrokerID, o.ProfileQueryID, o.ExtractedProfileID(), days); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func confirmationPixelFired(o domain.OptOutJobData, days int) bool {
	switch days {
	case 7:
		return o.SevenDaysConfirmationPixelFired
	case 14:
		return o.FourteenDaysConfirmationPixelFired
	default:
		return o.TwentyOneDaysConfirmationPixelFired
	}
}
