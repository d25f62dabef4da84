package datamanager

import (
	"context"
	"fmt"
	"time"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/mapper"
	"github.com/brokerguard/dbp/internal/store"
)

func (d *dataManager) FetchBroker(ctx context.Context, id int64) (*domain.Broker, error) {
	row, err := d.store.FetchBroker(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch broker: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	broker, err := d.mapper.BrokerToModel(*row)
	if err != nil {
		return nil, err
	}
	return &broker, nil
}

func (d *dataManager) FetchProfileQuery(ctx context.Context, id int64) (*domain.ProfileQuery, error) {
	row, err := d.store.FetchProfileQuery(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile query: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	q, err := d.mapper.ProfileQueryToModel(*row)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (d *dataManager) ScanJob(ctx context.Context, brokerID, profileQueryID int64) (*domain.ScanJobData, error) {
	scan, err := d.store.FetchScan(ctx, brokerID, profileQueryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scan: %w", err)
	}
	if scan == nil {
		return nil, nil
	}
	events, err := d.store.FetchScanEvents(ctx, brokerID, profileQueryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scan events: %w", err)
	}
	data, err := d.mapper.ScanToModel(*scan, events)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *dataManager) OptOutJob(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) (*domain.OptOutJobData, error) {
	row, err := d.store.FetchOptOut(ctx, brokerID, profileQueryID, extractedProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opt-out: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	data, err := d.optOutJob(ctx, *row)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *dataManager) OptOutJobs(ctx context.Context, brokerID, profileQueryID int64) ([]domain.OptOutJobData, error) {
	rows, err := d.store.FetchOptOuts(ctx, brokerID, profileQueryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opt-outs: %w", err)
	}
	jobs := make([]domain.OptOutJobData, 0, len(rows))
	for _, row := range rows {
		data, err := d.optOutJob(ctx, row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, data)
	}
	return jobs, nil
}

func (d *dataManager) optOutJob(ctx context.Context, row store.OptOutWithExtractedProfile) (domain.OptOutJobData, error) {
	o := row.OptOut
	events, err := d.store.FetchOptOutEvents(ctx, o.BrokerID, o.ProfileQueryID, o.ExtractedProfileID)
	if err != nil {
		return domain.OptOutJobData{}, fmt.Errorf("failed to fetch opt-out events: %w", err)
	}
	return d.mapper.OptOutToModel(row, events)
}

func (d *dataManager) AddScanEvent(ctx context.Context, event domain.HistoryEvent) error {
	row, err := d.mapper.ScanEventToDB(event)
	if err != nil {
		return err
	}
	if err := d.store.SaveScanEvent(ctx, row); err != nil {
		return fmt.Errorf("failed to save scan event: %w", err)
	}
	return nil
}

func (d *dataManager) AddOptOutEvent(ctx context.Context, event domain.HistoryEvent) error {
	row, err := d.mapper.OptOutEventToDB(event)
	if err != nil {
		return err
	}
	if err := d.store.SaveOptOutEvent(ctx, row); err != nil {
		return fmt.Errorf("failed to save opt-out event: %w", err)
	}
	return nil
}

func (d *dataManager) UpdateScanDates(ctx context.Context, brokerID, profileQueryID int64, lastRunDate time.Time, preferredRunDate *time.Time) error {
	if err := d.store.UpdateScanLastRunDate(ctx, brokerID, profileQueryID, &lastRunDate); err != nil {
		return fmt.Errorf("failed to update scan last run date: %w", err)
	}
	return d.UpdateScanPreferredRunDate(ctx, brokerID, profileQueryID, preferredRunDate)
}

func (d *dataManager) UpdateScanPreferredRunDate(ctx context.Context, brokerID, profileQueryID int64, preferredRunDate *time.Time) error {
	if err := d.store.UpdateScanPreferredRunDate(ctx, brokerID, profileQueryID, preferredRunDate); err != nil {
		return fmt.Errorf("failed to update scan preferred run date: %w", err)
	}
	return nil
}

func (d *dataManager) UpdateOptOutDates(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, lastRunDate time.Time, preferredRunDate *time.Time) error {
	if err := d.store.UpdateOptOutLastRunDate(ctx, brokerID, profileQueryID, extractedProfileID, &lastRunDate); err != nil {
		return fmt.Errorf("failed to update opt-out last run date: %w", err)
	}
	return d.UpdateOptOutPreferredRunDate(ctx, brokerID, profileQueryID, extractedProfileID, preferredRunDate)
}

func (d *dataManager) UpdateOptOutPreferredRunDate(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, preferredRunDate *time.Time) error {
	if err := d.store.UpdateOptOutPreferredRunDate(ctx, brokerID, profileQueryID, extractedProfileID, preferredRunDate); err != nil {
		return fmt.Errorf("failed to update opt-out preferred run date: %w", err)
	}
	return nil
}

func (d *dataManager) SaveNewOptOut(ctx context.Context, brokerID, profileQueryID int64, extracted domain.ExtractedProfile, preferredRunDate *time.Time) (int64, error) {
	extracted.ID = nil
	row, err := d.mapper.ExtractedProfileToDB(extracted)
	if err != nil {
		return 0, err
	}
	optOut := mapper.OptOutToDB(brokerID, profileQueryID, d.clock.Now(), preferredRunDate)
	id, err := d.store.SaveOptOutWithNewExtractedProfile(ctx, optOut, row)
	if err != nil {
		return 0, fmt.Errorf("failed to save opt-out: %w", err)
	}
	return id, nil
}

func (d *dataManager) UpdateRemovedDate(ctx context.Context, extractedProfileID int64, date *time.Time) error {
	if err := d.store.UpdateRemovedDate(ctx, extractedProfileID, date); err != nil {
		return fmt.Errorf("failed to update removed date: %w", err)
	}
	return nil
}

func (d *dataManager) IncrementAttempt(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64) error {
	if err := d.store.IncrementOptOutAttemptCount(ctx, brokerID, profileQueryID, extractedProfileID); err != nil {
		return fmt.Errorf("failed to increment attempt count: %w", err)
	}
	return nil
}

func (d *dataManager) MarkSubmitted(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, date time.Time) error {
	if err := d.store.UpdateOptOutSubmittedSuccessfullyDate(ctx, brokerID, profileQueryID, extractedProfileID, &date); err != nil {
		return fmt.Errorf("failed to update submitted date: %w", err)
	}
	return nil
}

func (d *dataManager) MarkConfirmationPixelFired(ctx context.Context, brokerID, profileQueryID, extractedProfileID int64, days int) error {
	if err := d.store.UpdateOptOutConfirmationPixelFired(ctx, brokerID, profileQueryID, extractedProfileID, days); err != nil {
		return fmt.Errorf("failed to update confirmation pixel: %w", err)
	}
	return nil
}

func (d *dataManager) SaveOptOutAttempt(ctx context.Context, attempt domain.OptOutAttempt) error {
	if err := d.store.SaveOptOutAttempt(ctx, mapper.OptOutAttemptToDB(attempt)); err != nil {
		return fmt.Errorf("failed to save opt-out attempt: %w", err)
	}
	return nil
}

func (d *dataManager) UpdateOptOutAttemptStage(ctx context.Context, extractedProfileID int64, date time.Time) error {
	if err := d.store.UpdateOptOutAttemptLastStageDate(ctx, extractedProfileID, date); err != nil {
		return fmt.Errorf("failed to update opt-out attempt: %w", err)
	}
	return nil
}

func (d *dataManager) FetchOptOutAttempt(ctx context.Context, extractedProfileID int64) (*domain.OptOutAttempt, error) {
	row, err := d.store.FetchOptOutAttempt(ctx, extractedProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opt-out attempt: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	attempt := mapper.OptOutAttemptToModel(*row)
	return &attempt, nil
}
