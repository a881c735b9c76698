package usecase

import (
	"github.com/nuna-market/goapi/base/ctx"
	"github.com/nuna-market/goapi/domain/account"
)

type activityHistoryUseCase struct {
	activityHistory account.ActivityHistoryRepo
}

func NewActivityHistoryUseCase(activityHistory account.ActivityHistoryRepo) account.ActivityHistoryUseCase {
	return &activityHistoryUseCase{activityHistory}
}

func (im *activityHistoryUseCase) GetActivities(c ctx.Ctx, opts ...account.FindActivityHistoryOptions) (*account.ActivitiesResult, error) {
	items, err := im.activityHistory.FindActivities(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("activityHistory.FindActivities failed")
		return nil, err
	}

	count, err := im.activityHistory.Count(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("activityHistory.Count failed")
		return nil, err
	}

	return &account.ActivitiesResult{Items: items, Count: count}, nil
}
