package usecase

import (
	"context"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/pkg/retry"
)

// LoadCustomerServiceInfo fetches the customer service reference data once at
// startup with bounded retry, caching it locally so the UI can still render
// it when the backend is unreachable on a later start.
func (uc *ClientUC) LoadCustomerServiceInfo(ctx context.Context) {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = uc.cfg.Poll.InfoRetryMaxRetries
	retrier := retry.New(retryCfg)

	var info *models.CustomerServiceInfo
	err := retrier.Execute(ctx, func(ctx context.Context) error {
		fetched, err := uc.gw.GetCustomerServiceInfo(ctx)
		if err != nil {
			return err
		}
		info = fetched
		return nil
	})

	if err != nil {
		logger.Warn("Customer service info fetch failed, trying local cache",
			logger.Err(err))
		cached, cacheErr := uc.repo.GetCustomerServiceInfo(ctx)
		if cacheErr != nil || cached == nil {
			return
		}
		info = cached
	} else {
		if saveErr := uc.repo.SaveCustomerServiceInfo(ctx, info); saveErr != nil {
			logger.Warn("Failed to cache customer service info", logger.Err(saveErr))
		}
	}

	uc.mu.Lock()
	uc.csInfo = info
	uc.mu.Unlock()
}

// CustomerService returns the cached customer service info, nil when unknown
func (uc *ClientUC) CustomerService() *models.CustomerServiceInfo {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.csInfo
}
