package retry

import (
	"errors"
	"math/rand"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

type unrecoverableError struct {
	err error
}

func (e unrecoverableError) Error() string { return e.err.Error() }
func (e unrecoverableError) Unwrap() error { return e.err }

// Unrecoverable marks err as unsafe to retry.
func Unrecoverable(err error) error {
	if err == nil {
		return nil
	}
	return unrecoverableError{err: err}
}

func isUnrecoverableErr(err error) bool {
	var e unrecoverableError
	return errors.As(err, &e)
}

// Retry calls retryableFunc until it succeeds, doubling the sleep between
// attempts. It gives up with the last error once the sleep exceeds
// maxSleepTime or retryableFunc returns an Unrecoverable error.
func Retry(logger log.Logger, sleep time.Duration, maxSleepTime time.Duration, retryableFunc func() error) error {
	if err := retryableFunc(); err != nil {
		if isUnrecoverableErr(err) {
			logger.Error("skip retry, error unrecoverable", "err", err)
			return err
		}

		// Add some randomness to prevent thrashing
		jitter := time.Duration(rand.Int63n(int64(sleep)))
		sleep = sleep + jitter/2

		if sleep > maxSleepTime {
			logger.Info("retry timed out")
			return err
		}

		logger.Info("retrying", "sleep", sleep, "err", err)
		time.Sleep(sleep)

		return Retry(logger, 2*sleep, maxSleepTime, retryableFunc)
	}
	return nil
}
