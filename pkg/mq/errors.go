package mq

import (
	"errors"

	"github.com/aws/smithy-go"
)

var (
	// ErrUnavailable covers transient submission failures: queue
	// unreachable, throttled, or the service faulted.
	ErrUnavailable = errors.New("QUEUE_UNAVAILABLE")
	// ErrRejected covers permanent failures where the queue refused the
	// message itself, e.g. an oversized body.
	ErrRejected = errors.New("QUEUE_REJECTED")
)

var throttleErrorCodes = map[string]struct{}{
	"RequestThrottled":              {},
	"ThrottlingException":           {},
	"TooManyRequestsException":      {},
	"ProvisionedThroughputExceeded": {},
}

// classify maps an SDK error onto the publisher failure taxonomy. Client
// faults will not succeed on retry, except throttling which is transient
// despite its 4xx status.
func classify(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return ErrUnavailable
	}

	if _, throttled := throttleErrorCodes[apiErr.ErrorCode()]; throttled {
		return ErrUnavailable
	}

	if apiErr.ErrorFault() == smithy.FaultClient {
		return ErrRejected
	}

	return ErrUnavailable
}
