package submission

import "errors"

var errAllDeliveriesFailed = errors.New("all email deliveries failed")
