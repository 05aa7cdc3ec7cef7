package widget

import "errors"

// ErrNoScheduler is returned by NewEnv when no host scheduler is given.
var ErrNoScheduler = errors.New("widget: no scheduler")
