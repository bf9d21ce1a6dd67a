package presolve

import "go.uber.org/zap"

// debugf logs at debug level through log if it is non-nil, so a Presolver
// built without a logger (the common case) pays nothing beyond the nil
// check for its round-by-round trace.
func debugf(log *zap.SugaredLogger, template string, args ...interface{}) {
	if log == nil {
		return
	}
	log.Debugf(template, args...)
}
