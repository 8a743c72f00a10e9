// Package logger builds configured log/slog loggers for the session layer.
//
// The generation core itself never logs; failures travel as typed Results to
// the boundary, where the caller folds them and logs with a logger built
// here:
//
//	log := logger.New(logger.WithProduction("diarykit"))
//	logger.SetAsDefault(log)
package logger
