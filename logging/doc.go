// Package logging centralizes log configuration for AgentKit applications
// and for the framework's own components.
//
// Setup installs the process-wide sinks: a console sink always, plus an
// optional append-only file sink, both rendering one formatted line per
// record. GetLogger hands out named loggers sharing those sinks, with
// dotted names forming an inheritance hierarchy. Framework loggers live
// under the FrameworkNamespace ("agentkit") and can be tuned or silenced
// independently of application loggers:
//
//	if err := logging.Setup(func(o *logging.SetupOptions) {
//		o.Level = "DEBUG"
//		o.LogFile = "logs/app.log"
//	}); err != nil {
//		// invalid level, or the log file location is unusable
//	}
//
//	logger := logging.GetLogger("app.worker")
//	logger.Info("Processed %d items", n)
//
//	logging.SetFrameworkLogLevel("WARNING")
//	logging.DisableFrameworkLogging()
//
// Setup also points slog's default logger at the installed sinks, so code
// using plain log/slog shares the same destinations and line format.
package logging
