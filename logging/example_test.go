package logging_test

import (
	"github.com/hupe1980/agentkit/logging"
)

func ExampleSetup() {
	_ = logging.Setup(func(o *logging.SetupOptions) {
		o.Format = "{name} - {level} - {message}"
	})

	logger := logging.GetLogger("app")
	logger.Info("service started")
	logger.Debug("not captured at the default INFO level")

	// Output:
	// app - INFO - service started
}

func ExampleDisableFrameworkLogging() {
	_ = logging.Setup(func(o *logging.SetupOptions) {
		o.IncludeTimestamp = false
	})

	logging.DisableFrameworkLogging()
	logging.GetLogger("agentkit.engine").Critical("never shown")
	logging.GetLogger("app").Warn("application logging is unaffected")

	_ = logging.SetFrameworkLogLevel("INFO")

	// Output:
	// app - WARNING - application logging is unaffected
}
