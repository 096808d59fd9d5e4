package util

import (
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/config"
	"github.com/rahulzzore/realworld-groups-lambda-dynamodb-go/logging"
)

// InitLogging configures the global logger from LOG_LEVEL. Handlers call it
// once before lambda.Start.
func InitLogging() {
	logging.Init(nil, config.MustGet().LogLevel)
}
