package startup

import (
	"smartedu.io/infrastructure/biometric"
	"smartedu.io/infrastructure/database"
	"smartedu.io/infrastructure/database/connection/datastore"
	"smartedu.io/infrastructure/logger"
	"smartedu.io/infrastructure/ml"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	biometric.InitialiseBiometricService()
	ml.InitialiseMLService()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
