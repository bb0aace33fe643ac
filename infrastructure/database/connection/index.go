package connection

import (
	"smartedu.io/infrastructure/database/connection/cache"
	"smartedu.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
