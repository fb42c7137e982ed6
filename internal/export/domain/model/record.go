package model

// Record is one exported document, decoded into JSON-native values
type Record map[string]interface{}

// Collection names exported by a live run
const (
	CollectionLessons = "lessons"
	CollectionOrders  = "orders"
)

// ExportedCollections lists the collections of a live run in export order
var ExportedCollections = []string{CollectionLessons, CollectionOrders}

// CollectionQuery names the collection a record source should read
type CollectionQuery struct {
	URI        string
	Database   string
	Collection string
}
