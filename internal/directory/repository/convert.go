package repository

import "go.mongodb.org/mongo-driver/bson"

// asString reads a string field from a fetched document.
func asString(doc bson.M, field string) string {
	s, _ := doc[field].(string)
	return s
}

// asInt reads a numeric field from a fetched document. The driver decodes
// untyped numbers as int32, int64 or float64 depending on how they were
// written.
func asInt(doc bson.M, field string) int {
	switch v := doc[field].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
