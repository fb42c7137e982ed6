package driver

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// CoerceDocument converts a decoded BSON document into a record holding only
// JSON-native values. BSON-only types become their string representation.
func CoerceDocument(doc bson.M) model.Record {
	record := make(model.Record, len(doc))
	for k, v := range doc {
		record[k] = CoerceValue(v)
	}
	return record
}

// CoerceValue converts a single decoded BSON value
func CoerceValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, string, bool, int32, int64, int:
		return val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'g', -1, 64)
		}
		return val
	case bson.M:
		return map[string]interface{}(CoerceDocument(val))
	case map[string]interface{}:
		return map[string]interface{}(CoerceDocument(val))
	case bson.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = CoerceValue(e.Value)
		}
		return out
	case bson.A:
		return coerceSlice(val)
	case []interface{}:
		return coerceSlice(val)
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(dateLayout)
	case time.Time:
		return val.UTC().Format(dateLayout)
	case primitive.Decimal128:
		return val.String()
	case primitive.Timestamp:
		return fmt.Sprintf("Timestamp(%d, %d)", val.T, val.I)
	case primitive.Binary:
		return base64.StdEncoding.EncodeToString(val.Data)
	case primitive.Regex:
		return val.String()
	case primitive.JavaScript:
		return string(val)
	case primitive.CodeWithScope:
		return val.String()
	case primitive.Symbol:
		return string(val)
	case primitive.Null, primitive.Undefined:
		return nil
	case primitive.MinKey:
		return "MinKey"
	case primitive.MaxKey:
		return "MaxKey"
	default:
		return fmt.Sprint(val)
	}
}

func coerceSlice(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = CoerceValue(v)
	}
	return out
}
