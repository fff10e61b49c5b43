package stringify

import (
	"fmt"
	"reflect"
	"strconv"
)

// Interface renders a value for the use inside of a Struct.
func Interface(value any) string {
	switch typeCastedValue := value.(type) {
	case bool:
		return strconv.FormatBool(typeCastedValue)
	case string:
		return typeCastedValue
	case int:
		return strconv.Itoa(typeCastedValue)
	case float64:
		return Float64(typeCastedValue)
	case float32:
		return Float32(typeCastedValue)
	case fmt.Stringer:
		return typeCastedValue.String()
	default:
		// named numeric types end up here
		reflectValue := reflect.ValueOf(value)
		switch reflectValue.Kind() {
		case reflect.Float64:
			return Float64(reflectValue.Float())
		case reflect.Float32:
			return Float32(float32(reflectValue.Float()))
		default:
			return fmt.Sprint(value)
		}
	}
}
