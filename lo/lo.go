package lo

// Cond is a conditional statement that returns the trueValue if the condition is true and the falseValue otherwise.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// Map iterates over elements of collection, applies the mapper function to each element
// and returns an array of modified TargetType elements.
func Map[SourceType any, TargetType any](source []SourceType, mapper func(SourceType) TargetType) (target []TargetType) {
	target = make([]TargetType, len(source))
	for i, value := range source {
		target[i] = mapper(value)
	}

	return target
}

// PanicOnErr panics if the second parameter is an error and returns the first parameter otherwise.
func PanicOnErr[T any](result T, err error) T {
	if err != nil {
		panic(err)
	}

	return result
}
