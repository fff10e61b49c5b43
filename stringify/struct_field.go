package stringify

type StructField struct {
	name  string
	value any
}

func NewStructField(name string, value any) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (structField *StructField) String() (result string) {
	return structField.name + ": " + Interface(structField.value)
}
