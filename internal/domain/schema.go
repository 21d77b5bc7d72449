package domain

import (
	"github.com/invopop/jsonschema"
)

// RecordSchema описывает форму записи одной коллекции в формате JSON Schema
type RecordSchema struct {
	*jsonschema.Schema
}

// MarshalJSON кодирует схему как есть, без обертки
func (s RecordSchema) MarshalJSON() ([]byte, error) {
	return s.Schema.MarshalJSON()
}

// IsRequired сообщает, обязательно ли поле
func (s RecordSchema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

var (
	unitSchema = Describe(&Unit{}, "Unit",
		"Fire/Rescue operational unit. Example: Engine 1, Truck 3, Rescue 5, Battalion 1")
	memberSchema = Describe(&Member{}, "Member",
		"Department member with role in the hierarchy")
	contactInfoSchema = Describe(&ContactInfo{}, "ContactInfo",
		"General contact and public information for the department")
)

// Schemas возвращает схемы всех записей, ключ - имя коллекции
func Schemas() map[Collection]RecordSchema {
	return map[Collection]RecordSchema{
		CollectionUnit:        unitSchema,
		CollectionMember:      memberSchema,
		CollectionContactInfo: contactInfoSchema,
	}
}

// SchemaFor возвращает схему записи для коллекции
func SchemaFor(collection Collection) (RecordSchema, bool) {
	s, ok := Schemas()[collection]
	return s, ok
}

// Describe строит схему записи по тегам jsonschema структуры.
// Поле без required и без default допускает null (anyOf с "null").
func Describe(record any, title, description string) RecordSchema {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := RecordSchema{Schema: r.Reflect(record)}
	schema.Version = ""
	schema.Title = title
	schema.Description = description

	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if !schema.IsRequired(pair.Key) && pair.Value.Default == nil {
			allowNull(pair.Value)
		}
	}

	return schema
}

// allowNull переносит тип поля в anyOf вместе с "null"
func allowNull(field *jsonschema.Schema) {
	inner := &jsonschema.Schema{Type: field.Type, Items: field.Items}
	field.Type = ""
	field.Items = nil
	field.AnyOf = []*jsonschema.Schema{inner, {Type: "null"}}
}

// fieldType возвращает тип поля, схему элементов массива и допустимость null
func fieldType(field *jsonschema.Schema) (string, *jsonschema.Schema, bool) {
	if field.Type != "" {
		return field.Type, field.Items, false
	}

	var (
		typ      string
		items    *jsonschema.Schema
		nullable bool
	)
	for _, alt := range field.AnyOf {
		if alt.Type == "null" {
			nullable = true
			continue
		}
		if typ == "" {
			typ, items = alt.Type, alt.Items
		}
	}
	return typ, items, nullable
}
