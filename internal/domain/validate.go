package domain

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Validate проверяет документ по схеме записи и возвращает копию
// с подставленными значениями по умолчанию. Неизвестные поля сохраняются.
func (s RecordSchema) Validate(doc Document) (Document, error) {
	out := doc.Clone()
	var problems []FieldError

	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, field := pair.Key, pair.Value
		typ, items, nullable := fieldType(field)

		value, present := out[name]
		if !present {
			switch {
			case field.Default != nil:
				out[name] = field.Default
			case s.IsRequired(name):
				problems = append(problems, FieldError{Field: name, Message: "field required"})
			}
			continue
		}

		if value == nil {
			if !nullable {
				problems = append(problems, FieldError{Field: name, Message: "must not be null"})
			}
			continue
		}

		if msg := checkType(typ, items, value); msg != "" {
			problems = append(problems, FieldError{Field: name, Message: msg})
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Record: s.Title, Fields: problems}
	}
	return out, nil
}

func checkType(typ string, items *jsonschema.Schema, value any) string {
	switch typ {
	case "string":
		if _, ok := value.(string); !ok {
			return "must be a string"
		}
	case "array":
		list, ok := value.([]any)
		if !ok {
			return "must be an array"
		}
		if items == nil {
			return ""
		}
		for i, item := range list {
			if msg := checkType(items.Type, items.Items, item); msg != "" {
				return fmt.Sprintf("item %d %s", i, msg)
			}
		}
	}
	return ""
}
