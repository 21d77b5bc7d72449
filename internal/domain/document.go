package domain

// Document представляет произвольный JSON-объект, хранящийся в коллекции
type Document map[string]any

// Collection представляет имя коллекции в хранилище
type Collection string

// Коллекции хранилища (имя коллекции = имя записи в нижнем регистре)
const (
	CollectionUnit        Collection = "unit"
	CollectionMember      Collection = "member"
	CollectionContactInfo Collection = "contactinfo"
)

// Поля идентификатора: внутреннее (хранилище) и публичное (клиенты)
const (
	StoreIDField  = "_id"
	PublicIDField = "id"
)

// Clone возвращает поверхностную копию документа
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
