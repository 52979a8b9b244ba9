package schema

const WishlistSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "wishlist",
	"fields": [
		{"name": "products", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "product",
				"fields": [
					{"name": "id", "type": "long"},
					{"name": "title", "type": "string"},
					{"name": "description", "type": "string"},
					{"name": "price", "type": "string"},
					{"name": "category", "type": "string"},
					{"name": "images", "type": {"type": "array", "items": "string"}},
					{"name": "in_stock", "type": "boolean"},
					{"name": "featured", "type": "boolean"}
				]
			}
		}}
	]
}`

type (
	WishlistV1 struct {
		Products []ProductV1 `avro:"products"`
	}

	ProductV1 struct {
		ID          int      `avro:"id"`
		Title       string   `avro:"title"`
		Description string   `avro:"description"`
		Price       string   `avro:"price"`
		Category    string   `avro:"category"`
		Images      []string `avro:"images"`
		InStock     bool     `avro:"in_stock"`
		Featured    bool     `avro:"featured"`
	}
)

func NewSerdeWishlistV1() (Serde, error) {
	const op = "NewSerdeWishlistV1"
	return newSerde(WishlistSchemaTextV1, op)
}
