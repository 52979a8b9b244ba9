package schema

const CartSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart",
	"fields": [
		{"name": "lines", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "cart_line",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "title", "type": "string"},
					{"name": "price", "type": "string"},
					{"name": "image", "type": "string"},
					{"name": "quantity", "type": "long"}
				]
			}
		}}
	]
}`

type (
	CartV1 struct {
		Lines []CartLineV1 `avro:"lines"`
	}

	// CartLineV1 carries the price as its canonical decimal string so
	// blobs round-trip without loss.
	CartLineV1 struct {
		ProductID int    `avro:"product_id"`
		Title     string `avro:"title"`
		Price     string `avro:"price"`
		Image     string `avro:"image"`
		Quantity  int    `avro:"quantity"`
	}
)

func NewSerdeCartV1() (Serde, error) {
	const op = "NewSerdeCartV1"
	return newSerde(CartSchemaTextV1, op)
}
