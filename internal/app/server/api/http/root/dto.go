package root

// Input represents the input for the root endpoint
type Input struct{}

// Output carries the greeting as raw bytes, so huma writes it without
// JSON-encoding it.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
