package greeting

// Hello is the body served on the root route.
const Hello = "Hello World!"

// Service holds the business logic behind the root route. It has no state,
// so one instance is shared by every request.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Greeting returns the fixed welcome message.
func (s *Service) Greeting() string {
	return Hello
}

// Add returns a + b with plain float64 semantics.
func (s *Service) Add(a, b float64) float64 {
	return a + b
}
