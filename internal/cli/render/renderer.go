package render

// Renderer writes one use case result to the command output
type Renderer[T any] interface {
	Render(result T) error
}
