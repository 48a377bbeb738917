package execution

import "context"

// Invoker runs the subject program against one input file and returns its
// normalized standard output
type Invoker interface {
	Invoke(ctx context.Context, inputPath string) (string, error)
}
