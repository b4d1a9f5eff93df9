package optimization

import "context"

type Service interface {
	Optimize(ctx context.Context, request OptimizeRequest) OptimizeResponse
}
