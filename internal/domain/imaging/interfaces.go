package imaging

import "context"

type Service interface {
	Recompress(ctx context.Context, request RecompressRequest) RecompressResponse
}
