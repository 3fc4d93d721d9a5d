package context

import (
	"context"

	"github.com/muhammadheryan/echobody/constant"
)

func WithEndpoint(ctx context.Context, endpoint string) context.Context {
	return context.WithValue(ctx, constant.EndpointKey, endpoint)
}

// GetEndpoint returns the originating request path, or "" outside a request.
func GetEndpoint(ctx context.Context) string {
	v := ctx.Value(constant.EndpointKey)
	if v == nil {
		return ""
	}
	endpoint, _ := v.(string)
	return endpoint
}
