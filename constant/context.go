package constant

type contextKey string

// EndpointKey holds the request path that started the current call chain.
const EndpointKey contextKey = "endpoint"
