// Package dotted flattens nested update documents into dotted leaf paths so a
// partial nested update only touches the leaves it names.
package dotted

// Flatten turns {"health": {"weight": 80}} into {"health.weight": 80}.
// Arrays and scalars are leaves; empty nested objects produce nothing.
func Flatten(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	flatten("", fields, out)
	return out
}

func flatten(prefix string, fields map[string]any, out map[string]any) {
	for key, value := range fields {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(path, nested, out)
			continue
		}
		out[path] = value
	}
}
