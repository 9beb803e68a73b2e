package binder

import "net/http"

// Path binds route parameters into `path:"name"` tagged fields. extract
// resolves one parameter, so chi.URLParam can be passed directly:
//
//	binder.Path(chi.URLParam)
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindWith(v, "path", func(name string) []string {
			if value := extract(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}
