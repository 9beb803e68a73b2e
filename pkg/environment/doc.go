// Package environment propagates the application environment (development,
// staging or production) through context.Context, HTTP requests and
// structured logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//	    // production-only behaviour
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with a request context carries an "env" attribute.
package environment
