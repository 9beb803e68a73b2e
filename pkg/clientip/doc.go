// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are checked in order and the first one holding a valid address
// wins:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (first valid entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Middleware stores the resolved address in the request context, where
// FromContext and LoggerExtractor read it.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// GetIP never fails. An empty string means no valid address was found.
package clientip
