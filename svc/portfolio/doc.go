// Package portfolio serves the portfolio page with its contact form and
// notification overlay.
//
// Every GET / opens a Page: a per-visitor notifier, contact form and event
// stream kept in an LRU registry. The browser runs Datastar; it opens
// /pages/{page}/events as soon as the document loads and receives all
// feedback (field errors, the pending submit button, notifications) as
// element patches on that stream. Form actions post to the page routes and
// answer 204. Contact submissions are rate limited per client address.
package portfolio
