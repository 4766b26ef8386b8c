// Package guard gates feedback-form submissions. A submission is allowed only
// when the name, email, and rating controls all carry a value; otherwise the
// user is alerted through a blocking Notifier and the submission is rejected.
//
// Validate is the pure rule and needs no UI. Guard binds the rule to a
// Document (where control values are read from) and a Notifier (how the user
// is told), so the same check can back a terminal prompt, a parsed HTML page,
// or an embedding application.
package guard
