// Package retry provides retry-with-backoff for context-aware operations.
//
// A [Config] describes the policy: how many attempts, a total time
// budget, and how the exponentially growing delay between attempts is
// jittered. [Do] and [DoValue] run an operation under a policy, and
// [Wrap] and [WrapValue] turn an operation into a self-retrying one so
// the same policy can guard arbitrary callables:
//
//	fetch := retry.WrapValue(retry.Config{MaxTries: 3}, nil, fetchOnce)
//	data, err := fetch(ctx)
//
// Which errors are worth retrying is the caller's decision, expressed as
// a [RetryIf] predicate; [On] builds one from a set of sentinel errors.
// A nil predicate retries every error. Errors that the predicate rejects
// propagate immediately without counting as an attempt burned.
//
// All waits are cancellation-aware: if the context is cancelled during a
// backoff sleep, the sleep aborts promptly and the context's error is
// returned.
package retry
