package middleware

// ContextKeyRequestID stores the per-request trace identifier.
const ContextKeyRequestID = "request_id"

// HeaderVerificationCode carries the shared secret on every API call.
const HeaderVerificationCode = "x-verification-code"

// HeaderRequestID carries the trace identifier between caller and response.
const HeaderRequestID = "X-Request-ID"
