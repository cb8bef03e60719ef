package request

// Body is the raw http request body.
type Body []byte
