package errors

// LogFields returns key-value pairs suitable for slog.Logger attributes.
// Returns nil for nil err; wraps non-*MarkError values with a single
// "error" key.
func LogFields(err error) map[string]any {
	if err == nil {
		return nil
	}
	me, ok := err.(*MarkError)
	if !ok {
		return map[string]any{"error": err.Error()}
	}

	fields := map[string]any{
		"error_code": me.Code,
		"message":    me.Message,
		"category":   string(me.Category),
		"retryable":  me.Retryable,
	}
	if me.Kind != "" {
		fields["kind"] = me.Kind
	}
	if me.StatusCode != 0 {
		fields["status_code"] = me.StatusCode
	}
	if me.Cause != nil {
		fields["cause"] = me.Cause.Error()
	}
	return fields
}
