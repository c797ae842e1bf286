package models

// Optional returns a copy of an optional string field.
// Nil and empty values both come back as nil so they render as JSON null.
func Optional(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	v := *value
	return &v
}

// ValueOr returns the field value, or fallback when the field is absent or empty
func ValueOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

// String returns a pointer to s. Handy for building records in code and tests.
func String(s string) *string {
	return &s
}
