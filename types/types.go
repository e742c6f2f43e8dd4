package types

// JSON JSON type
type JSON = map[string]any

// JSONArray JSON array type
type JSONArray = []JSON

// StringArray String array type
type StringArray = []string
