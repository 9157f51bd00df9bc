package utils

import "strings"

// BacktickIdentifier adds backticks around an identifier, handling nested identifiers.
// Dotted names like database.table are backticked part by part, while a name that is
// already fully backticked is returned unchanged. Destination column names such as
// "columns:userid" contain no dots and come back as a single quoted identifier.
//
// Examples:
//   - "user" -> "`user`"
//   - "staging.user" -> "`staging`.`user`"
//   - "columns:userid" -> "`columns:userid`"
//   - "`user`" -> "`user`" (already backticked, not double-backticked)
//   - "" -> ""
func BacktickIdentifier(name string) string {
	if name == "" {
		return ""
	}

	// A fully backticked name with no inner backticks is a single identifier,
	// even if it contains dots.
	if wrapped(name) && !strings.Contains(name[1:len(name)-1], "`") {
		return name
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if !wrapped(part) {
			parts[i] = "`" + part + "`"
		}
	}
	return strings.Join(parts, ".")
}

// wrapped reports whether s already starts and ends with a backtick.
func wrapped(s string) bool {
	return len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`'
}

// BacktickQualifiedName formats a qualified name (database.name) with proper backticks.
// If database is nil or empty, only the name is backticked.
//
// Examples:
//   - ("staging", "user") -> "`staging`.`user`"
//   - (nil, "user") -> "`user`"
//   - ("", "user") -> "`user`"
func BacktickQualifiedName(database *string, name string) string {
	if database != nil && *database != "" {
		return BacktickIdentifier(*database) + "." + BacktickIdentifier(name)
	}
	return BacktickIdentifier(name)
}
