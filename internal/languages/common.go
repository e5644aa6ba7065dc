package languages

import "strings"

func extractDocstring(s string) string {
	// Remove triple quotes and clean up
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `"""`) && strings.HasSuffix(s, `"""`) && len(s) >= 6 {
		s = s[3 : len(s)-3]
	} else if strings.HasPrefix(s, `'''`) && strings.HasSuffix(s, `'''`) && len(s) >= 6 {
		s = s[3 : len(s)-3]
	}
	// Take first line only for brevity
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// firstCommentLine condenses a // or /* comment block to its first
// meaningful line.
func firstCommentLine(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
