package member

import "strings"

// Filter keeps members whose id contains searchTerm and whose group equals group.
// An empty searchTerm or group does not filter.
func Filter(members []Member, searchTerm, group string) []Member {
	result := make([]Member, 0, len(members))
	for _, m := range members {
		if searchTerm != "" && !strings.Contains(m.MemberID, searchTerm) {
			continue
		}
		if group != "" && m.Group != group {
			continue
		}
		result = append(result, m)
	}
	return result
}
