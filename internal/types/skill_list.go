package types

import (
	"encoding/json"
	"fmt"
)

// SkillList decodes from either a JSON array of strings or a single
// delimiter-joined string. Upstream forms historically sent both shapes; the
// single-string form is an input-compatibility shim, normalized into clean
// tokens before the engine sees it.
type SkillList []string

// UnmarshalJSON accepts ["Go", "SQL"] as well as "Go, SQL".
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*s = []string{joined}
		return nil
	}

	return fmt.Errorf("skill list must be a string or an array of strings")
}
