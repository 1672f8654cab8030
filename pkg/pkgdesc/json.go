package pkgdesc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// export is Export without methods, to avoid recursion in (un)marshaling.
type export Export

// UnmarshalJSON accepts either a string or an object.
func (e *Export) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*e = Export{Name: name}
		return nil
	}
	var obj export
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("export must be a string or an object: %w", err)
	}
	*e = Export(obj)
	return nil
}

// MarshalJSON writes exports without members as plain strings.
func (e *Export) MarshalJSON() ([]byte, error) {
	if !e.HasMembers() {
		return json.Marshal(e.Name)
	}
	return json.Marshal((*export)(e))
}
