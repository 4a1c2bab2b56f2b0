package trace

import "encoding/json"

// stepFields has Step's fields but not its methods, so encoding it does not
// recurse into MarshalJSON.
type stepFields Step

// MarshalJSON encodes the step with its narrative under "description", so
// consumers of encoded traces get the text without calling Describe.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		stepFields
		Description string `json:"description"`
	}{stepFields(s), s.Describe()})
}
