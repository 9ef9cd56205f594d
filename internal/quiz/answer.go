package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

type answerKind uint8

const (
	kindUnanswered answerKind = iota
	kindIndex
	kindIndices
	kindBool
)

func (k answerKind) String() string {
	switch k {
	case kindIndex:
		return "index"
	case kindIndices:
		return "index list"
	case kindBool:
		return "boolean"
	default:
		return "unanswered"
	}
}

// Answer is a user answer or an authored correct answer: a single option
// index, a set of option indices, a boolean, or the unanswered sentinel.
// The zero value is Unanswered.
//
// On the wire an Answer is a JSON/YAML number, number list, boolean or null.
type Answer struct {
	kind    answerKind
	index   int
	indices []int
	boolean bool
}

// Unanswered returns the sentinel for a question left without an answer.
func Unanswered() Answer { return Answer{} }

// Choice returns a single-choice answer.
func Choice(i int) Answer { return Answer{kind: kindIndex, index: i} }

// Choices returns a multi-select answer. Duplicates are dropped and order
// does not matter.
func Choices(indices ...int) Answer {
	return Answer{kind: kindIndices, indices: normalizeIndices(indices)}
}

// Bool returns a true/false answer.
func Bool(b bool) Answer { return Answer{kind: kindBool, boolean: b} }

// IsAnswered reports whether a is anything but the sentinel.
func (a Answer) IsAnswered() bool { return a.kind != kindUnanswered }

// Index returns the single-choice index.
func (a Answer) Index() (int, bool) { return a.index, a.kind == kindIndex }

// Indices returns a copy of the multi-select indices in ascending order.
func (a Answer) Indices() ([]int, bool) {
	if a.kind != kindIndices {
		return nil, false
	}
	return append([]int(nil), a.indices...), true
}

// Boolean returns the true/false value.
func (a Answer) Boolean() (bool, bool) { return a.boolean, a.kind == kindBool }

// Equal reports whether a and b carry the same value. Index sets compare
// as sets.
func (a Answer) Equal(b Answer) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case kindIndex:
		return a.index == b.index
	case kindBool:
		return a.boolean == b.boolean
	case kindIndices:
		if len(a.indices) != len(b.indices) {
			return false
		}
		for i := range a.indices {
			if a.indices[i] != b.indices[i] {
				return false
			}
		}
	}
	return true
}

func (a Answer) String() string {
	switch a.kind {
	case kindIndex:
		return strconv.Itoa(a.index)
	case kindIndices:
		return fmt.Sprint(a.indices)
	case kindBool:
		return strconv.FormatBool(a.boolean)
	default:
		return "unanswered"
	}
}

func normalizeIndices(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, i := range in {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// MarshalJSON encodes the answer as a number, number list, boolean or null.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case kindIndex:
		return json.Marshal(a.index)
	case kindIndices:
		return json.Marshal(a.indices)
	case kindBool:
		return json.Marshal(a.boolean)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a number, number list, boolean or null.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Unanswered()
		return nil
	}
	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*a = Bool(b)
	case '[':
		var is []int
		if err := json.Unmarshal(data, &is); err != nil {
			return fmt.Errorf("answer list must contain option indices: %w", err)
		}
		*a = Choices(is...)
	default:
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return fmt.Errorf("answer must be an option index, index list, boolean or null: %w", err)
		}
		*a = Choice(i)
	}
	return nil
}

// UnmarshalYAML decodes the authored form of a correct answer.
func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var is []int
		if err := node.Decode(&is); err != nil {
			return fmt.Errorf("line %d: answer list must contain option indices: %w", node.Line, err)
		}
		*a = Choices(is...)
		return nil
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			*a = Unanswered()
			return nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*a = Bool(b)
			return nil
		case "!!int":
			var i int
			if err := node.Decode(&i); err != nil {
				return err
			}
			*a = Choice(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: answer must be an option index, index list or boolean", node.Line)
}

// MarshalYAML encodes the answer in its authored form.
func (a Answer) MarshalYAML() (interface{}, error) {
	switch a.kind {
	case kindIndex:
		return a.index, nil
	case kindIndices:
		return a.indices, nil
	case kindBool:
		return a.boolean, nil
	default:
		return nil, nil
	}
}
