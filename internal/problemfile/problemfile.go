// Package problemfile reads problem documents for the tpsolve command.
//
// A document is YAML:
//
//	kind: transport        # or assignment
//	method: vogel          # optional
//	supplies: [20, 30, 10] # transport only
//	demands: [10, 25, 25]  # transport only
//	costs:
//	  - [2, 3, 1]
//	  - [5, 4, 8]
//	  - [7, 6, 9]
//
// Method names: northwest-corner (nwc), minimum-cost (min-cost), vogel (vam)
// for transport; hungarian or minimum-cost for assignment. An empty method
// selects vogel or hungarian.
package problemfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/transportation/assignment"
	"github.com/katalvlaran/transportation/transport"
	"gopkg.in/yaml.v3"
)

// Kind names the problem family of a document.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindAssignment Kind = "assignment"
)

var (
	// ErrUnknownKind is returned when kind is missing or not recognized.
	ErrUnknownKind = errors.New("problemfile: unknown kind")
	// ErrUnknownMethod is returned when method does not apply to the kind.
	ErrUnknownMethod = errors.New("problemfile: unknown method")
)

// Document is the decoded file.
type Document struct {
	Kind     Kind        `yaml:"kind"`
	Method   string      `yaml:"method"`
	Supplies []float64   `yaml:"supplies"`
	Demands  []float64   `yaml:"demands"`
	Costs    [][]float64 `yaml:"costs"`
}

// Load reads and parses the file at path.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("problemfile: read %s: %w", path, err)
	}

	return Parse(bytes.NewReader(raw))
}

// Parse decodes one document from r. Unknown fields are rejected so typos
// do not silently drop data.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("problemfile: decode: %w", err)
	}
	doc.Kind = Kind(strings.ToLower(strings.TrimSpace(string(doc.Kind))))
	switch doc.Kind {
	case KindTransport, KindAssignment:
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
	}

	return doc, nil
}

// TransportProblem returns the transport view of the document.
func (d Document) TransportProblem() transport.Problem {
	return transport.Problem{Supplies: d.Supplies, Demands: d.Demands, Costs: d.Costs}
}

// AssignmentProblem returns the assignment view of the document.
func (d Document) AssignmentProblem() assignment.Problem {
	return assignment.Problem{Costs: d.Costs}
}

// TransportMethod resolves the method of a transport document; override,
// when non-empty, wins over the document's own method.
func (d Document) TransportMethod(override string) (transport.Method, error) {
	name := pick(override, d.Method)
	if name == "" {
		return transport.VogelMethod, nil
	}
	m, err := transport.ParseMethod(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q for %s", ErrUnknownMethod, name, d.Kind)
	}

	return m, nil
}

// AssignmentMethod resolves the method of an assignment document to
// assignment.MethodHungarian or assignment.MethodMinimumCost.
func (d Document) AssignmentMethod(override string) (string, error) {
	switch name := strings.ToLower(pick(override, d.Method)); name {
	case "", "hungarian":
		return assignment.MethodHungarian, nil
	case "minimum-cost", "min-cost", "mincost", assignment.MethodMinimumCost:
		return assignment.MethodMinimumCost, nil
	default:
		return "", fmt.Errorf("%w: %q for %s", ErrUnknownMethod, name, d.Kind)
	}
}

func pick(override, fromDoc string) string {
	if s := strings.TrimSpace(override); s != "" {
		return s
	}

	return strings.TrimSpace(fromDoc)
}
