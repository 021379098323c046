package document

// Recognized output record types. Records with other type tags are accepted
// and handled through the rich/text fallback path.
const (
	OutputTypeStream        = "stream"
	OutputTypeError         = "error"
	OutputTypeExecuteResult = "execute_result"
	OutputTypeDisplayData   = "display_data"
)

// Stream channel names used by stream output records.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// Output is one execution result attached to a block. Which fields are
// populated depends on Type: stream records carry Name and Text, error
// records carry Ename, Evalue and Traceback, and rich records carry Data
// keyed by mime type together with optional Metadata and ExecutionCount.
//
// Text and ExecutionCount are pointers because their presence matters:
// an absent field must survive a round trip as absent, not as a zero value.
type Output struct {
	Type           string         `json:"output_type" yaml:"output_type"`
	Name           string         `json:"name,omitempty" yaml:"name,omitempty"`
	Text           *string        `json:"text,omitempty" yaml:"text,omitempty"`
	Data           map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	ExecutionCount *int           `json:"execution_count,omitempty" yaml:"execution_count,omitempty"`
	Ename          string         `json:"ename,omitempty" yaml:"ename,omitempty"`
	Evalue         string         `json:"evalue,omitempty" yaml:"evalue,omitempty"`
	Traceback      []string       `json:"traceback,omitempty" yaml:"traceback,omitempty"`
}

// Clone returns a deep copy of the output record.
func (o *Output) Clone() *Output {
	if o == nil {
		return nil
	}

	clone := *o
	clone.Text = cloneStringPtr(o.Text)
	clone.Data = cloneMap(o.Data)
	clone.Metadata = cloneMap(o.Metadata)
	clone.ExecutionCount = cloneIntPtr(o.ExecutionCount)

	if o.Traceback != nil {
		clone.Traceback = append([]string(nil), o.Traceback...)
	}

	return &clone
}

// Str returns a pointer to s, for populating optional text fields.
func Str(s string) *string {
	return &s
}

// Int returns a pointer to i, for populating optional count fields.
func Int(i int) *int {
	return &i
}
