package editor

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/inkdown-dev/inkdown/pkg/document"
)

// Mime types used by the editor-side output items. Stream and error mimes
// follow the VS Code notebook conventions.
const (
	MimeStdout    = "application/vnd.code.notebook.stdout"
	MimeStderr    = "application/vnd.code.notebook.stderr"
	MimeError     = "application/vnd.code.notebook.error"
	MimePlainText = "text/plain"
)

// outputTypeAttributeName preserves the record's type tag on presentations
// whose items alone cannot re-derive it, i.e. rich and zero-item outputs.
var outputTypeAttributeName = PrefixAttributeName(InternalAttributePrefix, "outputType")

// streamNameAttributeName preserves the channel name of a stream record
// that has no text, since a zero-item presentation has no stream item to
// carry the channel mime.
var streamNameAttributeName = PrefixAttributeName(InternalAttributePrefix, "streamName")

// notebookError is the payload of an error output item, matching the shape
// VS Code's NotebookCellOutputItem.error produces.
type notebookError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func encodeOutputs(records []*document.Output) []*CellOutput {
	outputs := make([]*CellOutput, 0, len(records))
	for _, rec := range records {
		outputs = append(outputs, encodeOutput(rec))
	}
	return outputs
}

func decodeOutputs(outputs []*CellOutput) []*document.Output {
	records := make([]*document.Output, 0, len(outputs))
	for _, out := range outputs {
		records = append(records, decodeOutput(out))
	}
	return records
}

func encodeOutput(rec *document.Output) *CellOutput {
	var out *CellOutput

	switch rec.Type {
	case document.OutputTypeStream:
		out = encodeStream(rec)
	case document.OutputTypeError:
		out = encodeError(rec)
	default:
		out = encodeRich(rec)
	}

	// A record with nothing to show becomes a zero-item presentation. Its
	// type tag, and for streams the channel name, move into the presentation
	// metadata so the empty record converts back identically.
	if len(out.Items) == 0 {
		if out.Metadata == nil {
			out.Metadata = make(map[string]any)
		}
		out.Metadata[outputTypeAttributeName] = rec.Type
		if rec.Type == document.OutputTypeStream && rec.Name != "" {
			out.Metadata[streamNameAttributeName] = rec.Name
		}
	}

	return out
}

func encodeStream(rec *document.Output) *CellOutput {
	out := &CellOutput{Metadata: copyMetadata(rec.Metadata)}

	if rec.Text == nil {
		return out
	}

	mime := MimeStdout
	if rec.Name == document.StreamStderr {
		mime = MimeStderr
	}

	item := newOutputItem(mime, *rec.Text)
	item.Unnamed = rec.Name == ""
	out.Items = []*CellOutputItem{item}

	return out
}

func encodeError(rec *document.Output) *CellOutput {
	payload := notebookError{
		Name:    rec.Ename,
		Message: rec.Evalue,
		Stack:   strings.Join(rec.Traceback, "\n"),
	}

	// Marshaling a flat struct of strings cannot fail.
	data, _ := json.Marshal(payload)

	return &CellOutput{
		Items:    []*CellOutputItem{{Mime: MimeError, Data: data}},
		Metadata: copyMetadata(rec.Metadata),
	}
}

func encodeRich(rec *document.Output) *CellOutput {
	out := &CellOutput{Metadata: copyMetadata(rec.Metadata)}

	if rec.ExecutionCount != nil {
		n := *rec.ExecutionCount
		out.ExecutionCount = &n
	}

	switch {
	case rec.Data != nil:
		mimes := make([]string, 0, len(rec.Data))
		for mime := range rec.Data {
			mimes = append(mimes, mime)
		}
		sort.Strings(mimes)

		for _, mime := range mimes {
			out.Items = append(out.Items, newOutputItem(mime, renderDataValue(rec.Data[mime])))
		}

		if out.Metadata == nil {
			out.Metadata = make(map[string]any)
		}
		out.Metadata[outputTypeAttributeName] = rec.Type

	case rec.Text != nil:
		out.Items = []*CellOutputItem{newOutputItem(MimePlainText, *rec.Text)}

		if out.Metadata == nil {
			out.Metadata = make(map[string]any)
		}
		out.Metadata[outputTypeAttributeName] = rec.Type
	}

	return out
}

// renderDataValue turns one rich data value into item bytes. Values already
// serialized as strings pass through; structured values are pretty-printed.
func renderDataValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

func decodeOutput(out *CellOutput) *document.Output {
	for _, item := range out.Items {
		if item.Mime == MimeError {
			return decodeError(out, item)
		}
	}

	for _, item := range out.Items {
		if isStreamMime(item.Mime) {
			return decodeStream(out)
		}
	}

	return decodeRich(out)
}

func decodeStream(out *CellOutput) *document.Output {
	var text strings.Builder
	mimes := make(map[string]bool)
	unnamed := false

	for _, item := range out.Items {
		if !isStreamMime(item.Mime) {
			continue
		}
		text.Write(item.Data)
		mimes[item.Mime] = true
		unnamed = unnamed || item.Unnamed
	}

	rec := &document.Output{
		Type:     document.OutputTypeStream,
		Text:     document.Str(text.String()),
		Metadata: restoreMetadata(out.Metadata),
	}

	// Re-derive the channel name only when it is unambiguous and the record
	// carried one in the first place.
	if len(mimes) == 1 && !unnamed {
		if mimes[MimeStderr] {
			rec.Name = document.StreamStderr
		} else {
			rec.Name = document.StreamStdout
		}
	}

	return rec
}

func decodeError(out *CellOutput, item *CellOutputItem) *document.Output {
	rec := &document.Output{
		Type:     document.OutputTypeError,
		Metadata: restoreMetadata(out.Metadata),
	}

	var payload notebookError
	if err := json.Unmarshal(item.Data, &payload); err != nil {
		rec.Evalue = string(item.Data)
		return rec
	}

	rec.Ename = payload.Name
	rec.Evalue = payload.Message
	if payload.Stack != "" {
		rec.Traceback = strings.Split(payload.Stack, "\n")
	}

	return rec
}

func decodeRich(out *CellOutput) *document.Output {
	outputType := document.OutputTypeExecuteResult
	if s, ok := out.Metadata[outputTypeAttributeName].(string); ok && s != "" {
		outputType = s
	}

	rec := &document.Output{
		Type:     outputType,
		Metadata: restoreMetadata(out.Metadata),
	}

	if name, ok := out.Metadata[streamNameAttributeName].(string); ok {
		rec.Name = name
	}

	if out.ExecutionCount != nil {
		n := *out.ExecutionCount
		rec.ExecutionCount = &n
	}

	if len(out.Items) == 0 {
		return rec
	}

	switch outputType {
	case document.OutputTypeExecuteResult, document.OutputTypeDisplayData:
		data := make(map[string]any, len(out.Items))
		for _, item := range out.Items {
			data[item.Mime] = parseDataValue(item.Mime, item.Data)
		}
		rec.Data = data
	default:
		// Unrecognized types only ever encode their text fallback.
		rec.Text = document.Str(string(out.Items[0].Data))
	}

	return rec
}

// parseDataValue reverses renderDataValue. Only JSON-like mimes are decoded
// back into structured values; whether a value was stored structured or as a
// pre-serialized string under another mime is not recoverable.
func parseDataValue(mime string, data []byte) any {
	if isJSONMime(mime) {
		var v any
		if err := json.Unmarshal(data, &v); err == nil {
			return v
		}
	}
	return string(data)
}

func isStreamMime(mime string) bool {
	return mime == MimeStdout || mime == MimeStderr
}

func isJSONMime(mime string) bool {
	return mime == "application/json" || strings.HasSuffix(mime, "+json")
}

func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	clone := make(map[string]any, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// restoreMetadata strips the reserved keys and returns the record-level
// metadata, or nil if nothing remains.
func restoreMetadata(m map[string]any) map[string]any {
	var rest map[string]any
	for k, v := range m {
		if strings.HasPrefix(k, InternalAttributePrefix+"/") {
			continue
		}
		if rest == nil {
			rest = make(map[string]any)
		}
		rest[k] = v
	}
	return rest
}
