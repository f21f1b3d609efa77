package document

import (
	"maps"
	"time"

	"github.com/spf13/cast"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

// DataFrames converts the document's frames into data frames. Values of time
// fields are converted to time.Time: numbers are epoch milliseconds and
// strings are parsed as dates. Unparseable values become nil.
func (d *Document) DataFrames() []*frame.Frame {
	out := make([]*frame.Frame, 0, len(d.Frames))

	for _, fs := range d.Frames {
		f := &frame.Frame{
			Name:   fs.Name,
			RefID:  fs.RefID,
			Meta:   maps.Clone(fs.Meta),
			Fields: make([]*frame.Field, 0, len(fs.Fields)),
		}

		for _, spec := range fs.Fields {
			f.Fields = append(f.Fields, spec.toField())
		}

		out = append(out, f)
	}

	return out
}

func (s FieldSpec) toField() *frame.Field {
	values := make(frame.ArrayVector, len(s.Values))
	copy(values, s.Values)

	if s.Type == frame.FieldTypeTime || (s.Type == "" && (s.Name == "time" || s.Name == "Time")) {
		for i, v := range values {
			values[i] = toTime(v)
		}
	}

	return &frame.Field{
		Name:   s.Name,
		Type:   s.Type,
		Labels: maps.Clone(s.Labels),
		Config: s.Config.Clone(),
		Values: values,
	}
}

func toTime(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val
	case string:
		t, err := cast.ToTimeE(val)
		if err != nil {
			return nil
		}

		return t.UTC()
	}

	ms, err := cast.ToInt64E(v)
	if err != nil {
		return nil
	}

	return time.UnixMilli(ms).UTC()
}

// FromFrames builds a document from resolved frames, e.g. to print the
// outcome of a resolution. Scoped variables are not serialized.
func FromFrames(frames []*frame.Frame) *Document {
	doc := &Document{Version: CurrentVersion, Frames: make([]FrameSpec, 0, len(frames))}

	for _, f := range frames {
		fs := FrameSpec{
			Name:   f.Name,
			RefID:  f.RefID,
			Meta:   f.Meta,
			Fields: make([]FieldSpec, 0, len(f.Fields)),
		}

		for _, fld := range f.Fields {
			values := make([]any, fld.Len())
			for i := range values {
				values[i] = fld.Values.At(i)
			}

			fs.Fields = append(fs.Fields, FieldSpec{
				Name:   fld.Name,
				Type:   fld.Type,
				Labels: fld.Labels,
				Config: fieldconfig.FieldConfig{Standard: fld.Config.Standard, Custom: fld.Config.Custom},
				Values: values,
			})
		}

		doc.Frames = append(doc.Frames, fs)
	}

	return doc
}
