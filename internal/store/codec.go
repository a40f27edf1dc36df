package store

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/rafabd1/Registro/internal/student"
)

// Codec converts a student collection to and from one serialized
// representation. Exactly one codec is active for the life of the process,
// picked from configuration at startup.
type Codec interface {
	Name() string
	Marshal(records []student.Student) ([]byte, error)
	Unmarshal(data []byte) ([]student.Student, error)
}

// Format names accepted in configuration.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ForFormat returns the codec for a config format name.
func ForFormat(format string) (Codec, error) {
	switch format {
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatXML:
		return xmlCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown storage format %q (want %q or %q)", format, FormatJSON, FormatXML)
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return FormatJSON }

func (jsonCodec) Marshal(records []student.Student) ([]byte, error) {
	if records == nil {
		records = []student.Student{}
	}
	return json.MarshalIndent(records, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte) ([]student.Student, error) {
	var records []student.Student
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// studentsDoc is the XML document shape: a <students> root wrapping one
// <student> element per record.
type studentsDoc struct {
	XMLName  xml.Name          `xml:"students"`
	Students []student.Student `xml:"student"`
}

type xmlCodec struct{}

func (xmlCodec) Name() string { return FormatXML }

func (xmlCodec) Marshal(records []student.Student) ([]byte, error) {
	doc := studentsDoc{Students: records}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

func (xmlCodec) Unmarshal(data []byte) ([]student.Student, error) {
	var doc studentsDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Students, nil
}
