package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts the manifest to a protobuf Struct.
func (m *Manifest) ToStruct() (*structpb.Struct, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FromStruct converts a protobuf Struct to a manifest.
func FromStruct(s *structpb.Struct) (*Manifest, error) {
	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Marshal encodes the manifest in the format implied by the filename
// extension: .json (protojson), .pbtext (prototext), .msgpack, and protobuf
// binary otherwise.
func Marshal(filename string, m *Manifest) ([]byte, error) {
	if filepath.Ext(filename) == ".msgpack" {
		return msgpack.Marshal(m)
	}
	s, err := m.ToStruct()
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(filename) {
	case ".json":
		return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	case ".pbtext":
		return prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(s)
}

// Unmarshal decodes a manifest encoded by Marshal.
func Unmarshal(filename string, data []byte) (*Manifest, error) {
	if filepath.Ext(filename) == ".msgpack" {
		var m Manifest
		if err := msgpack.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return &m, nil
	}
	s := &structpb.Struct{}
	var err error
	switch filepath.Ext(filename) {
	case ".json":
		err = protojson.Unmarshal(data, s)
	case ".pbtext":
		err = prototext.Unmarshal(data, s)
	default:
		err = proto.Unmarshal(data, s)
	}
	if err != nil {
		return nil, err
	}
	return FromStruct(s)
}

func ReadFile(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", filename, err)
	}
	m, err := Unmarshal(filename, data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return m, nil
}

func WriteFile(filename string, m *Manifest) error {
	data, err := Marshal(filename, m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteTo writes the manifest to out, encoded per filename.
func WriteTo(filename string, m *Manifest, out io.Writer) error {
	data, err := Marshal(filename, m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
