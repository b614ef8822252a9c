package params

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

// Supported type tags
const (
	TypeAddress = "address"
	TypeUint256 = "uint256"
)

// Field is one positional entry of a schema
type Field struct {
	Name string
	Type string
}

// Schema is a fixed, ordered parameter layout agreed with the receiving contract.
// The encoding is positional and carries no field names.
type Schema struct {
	Name    string
	Version uint
	Fields  []Field

	widths []int // bit width per field, 0 for address
	args   abi.Arguments
}

// NewSchema validates the field types and builds the ABI argument list.
func NewSchema(name string, version uint, fields ...Field) (*Schema, error) {
	s := &Schema{
		Name:    name,
		Version: version,
		Fields:  append([]Field(nil), fields...),
		widths:  make([]int, len(fields)),
		args:    make(abi.Arguments, 0, len(fields)),
	}

	for i, f := range fields {
		tag, width, err := parseTypeTag(f.Type)
		if err != nil {
			return nil, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: err.Error()}
		}
		typ, err := abi.NewType(tag, "", nil)
		if err != nil {
			return nil, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: err.Error()}
		}
		s.Fields[i].Type = tag
		s.widths[i] = width
		s.args = append(s.args, abi.Argument{Name: f.Name, Type: typ})
	}

	return s, nil
}

// MustSchema is NewSchema for package-level schema definitions
func MustSchema(name string, version uint, fields ...Field) *Schema {
	s, err := NewSchema(name, version, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// ID returns the registry key, e.g. "share-deposit/v1"
func (s *Schema) ID() string {
	return fmt.Sprintf("%s/v%d", s.Name, s.Version)
}

// Signature returns the canonical tuple signature, e.g. "(uint256,address)"
func (s *Schema) Signature() string {
	types := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		types[i] = f.Type
	}
	return "(" + strings.Join(types, ",") + ")"
}

// Encode ABI-encodes values in schema order.
func (s *Schema) Encode(values ...any) (domain.EncodedParams, error) {
	if len(values) != len(s.Fields) {
		return nil, &domain.EncodingFormatError{
			Reason: fmt.Sprintf("schema %s expects %d values, got %d", s.ID(), len(s.Fields), len(values)),
		}
	}

	packed := make([]any, len(values))
	for i, v := range values {
		f := s.Fields[i]
		var err error
		if s.widths[i] == 0 {
			packed[i], err = toAddress(f, v)
		} else {
			packed[i], err = toUint(f, s.widths[i], v)
		}
		if err != nil {
			return nil, err
		}
	}

	encoded, err := s.args.Pack(packed...)
	if err != nil {
		return nil, &domain.EncodingFormatError{Reason: fmt.Sprintf("failed to encode %s: %v", s.ID(), err)}
	}
	return encoded, nil
}

// Decode reverses Encode. Unsigned values come back as *big.Int, addresses as common.Address.
func (s *Schema) Decode(data []byte) ([]any, error) {
	out, err := s.args.Unpack(data)
	if err != nil {
		return nil, &domain.EncodingFormatError{Reason: fmt.Sprintf("failed to decode %s: %v", s.ID(), err)}
	}

	for i, v := range out {
		if s.widths[i] == 0 {
			continue
		}
		n, ok := uintToBig(v)
		if !ok {
			return nil, &domain.EncodingFormatError{Field: s.Fields[i].Name, Type: s.Fields[i].Type, Reason: fmt.Sprintf("unexpected decoded type %T", v)}
		}
		out[i] = n
	}
	return out, nil
}

// parseTypeTag normalizes a tag and returns its width in bits (0 for address)
func parseTypeTag(tag string) (string, int, error) {
	tag = strings.TrimSpace(tag)
	if tag == TypeAddress {
		return TypeAddress, 0, nil
	}
	if tag == "uint" {
		return TypeUint256, 256, nil
	}
	if !strings.HasPrefix(tag, "uint") {
		return "", 0, fmt.Errorf("unsupported type %q", tag)
	}
	width, err := strconv.Atoi(strings.TrimPrefix(tag, "uint"))
	if err != nil || width < 8 || width > 256 || width%8 != 0 {
		return "", 0, fmt.Errorf("invalid integer width in %q", tag)
	}
	return tag, width, nil
}

// toUint checks the value against the field width and converts it to the Go type the ABI packer expects
func toUint(f Field, width int, v any) (any, error) {
	n, err := parseBig(f, v)
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 || n.BitLen() > width {
		return nil, &domain.EncodingRangeError{Field: f.Name, Type: f.Type, Value: n.String()}
	}

	switch width {
	case 8:
		return uint8(n.Uint64()), nil
	case 16:
		return uint16(n.Uint64()), nil
	case 32:
		return uint32(n.Uint64()), nil
	case 64:
		return n.Uint64(), nil
	default:
		return n, nil
	}
}

func parseBig(f Field, v any) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: "nil value"}
		}
		return new(big.Int).Set(x), nil
	case string:
		n, ok := new(big.Int).SetString(strings.TrimSpace(x), 0)
		if !ok {
			return nil, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: fmt.Sprintf("%q is not an integer", x)}
		}
		return n, nil
	}

	if n, ok := uintToBig(v); ok {
		return n, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	}
	return nil, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: fmt.Sprintf("unsupported value type %T", v)}
}

func uintToBig(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		return x, x != nil
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case uint:
		return new(big.Int).SetUint64(uint64(x)), true
	}
	return nil, false
}

// toAddress accepts a common.Address or a canonical 0x-prefixed 40 digit hex string.
// Numbers are rejected: an address written as a numeric literal loses leading zeros.
func toAddress(f Field, v any) (common.Address, error) {
	switch x := v.(type) {
	case common.Address:
		return x, nil
	case *common.Address:
		if x == nil {
			return common.Address{}, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: "nil address"}
		}
		return *x, nil
	case string:
		addr, err := domain.ParseAddress(x)
		if err != nil {
			return common.Address{}, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: err.Error()}
		}
		return addr, nil
	}

	if isNumeric(v) {
		return common.Address{}, &domain.EncodingFormatError{
			Field:  f.Name,
			Type:   f.Type,
			Reason: fmt.Sprintf("numeric value %v is not an address; pass the 0x-prefixed hex string", v),
		}
	}
	return common.Address{}, &domain.EncodingFormatError{Field: f.Name, Type: f.Type, Reason: fmt.Sprintf("unsupported value type %T", v)}
}

func isNumeric(v any) bool {
	if _, ok := uintToBig(v); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
