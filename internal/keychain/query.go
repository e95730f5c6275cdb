package keychain

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Operation selects which attribute subset BuildQuery emits.
type Operation int

const (
	OpAdd Operation = iota
	OpRead
	OpUpdate
	OpRemove
)

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpRead:
		return "read"
	case OpUpdate:
		return "update"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Attr is the closed set of vault attribute keys a query may carry.
type Attr int

const (
	AttrClass Attr = iota
	AttrAccessible
	AttrApplicationTag
	AttrLabel
	AttrSynchronizable
	AttrKeyType
	AttrKeyClass
	AttrReturnData
	AttrValueData
)

func (a Attr) String() string {
	switch a {
	case AttrClass:
		return "class"
	case AttrAccessible:
		return "accessible"
	case AttrApplicationTag:
		return "application-tag"
	case AttrLabel:
		return "label"
	case AttrSynchronizable:
		return "synchronizable"
	case AttrKeyType:
		return "key-type"
	case AttrKeyClass:
		return "key-class"
	case AttrReturnData:
		return "return-data"
	case AttrValueData:
		return "value-data"
	}
	return fmt.Sprintf("attr(%d)", int(a))
}

// Value is a tagged variant: exactly one of string, bool, or raw bytes.
// The zero Value is an empty string.
type Value struct {
	kind valueKind
	str  string
	flag bool
	data []byte
}

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindBytes
)

func StringValue(s string) Value { return Value{kind: kindString, str: s} }
func BoolValue(b bool) Value     { return Value{kind: kindBool, flag: b} }
func BytesValue(b []byte) Value  { return Value{kind: kindBytes, data: b} }

// Str returns the string variant, reporting whether the value holds one.
func (v Value) Str() (string, bool) { return v.str, v.kind == kindString }

// Bool returns the bool variant, reporting whether the value holds one.
func (v Value) Bool() (bool, bool) { return v.flag, v.kind == kindBool }

// Bytes returns the byte variant, reporting whether the value holds one.
func (v Value) Bytes() ([]byte, bool) { return v.data, v.kind == kindBytes }

// Equal reports whether two values hold the same variant and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case kindString:
		return v.str == o.str
	case kindBool:
		return v.flag == o.flag
	default:
		return bytes.Equal(v.data, o.data)
	}
}

// AttributeQuery maps attribute keys to values for one vault call. Queries
// are built fresh per operation and discarded afterwards; they are never
// cached or shared.
type AttributeQuery map[Attr]Value

// Clone returns a shallow copy safe to augment without mutating the
// original query.
func (q AttributeQuery) Clone() AttributeQuery {
	cp := make(AttributeQuery, len(q))
	for k, v := range q {
		cp[k] = v
	}
	return cp
}

// Tag returns the application tag the query addresses, decoded back to a
// string.
func (q AttributeQuery) Tag() string {
	b, _ := q[AttrApplicationTag].Bytes()
	return string(b)
}

// Label returns the label the query addresses.
func (q AttributeQuery) Label() string {
	s, _ := q[AttrLabel].Str()
	return s
}

// Fixed attribute values. The key type/class pair is declared, not
// derived from input or enforced against the stored payload.
const (
	classGenericSecret = "generic-secret"

	accessibleWhenUnlockedThisDeviceOnly = "when-unlocked-this-device-only"

	keyTypeAES        = "aes"
	keyClassSymmetric = "symmetric"
)

// BuildQuery assembles the attribute query addressing the (tag, label)
// identity for one operation.
//
// Add and Remove queries are intentionally identical, down to the declared
// key type/class pair, so a Remove addresses exactly the item an earlier
// Add created. Read drops the pair and requests the payload back. Update
// has no defined attribute subset (see VaultStore.Update).
func BuildQuery(tag, label string, op Operation) (AttributeQuery, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrDataValidation)
	}
	if !utf8.ValidString(tag) {
		return nil, fmt.Errorf("%w: tag is not valid UTF-8", ErrDataValidation)
	}

	q := AttributeQuery{
		AttrClass:          StringValue(classGenericSecret),
		AttrAccessible:     StringValue(accessibleWhenUnlockedThisDeviceOnly),
		AttrApplicationTag: BytesValue([]byte(tag)),
		AttrSynchronizable: BoolValue(false),
		AttrLabel:          StringValue(label),
	}

	switch op {
	case OpAdd, OpRemove:
		q[AttrKeyType] = StringValue(keyTypeAES)
		q[AttrKeyClass] = StringValue(keyClassSymmetric)
	case OpRead:
		q[AttrReturnData] = BoolValue(true)
	case OpUpdate:
		// No update scheme is defined; the base attributes are all the
		// query carries.
	default:
		return nil, fmt.Errorf("%w: unknown operation %d", ErrDataValidation, int(op))
	}

	return q, nil
}
