// SPDX-License-Identifier: Apache-2.0

package value

import "fmt"

// TagKind discriminates the shape of a Type; EntityType/ExtensionName
// only apply to TagEntity/TagExtension respectively.
type TagKind int

const (
	TagBool TagKind = iota
	TagLong
	TagString
	TagEntity
	TagSet
	TagRecord
	TagExtension
)

// Type is used solely for error reporting, never for evaluation
// decisions. Entity carries the declared type name of the offending
// value; Extension carries the extension function family's name.
type Type struct {
	Tag           TagKind
	EntityType    string
	ExtensionName string
}

func (t Type) String() string {
	switch t.Tag {
	case TagBool:
		return "bool"
	case TagLong:
		return "long"
	case TagString:
		return "string"
	case TagEntity:
		if t.EntityType == "" {
			return "entity"
		}
		return fmt.Sprintf("(entity of type `%s`)", t.EntityType)
	case TagSet:
		return "set"
	case TagRecord:
		return "record"
	case TagExtension:
		return fmt.Sprintf("%s", t.ExtensionName)
	default:
		return "unknown"
	}
}

func (t Type) Equal(o Type) bool {
	if t.Tag != o.Tag {
		return false
	}
	switch t.Tag {
	case TagEntity:
		return t.EntityType == o.EntityType
	case TagExtension:
		return t.ExtensionName == o.ExtensionName
	default:
		return true
	}
}

// BoolType, LongType, StringType, SetType, RecordType are the
// shapeless type tags (no EntityType/ExtensionName payload).
var (
	BoolType   = Type{Tag: TagBool}
	LongType   = Type{Tag: TagLong}
	StringType = Type{Tag: TagString}
	SetType    = Type{Tag: TagSet}
	RecordType = Type{Tag: TagRecord}
	// AnyEntity is the entity Type tag with no specific declared type,
	// used when an operator simply requires "some entity UID".
	AnyEntity = Type{Tag: TagEntity}
)

// EntityType builds an entity Type tag for a specific declared entity
// type name (used when reporting a TypeError against a concrete entity).
func EntityType(typeName string) Type { return Type{Tag: TagEntity, EntityType: typeName} }

// ExtensionType builds an extension Type tag for a named extension family.
func ExtensionType(name string) Type { return Type{Tag: TagExtension, ExtensionName: name} }
