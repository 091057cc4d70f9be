// Package concept is the driver-side concept model: a small tagged union over
// the kinds the server can return, with checked downcasts.
package concept

import (
	"encoding/hex"
	"fmt"

	"github.com/9triver/conceptdb/errs"
	"github.com/9triver/conceptdb/proto"
)

type Kind int

const (
	EntityType Kind = iota
	RelationType
	AttributeType
	RoleType
	Entity
	Relation
	Attribute
)

var kindNames = map[Kind]string{
	EntityType:    "entity type",
	RelationType:  "relation type",
	AttributeType: "attribute type",
	RoleType:      "role type",
	Entity:        "entity",
	Relation:      "relation",
	Attribute:     "attribute",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsType reports whether the kind is a schema type rather than a data
// instance.
func (k Kind) IsType() bool {
	switch k {
	case EntityType, RelationType, AttributeType, RoleType:
		return true
	}
	return false
}

// Concept is one concept as returned by the server. Types carry a label;
// instances carry an iid; attributes also carry a value.
type Concept struct {
	kind      Kind
	iid       []byte
	label     string
	abstract  bool
	valueType string
	value     []byte
}

// FromProto decodes a wire concept. Types must carry a label and instances
// an iid.
func FromProto(m *proto.Concept) (*Concept, error) {
	c := &Concept{
		kind:      Kind(m.Kind),
		iid:       m.IID,
		label:     m.Label,
		abstract:  m.Abstract,
		valueType: m.ValueType,
		value:     m.Value,
	}
	if _, ok := kindNames[c.kind]; !ok {
		return nil, errs.InvalidConceptCasting.Withf("unknown kind %d", int(m.Kind))
	}
	if c.kind.IsType() && c.label == "" {
		return nil, errs.MissingLabel
	}
	if !c.kind.IsType() && len(c.iid) == 0 {
		return nil, errs.MissingIID
	}
	return c, nil
}

func (c *Concept) Kind() Kind { return c.kind }

// Label is the type label; empty for instances.
func (c *Concept) Label() string { return c.label }

// IID is the instance identifier; empty for types.
func (c *Concept) IID() string { return hex.EncodeToString(c.iid) }

func (c *Concept) Abstract() bool { return c.abstract }

func (c *Concept) cast(want Kind) (*Concept, error) {
	if c.kind != want {
		return nil, errs.InvalidConceptCasting.Withf("%s is not a %s", c.kind, want)
	}
	return c, nil
}

func (c *Concept) AsEntityType() (*Concept, error)    { return c.cast(EntityType) }
func (c *Concept) AsRelationType() (*Concept, error)  { return c.cast(RelationType) }
func (c *Concept) AsAttributeType() (*Concept, error) { return c.cast(AttributeType) }
func (c *Concept) AsRoleType() (*Concept, error)      { return c.cast(RoleType) }
func (c *Concept) AsEntity() (*Concept, error)        { return c.cast(Entity) }
func (c *Concept) AsRelation() (*Concept, error)      { return c.cast(Relation) }
func (c *Concept) AsAttribute() (*Concept, error)     { return c.cast(Attribute) }

// ValueType is the attribute's declared value type; empty for every other
// kind.
func (c *Concept) ValueType() string { return c.valueType }

// Value is the attribute's encoded value; nil for every other kind.
func (c *Concept) Value() []byte { return c.value }

func (c *Concept) String() string {
	if c.kind.IsType() {
		return fmt.Sprintf("%s(%s)", c.kind, c.label)
	}
	return fmt.Sprintf("%s(%s)", c.kind, c.IID())
}
