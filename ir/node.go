package ir

type Type int

const (
	StringType Type = iota
	SeqType
	MapType
	TagType
)

func Types() []Type {
	return []Type{StringType, SeqType, MapType, TagType}
}

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case SeqType:
		return "seq"
	case MapType:
		return "map"
	case TagType:
		return "tag"
	default:
		return "unknown"
	}
}

// Field is one entry of a mapping node. Order is significant.
type Field struct {
	Key   string
	Value *Node
}

// Node is one value in a stringly document.
//
// Exactly the members matching Type are meaningful: String for
// StringType, Values for SeqType, Fields for MapType, and Tag plus an
// optional Elem payload for TagType.
type Node struct {
	Type   Type
	String string
	Tag    string
	Elem   *Node
	Values []*Node
	Fields []Field
}

func String(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func Seq(items ...*Node) *Node {
	return &Node{Type: SeqType, Values: items}
}

func Map(fields ...Field) *Node {
	return &Node{Type: MapType, Fields: fields}
}

func Tagged(tag string, elem *Node) *Node {
	return &Node{Type: TagType, Tag: tag, Elem: elem}
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:   n.Type,
		String: n.String,
		Tag:    n.Tag,
		Elem:   n.Elem.Clone(),
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if n.Fields != nil {
		dst.Fields = make([]Field, len(n.Fields))
		for i, f := range n.Fields {
			dst.Fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
		}
	}
	return dst
}

// Equal reports deep equality, with field order significant.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type || n.String != o.String || n.Tag != o.Tag {
		return false
	}
	if !n.Elem.Equal(o.Elem) {
		return false
	}
	if len(n.Values) != len(o.Values) || len(n.Fields) != len(o.Fields) {
		return false
	}
	for i, v := range n.Values {
		if !v.Equal(o.Values[i]) {
			return false
		}
	}
	for i, f := range n.Fields {
		if f.Key != o.Fields[i].Key || !f.Value.Equal(o.Fields[i].Value) {
			return false
		}
	}
	return true
}

// Get returns the value of the first field named key of a mapping
// node, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Type != MapType {
		return nil
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}
