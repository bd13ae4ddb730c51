package ir

// Truth reports whether node is truthy: non-empty containers and strings,
// non-zero numbers and true. Null and nil are false.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		return node.Number != 0.0
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
