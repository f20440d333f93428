package snap

// Checker decides whether two connections' declared type checks are
// compatible. It sees only type information: kind opposition, self
// connection and distance screening happen before the checker runs.
type Checker interface {
	CanConnect(a, b *Connection) bool
}

// DefaultChecker is the checker used when none is injected.
var DefaultChecker Checker = TypeChecker{}

// TypeChecker implements the standard compatibility rule: two connections
// are compatible when either side accepts anything (nil check list) or
// the two check lists share at least one type name.
type TypeChecker struct{}

// CanConnect implements Checker.
func (TypeChecker) CanConnect(a, b *Connection) bool {
	if a == nil || b == nil {
		return false
	}
	if a.checks == nil || b.checks == nil {
		return true
	}
	for _, want := range a.checks {
		for _, have := range b.checks {
			if want == have {
				return true
			}
		}
	}
	return false
}
